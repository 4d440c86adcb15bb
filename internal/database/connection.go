package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jinwoo-p/sociogram/internal/models"
)

func (d *Database) Connect(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Friend{},
		&models.FriendRequest{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.CommentLike{},
	)
	if err != nil {
		return err
	}

	d.db = db

	return nil
}

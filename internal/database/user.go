package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jinwoo-p/sociogram/internal/models"
)

func (d *Database) CreateUser(user *models.User) error {
	return wrapErr(d.db.Create(user).Error)
}

// GetUser resolves a user with friends and pending requests loaded in the
// order they were appended.
func (d *Database) GetUser(id uuid.UUID) (*models.User, error) {
	user := models.User{}
	err := d.db.
		Preload("Friends", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("FriendRequests", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (d *Database) FindUserByUsername(username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := d.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, wrapErr(err)
	}
	return users, nil
}

// UpdateUser persists the user's own fields, not the relationship lists.
func (d *Database) UpdateUser(user *models.User) error {
	return wrapErr(d.db.Omit("Friends", "FriendRequests").Save(user).Error)
}

// SaveUserRelations replaces the stored friends and pending requests with
// the user's current in-memory lists, in one transaction so a partial
// rewrite cannot be observed. Rows are inserted in slice order, which
// keeps the autoincrementing seq aligned with list order.
func (d *Database) SaveUserRelations(user *models.User) error {
	return wrapErr(d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Friend{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.FriendRequest{}).Error; err != nil {
			return err
		}

		for i := range user.Friends {
			user.Friends[i].Seq = 0
			user.Friends[i].UserID = user.ID
			if err := tx.Create(&user.Friends[i]).Error; err != nil {
				return err
			}
		}
		for i := range user.FriendRequests {
			user.FriendRequests[i].Seq = 0
			user.FriendRequests[i].UserID = user.ID
			if err := tx.Create(&user.FriendRequests[i]).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

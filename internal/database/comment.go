package database

import (
	"time"

	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/models"
)

func (d *Database) CreateComment(comment *models.Comment) error {
	return wrapErr(d.db.Create(comment).Error)
}

func (d *Database) GetComment(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := d.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &comment, nil
}

func (d *Database) SaveComment(comment *models.Comment) error {
	return wrapErr(d.db.Save(comment).Error)
}

func (d *Database) HasLikedComment(userID, commentID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}

func (d *Database) AddCommentLike(userID, commentID uuid.UUID) error {
	like := models.CommentLike{UserID: userID, CommentID: commentID, CreatedAt: time.Now()}
	return wrapErr(d.db.Create(&like).Error)
}

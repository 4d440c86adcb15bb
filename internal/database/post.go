package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jinwoo-p/sociogram/internal/models"
)

func (d *Database) CreatePost(post *models.Post) error {
	return wrapErr(d.db.Create(post).Error)
}

// GetPost resolves a post with its comments in creation order.
func (d *Database) GetPost(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := d.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &post, nil
}

func (d *Database) SavePost(post *models.Post) error {
	return wrapErr(d.db.Omit("Comments").Save(post).Error)
}

// ListPostsByCreator returns the author's posts oldest first, matching the
// order they were written.
func (d *Database) ListPostsByCreator(creatorID uuid.UUID) ([]models.Post, error) {
	var posts []models.Post
	err := d.db.
		Where("creator_id = ?", creatorID).
		Order("created_at ASC").
		Find(&posts).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return posts, nil
}

func (d *Database) HasLikedPost(userID, postID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}

func (d *Database) AddPostLike(userID, postID uuid.UUID) error {
	like := models.PostLike{UserID: userID, PostID: postID, CreatedAt: time.Now()}
	return wrapErr(d.db.Create(&like).Error)
}

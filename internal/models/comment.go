package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"not null"`
	Likes     int       `gorm:"not null;default:0"`
	Creator   CommentCreator `gorm:"embedded;embeddedPrefix:creator_"`
	CreatedAt time.Time
}

// CommentCreator carries only the name snapshot, no profile image.
type CommentCreator struct {
	ID        uuid.UUID `gorm:"type:uuid;not null"`
	FirstName string
	LastName  string
}

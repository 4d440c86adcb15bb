package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Content   string    `gorm:"not null"`
	Image     string
	Likes     int `gorm:"not null;default:0"`
	Creator   Creator `gorm:"embedded;embeddedPrefix:creator_"`
	CreatedAt time.Time

	Comments []Comment `gorm:"foreignKey:PostID"`
}

// Creator is the denormalized author snapshot embedded in posts.
type Creator struct {
	ID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstName string
	LastName  string
	Profile   string
}

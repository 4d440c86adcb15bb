package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Profile      string
	CreatedAt    time.Time

	// Denormalized relationship snapshots. These are copies taken at
	// request/accept time, not live references: a later rename does not
	// rewrite entries already stored.
	Friends        []Friend        `gorm:"foreignKey:UserID"`
	FriendRequests []FriendRequest `gorm:"foreignKey:UserID"`
}

// Friend is one entry in a user's friends list. Seq preserves the order
// entries were appended in, which the feed relies on.
type Friend struct {
	Seq       uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null"`
	FirstName string
	LastName  string
}

// FriendRequest is a pending incoming request stored on the target's record.
type FriendRequest struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null"`
	FirstName   string
	LastName    string
}

// PostLike marks that a user already liked a post, one row per pair.
type PostLike struct {
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_post_like,unique"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index:idx_post_like,unique"`
	CreatedAt time.Time
}

type CommentLike struct {
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_comment_like,unique"`
	CommentID uuid.UUID `gorm:"type:uuid;not null;index:idx_comment_like,unique"`
	CreatedAt time.Time
}

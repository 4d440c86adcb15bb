package social

import (
	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/models"
)

// Store is the document-style persistence surface the social layer runs on.
// Implementations must return ErrNotFound when an id does not resolve and
// wrap any other failure in ErrStore.
type Store interface {
	// GetUser resolves a user with Friends and FriendRequests loaded in
	// insertion order.
	GetUser(id uuid.UUID) (*models.User, error)
	// SaveUserRelations persists the user's current Friends and
	// FriendRequests lists, replacing what is stored.
	SaveUserRelations(user *models.User) error

	GetPost(id uuid.UUID) (*models.Post, error)
	CreatePost(post *models.Post) error
	SavePost(post *models.Post) error
	// ListPostsByCreator returns the author's posts in creation order.
	ListPostsByCreator(creatorID uuid.UUID) ([]models.Post, error)

	GetComment(id uuid.UUID) (*models.Comment, error)
	CreateComment(comment *models.Comment) error
	SaveComment(comment *models.Comment) error

	HasLikedPost(userID, postID uuid.UUID) (bool, error)
	AddPostLike(userID, postID uuid.UUID) error
	HasLikedComment(userID, commentID uuid.UUID) (bool, error)
	AddCommentLike(userID, commentID uuid.UUID) error
}

package social

import (
	"time"

	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/models"
	"github.com/jinwoo-p/sociogram/internal/security"
)

// PostService covers authoring and reactions: posts, comments and the
// one-like-per-user guard on both.
type PostService struct {
	store Store
}

func NewPostService(store Store) *PostService {
	return &PostService{store: store}
}

// CreatePost sanitizes the content, stamps the author snapshot and stores
// the post. Image is an optional already-uploaded URL.
func (s *PostService) CreatePost(userID uuid.UUID, content, image string) (*models.Post, error) {
	content = security.SanitizeContent(content)
	if content == "" {
		return nil, ErrValidation
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Content: content,
		Image:   image,
		Likes:   0,
		Creator: models.Creator{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Profile:   user.Profile,
		},
		CreatedAt: time.Now(),
	}

	if err := s.store.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost resolves a post with its comments.
func (s *PostService) GetPost(postID uuid.UUID) (*models.Post, error) {
	return s.store.GetPost(postID)
}

// AddComment stores a sanitized comment under the post with the commenter's
// name snapshot.
func (s *PostService) AddComment(postID, userID uuid.UUID, content string) (*models.Comment, error) {
	content = security.SanitizeContent(content)
	if content == "" {
		return nil, ErrValidation
	}

	post, err := s.store.GetPost(postID)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  post.ID,
		Content: content,
		Likes:   0,
		Creator: models.CommentCreator{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		CreatedAt: time.Now(),
	}

	if err := s.store.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// LikePost increments the post's counter once per user; a second like by
// the same user fails with ErrDuplicateLike and leaves the counter alone.
func (s *PostService) LikePost(userID, postID uuid.UUID) error {
	if _, err := s.store.GetUser(userID); err != nil {
		return err
	}

	post, err := s.store.GetPost(postID)
	if err != nil {
		return err
	}

	liked, err := s.store.HasLikedPost(userID, postID)
	if err != nil {
		return err
	}
	if liked {
		return ErrDuplicateLike
	}

	post.Likes++
	if err := s.store.SavePost(post); err != nil {
		return err
	}

	return s.store.AddPostLike(userID, postID)
}

// LikeComment mirrors LikePost for comments.
func (s *PostService) LikeComment(userID, commentID uuid.UUID) error {
	if _, err := s.store.GetUser(userID); err != nil {
		return err
	}

	comment, err := s.store.GetComment(commentID)
	if err != nil {
		return err
	}

	liked, err := s.store.HasLikedComment(userID, commentID)
	if err != nil {
		return err
	}
	if liked {
		return ErrDuplicateLike
	}

	comment.Likes++
	if err := s.store.SaveComment(comment); err != nil {
		return err
	}

	return s.store.AddCommentLike(userID, commentID)
}

package social

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/models"
)

// memStore is an in-memory Store for tests. It copies records in and out
// so callers never share memory with the "persisted" state, matching how
// a real store behaves.
type memStore struct {
	users    map[uuid.UUID]*models.User
	posts    map[uuid.UUID]*models.Post
	postSeq  []uuid.UUID
	comments map[uuid.UUID]*models.Comment
	commSeq  []uuid.UUID

	postLikes    map[string]struct{}
	commentLikes map[string]struct{}

	// failRelationsFor makes SaveUserRelations fail for the given user,
	// used to exercise the accept compensation path.
	failRelationsFor map[uuid.UUID]bool
}

func newMemStore() *memStore {
	return &memStore{
		users:            make(map[uuid.UUID]*models.User),
		posts:            make(map[uuid.UUID]*models.Post),
		comments:         make(map[uuid.UUID]*models.Comment),
		postLikes:        make(map[string]struct{}),
		commentLikes:     make(map[string]struct{}),
		failRelationsFor: make(map[uuid.UUID]bool),
	}
}

func (s *memStore) addUser(first, last string) *models.User {
	user := &models.User{
		ID:        uuid.New(),
		Username:  first + "." + last,
		FirstName: first,
		LastName:  last,
	}
	s.users[user.ID] = user
	return copyUser(user)
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Friends = append([]models.Friend(nil), u.Friends...)
	cp.FriendRequests = append([]models.FriendRequest(nil), u.FriendRequests...)
	return &cp
}

func (s *memStore) GetUser(id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (s *memStore) SaveUserRelations(user *models.User) error {
	if s.failRelationsFor[user.ID] {
		return fmt.Errorf("%w: injected failure", ErrStore)
	}
	stored, ok := s.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Friends = append([]models.Friend(nil), user.Friends...)
	stored.FriendRequests = append([]models.FriendRequest(nil), user.FriendRequests...)
	return nil
}

func (s *memStore) GetPost(id uuid.UUID) (*models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *post
	cp.Comments = nil
	for _, cid := range s.commSeq {
		if comment := s.comments[cid]; comment.PostID == id {
			cp.Comments = append(cp.Comments, *comment)
		}
	}
	return &cp, nil
}

func (s *memStore) CreatePost(post *models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	cp := *post
	s.posts[post.ID] = &cp
	s.postSeq = append(s.postSeq, post.ID)
	return nil
}

func (s *memStore) SavePost(post *models.Post) error {
	if _, ok := s.posts[post.ID]; !ok {
		return ErrNotFound
	}
	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (s *memStore) ListPostsByCreator(creatorID uuid.UUID) ([]models.Post, error) {
	var out []models.Post
	for _, id := range s.postSeq {
		if post := s.posts[id]; post.Creator.ID == creatorID {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (s *memStore) GetComment(id uuid.UUID) (*models.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *comment
	return &cp, nil
}

func (s *memStore) CreateComment(comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	cp := *comment
	s.comments[comment.ID] = &cp
	s.commSeq = append(s.commSeq, comment.ID)
	return nil
}

func (s *memStore) SaveComment(comment *models.Comment) error {
	if _, ok := s.comments[comment.ID]; !ok {
		return ErrNotFound
	}
	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

func likeKey(a, b uuid.UUID) string {
	return a.String() + "|" + b.String()
}

func (s *memStore) HasLikedPost(userID, postID uuid.UUID) (bool, error) {
	_, ok := s.postLikes[likeKey(userID, postID)]
	return ok, nil
}

func (s *memStore) AddPostLike(userID, postID uuid.UUID) error {
	s.postLikes[likeKey(userID, postID)] = struct{}{}
	return nil
}

func (s *memStore) HasLikedComment(userID, commentID uuid.UUID) (bool, error) {
	_, ok := s.commentLikes[likeKey(userID, commentID)]
	return ok, nil
}

func (s *memStore) AddCommentLike(userID, commentID uuid.UUID) error {
	s.commentLikes[likeKey(userID, commentID)] = struct{}{}
	return nil
}

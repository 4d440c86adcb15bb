package social

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestCreatePost_sanitizesContent(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	author := store.addUser("Alice", "Kim")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain text untouched",
			content: "hello world",
			want:    "hello world",
		},
		{
			name:    "tags stripped",
			content: "<b>hello</b> world",
			want:    "hello world",
		},
		{
			name:    "script dropped entirely",
			content: "<script>alert(1)</script>safe",
			want:    "safe",
		},
		{
			name:    "whitespace trimmed",
			content: "  padded  ",
			want:    "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := svc.CreatePost(author.ID, tt.content, "")
			if err != nil {
				t.Fatalf("CreatePost() error = %v", err)
			}
			if post.Content != tt.want {
				t.Errorf("content = %q, want %q", post.Content, tt.want)
			}
			if strings.Contains(post.Content, "<") {
				t.Errorf("content %q still contains markup", post.Content)
			}
		})
	}
}

func TestCreatePost_validation(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	author := store.addUser("Alice", "Kim")

	for _, content := range []string{"", "   ", "<script>evil()</script>"} {
		if _, err := svc.CreatePost(author.ID, content, ""); !errors.Is(err, ErrValidation) {
			t.Errorf("CreatePost(%q) error = %v, want %v", content, err, ErrValidation)
		}
	}
}

func TestCreatePost_creatorSnapshot(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	author := store.addUser("Alice", "Kim")

	post, err := svc.CreatePost(author.ID, "first post", "/uploads/x.png")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if post.Creator.ID != author.ID {
		t.Error("creator id should be the author's id")
	}
	if post.Creator.FirstName != "Alice" || post.Creator.LastName != "Kim" {
		t.Errorf("creator snapshot = %q %q, want Alice Kim", post.Creator.FirstName, post.Creator.LastName)
	}
	if post.Image != "/uploads/x.png" {
		t.Errorf("image = %q", post.Image)
	}
	if post.Likes != 0 {
		t.Errorf("likes = %d, want 0", post.Likes)
	}
}

func TestCreatePost_unknownAuthor(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	if _, err := svc.CreatePost(uuid.New(), "hello", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreatePost() error = %v, want %v", err, ErrNotFound)
	}
}

func TestLikePost(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	author := store.addUser("Alice", "Kim")
	liker := store.addUser("Bob", "Lee")

	post, err := svc.CreatePost(author.ID, "like me", "")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if err := svc.LikePost(liker.ID, post.ID); err != nil {
		t.Fatalf("LikePost() error = %v", err)
	}

	// A second like by the same user fails and the counter stays put.
	if err := svc.LikePost(liker.ID, post.ID); !errors.Is(err, ErrDuplicateLike) {
		t.Errorf("second LikePost() error = %v, want %v", err, ErrDuplicateLike)
	}

	stored, _ := store.GetPost(post.ID)
	if stored.Likes != 1 {
		t.Errorf("likes = %d, want 1", stored.Likes)
	}

	// A different user can still like it.
	if err := svc.LikePost(author.ID, post.ID); err != nil {
		t.Fatalf("LikePost() by another user error = %v", err)
	}
	stored, _ = store.GetPost(post.ID)
	if stored.Likes != 2 {
		t.Errorf("likes = %d, want 2", stored.Likes)
	}
}

func TestLikePost_notFound(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	user := store.addUser("Alice", "Kim")

	if err := svc.LikePost(user.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("LikePost() error = %v, want %v", err, ErrNotFound)
	}
	if err := svc.LikePost(uuid.New(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("LikePost() with unknown user error = %v, want %v", err, ErrNotFound)
	}
}

func TestAddComment(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	author := store.addUser("Alice", "Kim")
	commenter := store.addUser("Bob", "Lee")

	post, err := svc.CreatePost(author.ID, "discuss", "")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	comment, err := svc.AddComment(post.ID, commenter.ID, "<i>nice</i> post")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	if comment.Content != "nice post" {
		t.Errorf("content = %q, want sanitized text", comment.Content)
	}
	if comment.Creator.ID != commenter.ID || comment.Creator.FirstName != "Bob" {
		t.Error("comment should carry the commenter's snapshot")
	}

	stored, _ := svc.GetPost(post.ID)
	if len(stored.Comments) != 1 || stored.Comments[0].ID != comment.ID {
		t.Error("comment should be attached to the post")
	}
}

func TestAddComment_errors(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	author := store.addUser("Alice", "Kim")
	post, _ := svc.CreatePost(author.ID, "p", "")

	if _, err := svc.AddComment(uuid.New(), author.ID, "hi"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddComment() on unknown post error = %v, want %v", err, ErrNotFound)
	}
	if _, err := svc.AddComment(post.ID, author.ID, "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("AddComment() with empty content error = %v, want %v", err, ErrValidation)
	}
}

func TestLikeComment(t *testing.T) {
	store := newMemStore()
	svc := NewPostService(store)

	author := store.addUser("Alice", "Kim")
	liker := store.addUser("Bob", "Lee")

	post, _ := svc.CreatePost(author.ID, "p", "")
	comment, err := svc.AddComment(post.ID, author.ID, "c")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	if err := svc.LikeComment(liker.ID, comment.ID); err != nil {
		t.Fatalf("LikeComment() error = %v", err)
	}
	if err := svc.LikeComment(liker.ID, comment.ID); !errors.Is(err, ErrDuplicateLike) {
		t.Errorf("second LikeComment() error = %v, want %v", err, ErrDuplicateLike)
	}

	stored, _ := store.GetComment(comment.ID)
	if stored.Likes != 1 {
		t.Errorf("likes = %d, want 1", stored.Likes)
	}
}

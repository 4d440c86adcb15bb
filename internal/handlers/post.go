package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/config"
	"github.com/jinwoo-p/sociogram/internal/handlers/dto"
	"github.com/jinwoo-p/sociogram/internal/middleware"
	"github.com/jinwoo-p/sociogram/internal/models"
	"github.com/jinwoo-p/sociogram/internal/social"
)

type PostHandler struct {
	posts *social.PostService
	feed  *social.FeedAggregator
	cfg   *config.Config
}

func NewPostHandler(posts *social.PostService, feed *social.FeedAggregator, cfg *config.Config) *PostHandler {
	return &PostHandler{posts: posts, feed: feed, cfg: cfg}
}

// GetFeed returns the caller's feed: friends' posts first, own posts
// last.
func (h *PostHandler) GetFeed(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	posts, err := h.feed.BuildFeed(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]gin.H, len(posts))
	for i := range posts {
		result[i] = formatPost(&posts[i])
	}

	c.JSON(http.StatusOK, gin.H{"posts": result})
}

// CreatePost accepts a multipart form with the content and an optional
// image.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	image, err := saveUploadedImage(c, "image", h.cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.CreatePost(userID, c.PostForm("content"), image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, formatPost(post))
}

// GetPost returns one post with its comments.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.posts.GetPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := formatPost(post)
	comments := make([]gin.H, len(post.Comments))
	for i := range post.Comments {
		comments[i] = formatComment(&post.Comments[i])
	}
	response["comments"] = comments

	c.JSON(http.StatusOK, response)
}

func (h *PostHandler) LikePost(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.posts.LikePost(userID, postID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post liked"})
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.posts.AddComment(postID, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, formatComment(comment))
}

func (h *PostHandler) LikeComment(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.posts.LikeComment(userID, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment liked"})
}

func formatPost(post *models.Post) gin.H {
	return gin.H{
		"id":         post.ID,
		"content":    post.Content,
		"image":      post.Image,
		"likes":      post.Likes,
		"created_at": post.CreatedAt,
		"creator": gin.H{
			"id":         post.Creator.ID,
			"first_name": post.Creator.FirstName,
			"last_name":  post.Creator.LastName,
			"profile":    post.Creator.Profile,
		},
	}
}

func formatComment(comment *models.Comment) gin.H {
	return gin.H{
		"id":      comment.ID,
		"post_id": comment.PostID,
		"content": comment.Content,
		"likes":   comment.Likes,
		"creator": gin.H{
			"id":         comment.Creator.ID,
			"first_name": comment.Creator.FirstName,
			"last_name":  comment.Creator.LastName,
		},
	}
}

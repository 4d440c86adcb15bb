package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/chat"
	"github.com/jinwoo-p/sociogram/internal/database"
	"github.com/jinwoo-p/sociogram/internal/middleware"
	"github.com/jinwoo-p/sociogram/internal/models"
	"github.com/jinwoo-p/sociogram/internal/social"
)

type UserHandler struct {
	db      *database.Database
	friends *social.FriendManager
	hub     *chat.Hub
}

func NewUserHandler(db *database.Database, friends *social.FriendManager, hub *chat.Hub) *UserHandler {
	return &UserHandler{db: db, friends: friends, hub: hub}
}

// ListUsers returns every registered user, the directory page.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]gin.H, len(users))
	for i := range users {
		result[i] = formatUser(&users[i])
	}

	c.JSON(http.StatusOK, gin.H{"users": result})
}

// GetMe returns the caller's own record.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatProfile(user, nil))
}

// GetUser returns a profile page: the user plus friends, pending requests
// and their posts.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.db.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.db.ListPostsByCreator(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatProfile(user, posts))
}

// SendFriendRequest proposes a friendship from the caller to :id.
func (h *UserHandler) SendFriendRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.friends.SendRequest(userID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request sent"})
}

// AcceptFriendRequest accepts the pending request from :id.
func (h *UserHandler) AcceptFriendRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requesterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.friends.AcceptRequest(userID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request accepted"})
}

// DeclineFriendRequest removes the pending request from :id, if any.
func (h *UserHandler) DeclineFriendRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	requesterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.friends.DeclineRequest(userID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend request declined"})
}

// ChatFriends returns the caller's friends with their current chat
// presence, the data behind the chat page.
func (h *UserHandler) ChatFriends(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	friends := make([]gin.H, len(user.Friends))
	for i, f := range user.Friends {
		friends[i] = gin.H{
			"id":         f.FriendID,
			"first_name": f.FirstName,
			"last_name":  f.LastName,
		}
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends, "online": h.hub.OnlineNames()})
}

func formatUser(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"profile":    user.Profile,
		"created_at": user.CreatedAt,
	}
}

func formatProfile(user *models.User, posts []models.Post) gin.H {
	friends := make([]gin.H, len(user.Friends))
	for i, f := range user.Friends {
		friends[i] = gin.H{
			"id":         f.FriendID,
			"first_name": f.FirstName,
			"last_name":  f.LastName,
		}
	}

	requests := make([]gin.H, len(user.FriendRequests))
	for i, r := range user.FriendRequests {
		requests[i] = gin.H{
			"id":         r.RequesterID,
			"first_name": r.FirstName,
			"last_name":  r.LastName,
		}
	}

	response := formatUser(user)
	response["friends"] = friends
	response["friend_requests"] = requests

	if posts != nil {
		formatted := make([]gin.H, len(posts))
		for i := range posts {
			formatted[i] = formatPost(&posts[i])
		}
		response["posts"] = formatted
	}

	return response
}

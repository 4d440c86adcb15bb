package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinwoo-p/sociogram/internal/social"
	"github.com/jinwoo-p/sociogram/pkg/logger"
)

// respondError maps social error kinds to HTTP statuses. Everything the
// social layer returns is recoverable at this boundary; nothing here
// should take the process down.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, social.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, social.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, social.ErrAlreadyRequested),
		errors.Is(err, social.ErrAlreadyFriends),
		errors.Is(err, social.ErrRequestNotFound),
		errors.Is(err, social.ErrDuplicateLike):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

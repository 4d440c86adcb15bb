package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/config"
	"github.com/jinwoo-p/sociogram/internal/security"
)

var errBadImage = errors.New("only jpg, jpeg and png files are allowed")

// saveUploadedImage stores an optional multipart image under the uploads
// dir and returns its public URL. Returns "" when the field is absent.
func saveUploadedImage(c *gin.Context, field string, cfg *config.Config) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	if !security.AllowedImageExt(file.Filename) {
		return "", errBadImage
	}
	if file.Size > cfg.UploadMaxSize {
		return "", fmt.Errorf("file exceeds %d bytes", cfg.UploadMaxSize)
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(cfg.UploadDir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jinwoo-p/sociogram/internal/social"
)

// Database implements social.Store on top of gorm.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// wrapErr maps driver errors onto the error kinds the social layer
// understands.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return social.ErrNotFound
	}
	return fmt.Errorf("%w: %v", social.ErrStore, err)
}

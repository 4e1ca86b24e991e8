// Package store owns all database access for users and posts. Handlers never
// touch *gorm.DB directly; they go through a Store constructed once at startup.
package store

import (
	"errors"
	"fmt"

	"github.com/Anastasia-Osteen/blogly-2/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an id-based lookup matches no row. Handlers
// translate it to a 404 page.
var ErrNotFound = errors.New("store: record not found")

// ValidationError reports a required form field that was absent or empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: field %q must not be empty", e.Field)
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the users and posts tables.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&models.User{}, &models.Post{})
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// notFound maps gorm's sentinel onto ours so callers only need errors.Is
// against ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

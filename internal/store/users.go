package store

import (
	"context"

	"github.com/Anastasia-Osteen/blogly-2/models"
	"gorm.io/gorm"
)

// UserFields holds the mutable attributes of a user. The id is assigned by the
// database and never changes.
type UserFields struct {
	FirstName string
	LastName  string
	ImageURL  string
}

func (f UserFields) validate() error {
	switch {
	case f.FirstName == "":
		return &ValidationError{Field: "first_name"}
	case f.LastName == "":
		return &ValidationError{Field: "last_name"}
	case f.ImageURL == "":
		return &ValidationError{Field: "image_url"}
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, f UserFields) (*models.User, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	user := &models.User{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		ImageURL:  f.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser loads a user and their posts, newest post first.
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&user, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser overwrites the three mutable fields and nothing else.
func (s *Store) UpdateUser(ctx context.Context, id uint, f UserFields) (*models.User, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	user.FirstName = f.FirstName
	user.LastName = f.LastName
	user.ImageURL = f.ImageURL
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user and all of their posts in one transaction, so
// no post can be left pointing at a missing author.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

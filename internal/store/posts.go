package store

import (
	"context"

	"github.com/Anastasia-Osteen/blogly-2/models"
)

// PostFields holds the attributes a form may set on a post. The author and
// creation time are fixed at creation.
type PostFields struct {
	Title   string
	Content string
}

func (f PostFields) validate() error {
	switch {
	case f.Title == "":
		return &ValidationError{Field: "title"}
	case f.Content == "":
		return &ValidationError{Field: "content"}
	}
	return nil
}

// CreatePost inserts a post authored by userID. The author must exist.
func (s *Store) CreatePost(ctx context.Context, userID uint, f PostFields) (*models.Post, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, notFound(err)
	}
	post := &models.Post{
		Title:   f.Title,
		Content: f.Content,
		UserID:  user.ID,
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

// RecentPosts returns up to limit posts, newest first. The homepage uses 5.
func (s *Store) RecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost overwrites title and content only; UserID and CreatedAt are
// immutable.
func (s *Store) UpdatePost(ctx context.Context, id uint, f PostFields) (*models.Post, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, notFound(err)
	}
	post.Title = f.Title
	post.Content = f.Content
	if err := s.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post and returns it so the caller can redirect to
// the author's page.
func (s *Store) DeletePost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, notFound(err)
	}
	if err := s.db.WithContext(ctx).Delete(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

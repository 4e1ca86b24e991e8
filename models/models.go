package models

import (
	"fmt"
	"time"
)

type User struct {
	ID        uint   `gorm:"primarykey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	ImageURL  string `gorm:"not null"`
	Posts     []Post
}

// FullName is what the templates show wherever a user is named.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

type Post struct {
	ID        uint      `gorm:"primarykey"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index:idx_posts_created_at,sort:desc"`
	UserID    uint      `gorm:"not null;index"`
	User      *User
}

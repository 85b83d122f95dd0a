// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Comment and User, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a blog article entity in the system.
// It contains the article's content, author relationship and publication metadata.
type Article struct {
	ID          int64
	Title       string
	Content     string
	AuthorID    int64
	ImagePath   string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

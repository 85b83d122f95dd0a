package entity

import "time"

// Comment represents a reader comment attached to an article.
// Content is stored HTML-escaped; see the comment use case for the sanitization rules.
type Comment struct {
	ID        int64
	ArticleID int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}

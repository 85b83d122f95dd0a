package comment

import (
	"time"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// DTO represents the JSON structure for a single comment.
type DTO struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(e *entity.Comment) DTO {
	return DTO{
		ID:        e.ID,
		ArticleID: e.ArticleID,
		UserID:    e.UserID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

func toDTOWithUser(c repository.CommentWithUser) DTO {
	out := toDTO(c.Comment)
	out.UserName = c.UserName
	return out
}

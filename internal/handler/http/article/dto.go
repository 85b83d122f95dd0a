// Package article provides HTTP handlers for article endpoints.
// It includes handlers for listing, searching, reading, creating, updating
// and deleting articles.
package article

import (
	"time"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// DTO represents the JSON structure for a single article.
type DTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    int64     `json:"author_id"`
	Author      string    `json:"author,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentDTO represents one comment in an article detail response.
type CommentDTO struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DetailDTO is the article detail response: the full article plus its
// comment thread.
type DetailDTO struct {
	DTO
	Comments []CommentDTO `json:"comments"`
}

func toDTO(e *entity.Article) DTO {
	return DTO{
		ID:          e.ID,
		Title:       e.Title,
		Content:     e.Content,
		AuthorID:    e.AuthorID,
		ImagePath:   e.ImagePath,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toCommentDTOs(comments []repository.CommentWithUser) []CommentDTO {
	out := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentDTO{
			ID:        c.Comment.ID,
			ArticleID: c.Comment.ArticleID,
			UserID:    c.Comment.UserID,
			UserName:  c.UserName,
			Content:   c.Comment.Content,
			CreatedAt: c.Comment.CreatedAt,
		})
	}
	return out
}

// Package repository defines the persistence interfaces the use cases depend on.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"blog-backend/internal/domain/entity"
)

// ArticleWithAuthor represents an article along with its author's display name.
type ArticleWithAuthor struct {
	Article    *entity.Article
	AuthorName string
}

type ArticleRepository interface {
	// List retrieves all articles ordered by publish time descending.
	// Used by the diagnostic (per-row loading) listing path.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListWithAuthors retrieves all articles joined with their author names,
	// ordered by publish time descending. Comment counts are loaded separately
	// in a single batch query (see CommentRepository.CountByArticleIDs).
	ListWithAuthors(ctx context.Context) ([]ArticleWithAuthor, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetWithAuthor retrieves an article by ID and includes the author name.
	// Returns (nil, "", nil) if the article is not found.
	GetWithAuthor(ctx context.Context, id int64) (*entity.Article, string, error)
	// Search finds articles whose title or content matches the term,
	// ordered by creation time descending.
	Search(ctx context.Context, term string) ([]*entity.Article, error)
	// Create inserts the article and fills in its generated ID.
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

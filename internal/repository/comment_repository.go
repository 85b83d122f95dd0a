package repository

import (
	"context"

	"blog-backend/internal/domain/entity"
)

// CommentWithUser represents a comment along with the commenter's display name.
type CommentWithUser struct {
	Comment  *entity.Comment
	UserName string
}

type CommentRepository interface {
	// ListByArticle retrieves comments for an article, newest first,
	// with commenter names attached.
	ListByArticle(ctx context.Context, articleID int64) ([]CommentWithUser, error)
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// Create inserts the comment and fills in its generated ID.
	Create(ctx context.Context, comment *entity.Comment) error
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) error
	// CountByArticle returns the number of comments on a single article.
	CountByArticle(ctx context.Context, articleID int64) (int, error)
	// CountByArticleIDs counts comments for many articles in one query,
	// avoiding the N+1 pattern on the eager listing path. Articles with no
	// comments are absent from the result map.
	CountByArticleIDs(ctx context.Context, articleIDs []int64) (map[int64]int, error)
	// FirstByArticle returns the oldest remaining comment on an article,
	// or nil if the article has none.
	FirstByArticle(ctx context.Context, articleID int64) (*CommentWithUser, error)
	Count(ctx context.Context) (int64, error)
}

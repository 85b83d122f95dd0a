package comment

import (
	"context"
	"fmt"
	"html"
	"time"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// Invalidator drops derived cached views after a write changes their inputs.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// CreateInput represents the input parameters for creating a comment.
type CreateInput struct {
	ArticleID int64
	UserID    int64
	Content   string
}

// DeleteResult reports the state of an article's comment thread after a
// deletion: how many comments remain and the oldest one still standing.
type DeleteResult struct {
	RemainingCount int
	FirstRemaining *repository.CommentWithUser
}

// Service provides comment management use cases.
// Comment bodies are HTML-escaped before storage so stored content is inert
// when rendered.
type Service struct {
	Repo     repository.CommentRepository
	Articles repository.ArticleRepository
	Users    repository.UserRepository
	Cache    Invalidator
}

// ListByArticle returns an article's comments, newest first, with commenter
// names. Returns ErrArticleNotFound if the article does not exist.
func (s *Service) ListByArticle(ctx context.Context, articleID int64) ([]repository.CommentWithUser, error) {
	if articleID <= 0 {
		return nil, ErrArticleNotFound
	}
	art, err := s.Articles.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	comments, err := s.Repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create stores a new comment after validating that both the article and the
// commenting user exist. The body is HTML-escaped before it is written, and
// the cached listing is invalidated because its comment counts just changed.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	if err := entity.ValidateContent(in.Content); err != nil {
		return nil, err
	}
	if in.ArticleID <= 0 {
		return nil, &entity.ValidationError{Field: "article_id", Message: "must be positive"}
	}
	if in.UserID <= 0 {
		return nil, &entity.ValidationError{Field: "user_id", Message: "must be positive"}
	}

	art, err := s.Articles.Get(ctx, in.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, &entity.ValidationError{Field: "article_id", Message: "does not exist"}
	}

	exists, err := s.Users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, &entity.ValidationError{Field: "user_id", Message: "does not exist"}
	}

	c := &entity.Comment{
		ArticleID: in.ArticleID,
		UserID:    in.UserID,
		Content:   html.EscapeString(in.Content),
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.Cache.Invalidate(ctx)
	return c, nil
}

// Update replaces a comment's body in place. The new body is HTML-escaped
// like on create. The cached listing is left alone: it shows comment counts,
// not bodies, and an edit changes no count.
func (s *Service) Update(ctx context.Context, id int64, content string) (*entity.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}
	if err := entity.ValidateContent(content); err != nil {
		return nil, err
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}

	c.Content = html.EscapeString(content)
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

// Delete removes a comment, invalidates the cached views, and reports the
// article's remaining thread state.
// Returns ErrCommentNotFound if the comment does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	s.Cache.Invalidate(ctx)

	remaining, err := s.Repo.CountByArticle(ctx, c.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("count remaining comments: %w", err)
	}
	first, err := s.Repo.FirstByArticle(ctx, c.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("first remaining comment: %w", err)
	}
	return &DeleteResult{RemainingCount: remaining, FirstRemaining: first}, nil
}

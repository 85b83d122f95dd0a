package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// Invalidator drops derived cached views after a write changes their inputs.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title     string
	Content   string
	AuthorID  int64
	ImagePath string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID      int64
	Title   *string
	Content *string
}

// Service provides article management use cases.
// Writes validate their input, delegate persistence to the repository, and
// invalidate the cached listing and statistics views.
type Service struct {
	Repo     repository.ArticleRepository
	Users    repository.UserRepository
	Comments repository.CommentRepository
	Cache    Invalidator
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetDetail retrieves an article together with its author name and comments,
// newest comment first.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetDetail(ctx context.Context, id int64) (*entity.Article, string, []repository.CommentWithUser, error) {
	if id <= 0 {
		return nil, "", nil, ErrInvalidArticleID
	}

	article, authorName, err := s.Repo.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, "", nil, fmt.Errorf("get article with author: %w", err)
	}
	if article == nil {
		return nil, "", nil, ErrArticleNotFound
	}

	comments, err := s.Comments.ListByArticle(ctx, id)
	if err != nil {
		return nil, "", nil, fmt.Errorf("list article comments: %w", err)
	}
	return article, authorName, comments, nil
}

// Search finds articles whose title or content matches the given term.
// A blank term matches nothing and returns an empty result without touching
// the repository.
func (s *Service) Search(ctx context.Context, term string) ([]*entity.Article, error) {
	if strings.TrimSpace(term) == "" {
		return []*entity.Article{}, nil
	}

	articles, err := s.Repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// Create creates a new article with the provided input. The publication time
// is set to the current time. Returns a ValidationError if any input field is
// invalid or the author does not exist.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateContent(in.Content); err != nil {
		return nil, err
	}
	if in.AuthorID <= 0 {
		return nil, &entity.ValidationError{Field: "author_id", Message: "must be positive"}
	}
	exists, err := s.Users.Exists(ctx, in.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}
	if !exists {
		return nil, &entity.ValidationError{Field: "author_id", Message: "does not exist"}
	}

	now := time.Now()
	art := &entity.Article{
		Title:       in.Title,
		Content:     in.Content,
		AuthorID:    in.AuthorID,
		ImagePath:   in.ImagePath,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	s.Cache.Invalidate(ctx)
	return art, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		art.Title = *in.Title
	}
	if in.Content != nil {
		if err := entity.ValidateContent(*in.Content); err != nil {
			return nil, err
		}
		art.Content = *in.Content
	}
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	s.Cache.Invalidate(ctx)
	return art, nil
}

// Delete removes an article by its ID. Comments are removed with it by the
// schema's cascade rule.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	s.Cache.Invalidate(ctx)
	return nil
}

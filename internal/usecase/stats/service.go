// Package stats provides the cached site statistics view.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"blog-backend/internal/cache"
	"blog-backend/internal/observability/metrics"
	"blog-backend/internal/repository"
	"blog-backend/internal/usecase/article"
)

// DefaultTTL is how long a computed statistics payload stays cached.
const DefaultTTL = 60 * time.Second

// Stats is the site-wide entity counts payload.
type Stats struct {
	Articles int64 `json:"articles"`
	Comments int64 `json:"comments"`
	Users    int64 `json:"users"`
}

// Service serves site statistics through the same cache-aside pattern as the
// article listing. The payload lives under article.StatsKey, which write-path
// invalidation drops together with the listing key.
type Service struct {
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
	Users    repository.UserRepository
	Store    cache.Store

	// TTL defaults to DefaultTTL when zero.
	TTL time.Duration
}

func (s *Service) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultTTL
}

// Get returns the serialized statistics payload, recomputing on a miss.
// A store failure degrades to direct recomputation.
func (s *Service) Get(ctx context.Context) ([]byte, error) {
	payload, ok, err := s.Store.Get(ctx, article.StatsKey)
	if err != nil {
		slog.Warn("stats cache read failed, falling back to recompute",
			slog.String("error", err.Error()))
		metrics.RecordCacheMiss(article.StatsKey)
	} else if ok {
		metrics.RecordCacheHit(article.StatsKey)
		return payload, nil
	} else {
		metrics.RecordCacheMiss(article.StatsKey)
	}

	payload, err = s.recompute(ctx)
	if err != nil {
		// a failed rebuild must never populate the cache
		return nil, err
	}
	if err := s.Store.Set(ctx, article.StatsKey, payload, s.ttl()); err != nil {
		slog.Warn("stats cache write failed", slog.String("error", err.Error()))
	}
	return payload, nil
}

func (s *Service) recompute(ctx context.Context) ([]byte, error) {
	articles, err := s.Articles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	comments, err := s.Comments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	metrics.UpdateArticlesTotal(articles)
	metrics.UpdateCommentsTotal(comments)
	metrics.UpdateUsersTotal(users)

	payload, err := json.Marshal(Stats{Articles: articles, Comments: comments, Users: users})
	if err != nil {
		return nil, fmt.Errorf("marshal stats: %w", err)
	}
	return payload, nil
}

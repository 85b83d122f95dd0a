package article

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"blog-backend/internal/cache"
	"blog-backend/internal/observability/metrics"
	"blog-backend/internal/repository"
	"blog-backend/internal/utils/text"
)

// Mode selects how the listing is computed and cached.
type Mode int

const (
	// ModeNormal serves from the shared listing key, recomputing on miss.
	ModeNormal Mode = iota

	// ModeDiagnostic always recomputes with naive per-row relation loading
	// and stores the result under a throwaway time-stamped key. It never
	// reads or writes the shared key, so switching modes cannot poison the
	// entries normal traffic sees.
	ModeDiagnostic
)

func (m Mode) String() string {
	if m == ModeDiagnostic {
		return "diagnostic"
	}
	return "normal"
}

const (
	// ListKey is the shared cache key for the article listing payload.
	ListKey = "articles_list"

	// StatsKey is the cache key for the site statistics payload. Listed here
	// because write-path invalidation drops both views together.
	StatsKey = "stats"

	diagnosticKeyFormat = "articles_list_diag_%d"
)

const (
	DefaultListTTL       = 60 * time.Second
	DefaultDiagnosticTTL = 5 * time.Second
)

const excerptLength = 200

// Excerpt returns the leading characters of content with a trailing ellipsis,
// the form the listing payload uses.
func Excerpt(content string) string {
	return Truncate(content, excerptLength) + "..."
}

// Truncate returns at most n characters of content, counted in runes so a
// multi-byte character is never split.
func Truncate(content string, n int) string {
	if text.CountRunes(content) <= n {
		return content
	}
	return string([]rune(content)[:n])
}

// ListItem is one article in the listing payload.
type ListItem struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	CommentsCount int       `json:"comments_count"`
	PublishedAt   time.Time `json:"published_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListingCache serves the article listing through a cache-aside layer.
//
// Reads in normal mode check the shared key first and return a live entry
// unchanged; on a miss the payload is rebuilt from the database, stored with
// a short TTL, and returned. Concurrent misses for the same key collapse into
// one rebuild. Store failures degrade to direct recomputation, so the cache
// being down never takes listing reads down with it.
type ListingCache struct {
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
	Users    repository.UserRepository
	Store    cache.Store

	// ListTTL and DiagnosticTTL default to DefaultListTTL and
	// DefaultDiagnosticTTL when zero.
	ListTTL       time.Duration
	DiagnosticTTL time.Duration

	// Clock overrides the time source for diagnostic key generation.
	Clock func() time.Time

	group singleflight.Group
}

func (c *ListingCache) now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return time.Now()
}

func (c *ListingCache) listTTL() time.Duration {
	if c.ListTTL > 0 {
		return c.ListTTL
	}
	return DefaultListTTL
}

func (c *ListingCache) diagnosticTTL() time.Duration {
	if c.DiagnosticTTL > 0 {
		return c.DiagnosticTTL
	}
	return DefaultDiagnosticTTL
}

// List returns the serialized listing payload for the given mode.
func (c *ListingCache) List(ctx context.Context, mode Mode) ([]byte, error) {
	if mode == ModeDiagnostic {
		return c.listDiagnostic(ctx)
	}

	if payload, ok := c.lookup(ctx, ListKey); ok {
		return payload, nil
	}

	v, err, _ := c.group.Do(ListKey, func() (interface{}, error) {
		payload, err := c.recomputeEager(ctx)
		if err != nil {
			// a failed rebuild must never populate the cache
			return nil, err
		}
		c.put(ctx, ListKey, payload, c.listTTL())
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// listDiagnostic rebuilds the payload with per-row relation loading and parks
// it under a fresh time-stamped key that nothing will ever read back.
func (c *ListingCache) listDiagnostic(ctx context.Context) ([]byte, error) {
	payload, err := c.recomputeNaive(ctx)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf(diagnosticKeyFormat, c.now().UnixNano())
	c.put(ctx, key, payload, c.diagnosticTTL())
	return payload, nil
}

// Invalidate drops the cached listing and statistics views. Every write that
// changes what those views would show calls this. Delete failures are logged
// and ignored: a stale entry expires within one TTL on its own.
func (c *ListingCache) Invalidate(ctx context.Context) {
	metrics.RecordCacheInvalidation()
	for _, key := range []string{ListKey, StatsKey} {
		if err := c.Store.Delete(ctx, key); err != nil {
			slog.Warn("cache invalidation failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}
}

// lookup reads key from the store. A store error counts as a miss so the
// caller recomputes instead of failing the request.
func (c *ListingCache) lookup(ctx context.Context, key string) ([]byte, bool) {
	payload, ok, err := c.Store.Get(ctx, key)
	if err != nil {
		slog.Warn("cache read failed, falling back to recompute",
			slog.String("key", key),
			slog.String("error", err.Error()))
		metrics.RecordCacheMiss(key)
		return nil, false
	}
	if !ok {
		metrics.RecordCacheMiss(key)
		return nil, false
	}
	metrics.RecordCacheHit(key)
	return payload, true
}

// put stores a freshly built payload. A failed write is logged and dropped;
// the next read just recomputes again.
func (c *ListingCache) put(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.Store.Set(ctx, key, payload, ttl); err != nil {
		slog.Warn("cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// recomputeEager builds the listing payload with batched relation loading:
// one join for author names, one grouped query for comment counts.
func (c *ListingCache) recomputeEager(ctx context.Context) ([]byte, error) {
	start := time.Now()

	rows, err := c.Articles.ListWithAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles with authors: %w", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Article.ID)
	}
	counts, err := c.Comments.CountByArticleIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	items := make([]ListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ListItem{
			ID:            row.Article.ID,
			Title:         row.Article.Title,
			Content:       Excerpt(row.Article.Content),
			Author:        row.AuthorName,
			CommentsCount: counts[row.Article.ID],
			PublishedAt:   row.Article.PublishedAt,
			CreatedAt:     row.Article.CreatedAt,
		})
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal listing: %w", err)
	}
	metrics.RecordListRecompute(ModeNormal.String(), time.Since(start))
	return payload, nil
}

// recomputeNaive builds the same payload shape but loads the author and
// comment count per article, giving operators an N+1 baseline to compare
// the eager path against.
func (c *ListingCache) recomputeNaive(ctx context.Context) ([]byte, error) {
	start := time.Now()

	articles, err := c.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	items := make([]ListItem, 0, len(articles))
	for _, art := range articles {
		var authorName string
		user, err := c.Users.Get(ctx, art.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("get author %d: %w", art.AuthorID, err)
		}
		if user != nil {
			authorName = user.Name
		}

		count, err := c.Comments.CountByArticle(ctx, art.ID)
		if err != nil {
			return nil, fmt.Errorf("count comments for article %d: %w", art.ID, err)
		}

		items = append(items, ListItem{
			ID:            art.ID,
			Title:         art.Title,
			Content:       Excerpt(art.Content),
			Author:        authorName,
			CommentsCount: count,
			PublishedAt:   art.PublishedAt,
			CreatedAt:     art.CreatedAt,
		})
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal listing: %w", err)
	}
	metrics.RecordListRecompute(ModeDiagnostic.String(), time.Since(start))
	return payload, nil
}

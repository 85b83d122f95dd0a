package stats_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/cache"
	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
	"blog-backend/internal/usecase/article"
	"blog-backend/internal/usecase/stats"
)

type countingRepo struct {
	count int64
	calls int
	err   error
}

func (r *countingRepo) Count(context.Context) (int64, error) {
	r.calls++
	return r.count, r.err
}

// articleCounter adapts countingRepo to the full article repository interface.
type articleCounter struct{ countingRepo }

func (r *articleCounter) List(context.Context) ([]*entity.Article, error) { return nil, nil }
func (r *articleCounter) ListWithAuthors(context.Context) ([]repository.ArticleWithAuthor, error) {
	return nil, nil
}
func (r *articleCounter) Get(context.Context, int64) (*entity.Article, error) { return nil, nil }
func (r *articleCounter) GetWithAuthor(context.Context, int64) (*entity.Article, string, error) {
	return nil, "", nil
}
func (r *articleCounter) Search(context.Context, string) ([]*entity.Article, error) {
	return nil, nil
}
func (r *articleCounter) Create(context.Context, *entity.Article) error { return nil }
func (r *articleCounter) Update(context.Context, *entity.Article) error { return nil }
func (r *articleCounter) Delete(context.Context, int64) error           { return nil }

type commentCounter struct{ countingRepo }

func (r *commentCounter) ListByArticle(context.Context, int64) ([]repository.CommentWithUser, error) {
	return nil, nil
}
func (r *commentCounter) Get(context.Context, int64) (*entity.Comment, error) { return nil, nil }
func (r *commentCounter) Create(context.Context, *entity.Comment) error       { return nil }
func (r *commentCounter) Update(context.Context, *entity.Comment) error       { return nil }
func (r *commentCounter) Delete(context.Context, int64) error                 { return nil }
func (r *commentCounter) CountByArticle(context.Context, int64) (int, error)  { return 0, nil }
func (r *commentCounter) CountByArticleIDs(context.Context, []int64) (map[int64]int, error) {
	return nil, nil
}
func (r *commentCounter) FirstByArticle(context.Context, int64) (*repository.CommentWithUser, error) {
	return nil, nil
}

type userCounter struct{ countingRepo }

func (r *userCounter) Get(context.Context, int64) (*entity.User, error) { return nil, nil }
func (r *userCounter) Exists(context.Context, int64) (bool, error)      { return false, nil }
func (r *userCounter) Create(context.Context, *entity.User) error       { return nil }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newService(store cache.Store) (*stats.Service, *articleCounter) {
	articles := &articleCounter{countingRepo{count: 10}}
	svc := &stats.Service{
		Articles: articles,
		Comments: &commentCounter{countingRepo{count: 25}},
		Users:    &userCounter{countingRepo{count: 3}},
		Store:    store,
	}
	return svc, articles
}

func TestService_Get_ComputesAndCaches(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	store := cache.NewMemoryStore(cache.WithClock(clk.Now))
	svc, articles := newService(store)

	payload, err := svc.Get(ctx)
	require.NoError(t, err)

	var got stats.Stats
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, stats.Stats{Articles: 10, Comments: 25, Users: 3}, got)

	// second read is served from cache
	_, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, articles.calls)

	// entry expires after the TTL
	clk.Advance(61 * time.Second)
	_, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, articles.calls)
}

func TestService_Get_InvalidationForcesRecompute(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, articles := newService(store)

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	// a write-path invalidation drops the stats key
	require.NoError(t, store.Delete(ctx, article.StatsKey))
	articles.count = 11

	payload, err := svc.Get(ctx)
	require.NoError(t, err)
	var got stats.Stats
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, int64(11), got.Articles)
}

func TestService_Get_FailedRecomputeNotCached(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, articles := newService(store)
	articles.err = errors.New("db down")

	_, err := svc.Get(ctx)
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

type downStore struct{}

func (downStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("unreachable")
}
func (downStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("unreachable")
}
func (downStore) Delete(context.Context, string) error { return errors.New("unreachable") }

func TestService_Get_StoreDownStillServes(t *testing.T) {
	svc, _ := newService(downStore{})

	payload, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

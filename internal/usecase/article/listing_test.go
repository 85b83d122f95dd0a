package article_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/cache"
	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
	"blog-backend/internal/usecase/article"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingStore wraps a Store and remembers every key written.
type recordingStore struct {
	cache.Store
	setKeys []string
}

func (r *recordingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	r.setKeys = append(r.setKeys, key)
	return r.Store.Set(ctx, key, value, ttl)
}

type downStore struct{}

func (downStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store unreachable")
}

func (downStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store unreachable")
}

func (downStore) Delete(context.Context, string) error {
	return errors.New("store unreachable")
}

func newListing(store cache.Store, clk *fakeClock) (*article.ListingCache, *stubArticleRepo, *stubCommentRepo, *stubUserRepo) {
	articles := &stubArticleRepo{
		articles: []*entity.Article{fixtureArticle(1, "first"), fixtureArticle(2, "second")},
		withAuthors: []repository.ArticleWithAuthor{
			{Article: fixtureArticle(1, "first"), AuthorName: "alice"},
			{Article: fixtureArticle(2, "second"), AuthorName: "alice"},
		},
	}
	comments := &stubCommentRepo{counts: map[int64]int{1: 3}}
	users := &stubUserRepo{users: map[int64]*entity.User{1: {ID: 1, Name: "alice"}}}
	lc := &article.ListingCache{
		Articles: articles,
		Comments: comments,
		Users:    users,
		Store:    store,
		Clock:    clk.Now,
	}
	return lc, articles, comments, users
}

func TestListingCache_MissRecomputesThenHits(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	store := cache.NewMemoryStore(cache.WithClock(clk.Now))
	lc, articles, _, _ := newListing(store, clk)

	first, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, 1, articles.listWithAuthorsCalls)

	// data changes underneath, but a live entry is returned unchanged
	articles.withAuthors = articles.withAuthors[:1]
	second, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, articles.listWithAuthorsCalls, "hit must not recompute")
}

func TestListingCache_PayloadShape(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	lc, articles, _, _ := newListing(cache.NewMemoryStore(cache.WithClock(clk.Now)), clk)
	articles.withAuthors[0].Article.Content = strings.Repeat("x", 500)

	payload, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)

	var items []article.ListItem
	require.NoError(t, json.Unmarshal(payload, &items))
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "alice", items[0].Author)
	assert.Equal(t, 3, items[0].CommentsCount)
	assert.Equal(t, 0, items[1].CommentsCount)
	assert.Equal(t, strings.Repeat("x", 200)+"...", items[0].Content)
}

func TestListingCache_EntryExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	store := cache.NewMemoryStore(cache.WithClock(clk.Now))
	lc, articles, _, _ := newListing(store, clk)

	_, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)

	clk.Advance(61 * time.Second)
	_, err = lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, 2, articles.listWithAuthorsCalls, "expired entry must recompute")
}

func TestListingCache_InvalidateDropsListingAndStats(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	store := cache.NewMemoryStore(cache.WithClock(clk.Now))
	lc, articles, _, _ := newListing(store, clk)

	require.NoError(t, store.Set(ctx, article.StatsKey, []byte(`{"articles":2}`), time.Minute))
	_, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)

	lc.Invalidate(ctx)

	_, ok, _ := store.Get(ctx, article.ListKey)
	assert.False(t, ok, "listing key must be gone")
	_, ok, _ = store.Get(ctx, article.StatsKey)
	assert.False(t, ok, "stats key must be gone")

	// the very next read reflects fresh data
	articles.withAuthors = articles.withAuthors[:1]
	payload, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)
	var items []article.ListItem
	require.NoError(t, json.Unmarshal(payload, &items))
	assert.Len(t, items, 1)
}

func TestListingCache_DiagnosticNeverTouchesNormalKey(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	mem := cache.NewMemoryStore(cache.WithClock(clk.Now))
	store := &recordingStore{Store: mem}
	lc, articles, _, users := newListing(store, clk)

	normal, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)

	// diagnostic run with changed data
	articles.articles = articles.articles[:1]
	diag, err := lc.List(ctx, article.ModeDiagnostic)
	require.NoError(t, err)
	assert.NotEqual(t, normal, diag)
	assert.Greater(t, users.getCalls, 0, "diagnostic path loads authors per row")

	// the shared entry is untouched
	again, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, normal, again)

	// diagnostic writes went to their own time-stamped keys
	for _, key := range store.setKeys {
		if key == article.ListKey {
			continue
		}
		assert.True(t, strings.HasPrefix(key, "articles_list_diag_"), "unexpected key %q", key)
	}
}

func TestListingCache_DiagnosticKeysAreUnique(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	store := &recordingStore{Store: cache.NewMemoryStore(cache.WithClock(clk.Now))}
	lc, articles, _, _ := newListing(store, clk)

	_, err := lc.List(ctx, article.ModeDiagnostic)
	require.NoError(t, err)
	clk.Advance(time.Millisecond)
	_, err = lc.List(ctx, article.ModeDiagnostic)
	require.NoError(t, err)

	require.Len(t, store.setKeys, 2)
	assert.NotEqual(t, store.setKeys[0], store.setKeys[1])
	assert.Equal(t, 2, articles.listCalls, "diagnostic mode always recomputes")
}

func TestListingCache_FailedRecomputeIsNotCached(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	store := cache.NewMemoryStore(cache.WithClock(clk.Now))
	lc, articles, _, _ := newListing(store, clk)
	articles.err = errors.New("db down")

	_, err := lc.List(ctx, article.ModeNormal)
	require.Error(t, err)
	assert.Equal(t, 0, store.Len(), "failure must not populate the cache")

	// once the database recovers the listing works again
	articles.err = nil
	_, err = lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)
}

func TestListingCache_StoreDownStillServes(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: fixedTime}
	lc, articles, _, _ := newListing(downStore{}, clk)

	payload, err := lc.List(ctx, article.ModeNormal)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.Equal(t, 1, articles.listWithAuthorsCalls)

	// invalidation against a dead store must not panic or error out callers
	assert.NotPanics(t, func() { lc.Invalidate(ctx) })
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short...", article.Excerpt("short"))

	long := strings.Repeat("a", 300)
	assert.Equal(t, strings.Repeat("a", 200)+"...", article.Excerpt(long))

	// rune-safe: multi-byte characters are never split
	wide := strings.Repeat("あ", 250)
	got := article.Excerpt(wide)
	assert.Equal(t, strings.Repeat("あ", 200)+"...", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", article.Truncate("abc", 200))
	assert.Equal(t, "ab", article.Truncate("abcd", 2))
}

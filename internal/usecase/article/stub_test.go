package article_test

import (
	"context"
	"time"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

/* ─────────────────────────── stub repositories ─────────────────────────── */

type stubArticleRepo struct {
	articles    []*entity.Article
	withAuthors []repository.ArticleWithAuthor
	err         error

	listCalls            int
	listWithAuthorsCalls int
	searchTerm           string
	created              *entity.Article
	updated              *entity.Article
	deletedID            int64
}

func (r *stubArticleRepo) List(context.Context) ([]*entity.Article, error) {
	r.listCalls++
	return r.articles, r.err
}

func (r *stubArticleRepo) ListWithAuthors(context.Context) ([]repository.ArticleWithAuthor, error) {
	r.listWithAuthorsCalls++
	return r.withAuthors, r.err
}

func (r *stubArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *stubArticleRepo) GetWithAuthor(_ context.Context, id int64) (*entity.Article, string, error) {
	if r.err != nil {
		return nil, "", r.err
	}
	for _, row := range r.withAuthors {
		if row.Article.ID == id {
			return row.Article, row.AuthorName, nil
		}
	}
	return nil, "", nil
}

func (r *stubArticleRepo) Search(_ context.Context, term string) ([]*entity.Article, error) {
	r.searchTerm = term
	return r.articles, r.err
}

func (r *stubArticleRepo) Create(_ context.Context, a *entity.Article) error {
	if r.err != nil {
		return r.err
	}
	a.ID = 101
	r.created = a
	return nil
}

func (r *stubArticleRepo) Update(_ context.Context, a *entity.Article) error {
	r.updated = a
	return r.err
}

func (r *stubArticleRepo) Delete(_ context.Context, id int64) error {
	r.deletedID = id
	return r.err
}

func (r *stubArticleRepo) Count(context.Context) (int64, error) {
	return int64(len(r.articles)), r.err
}

type stubCommentRepo struct {
	comments []repository.CommentWithUser
	counts   map[int64]int
	err      error

	countByArticleCalls    int
	countByArticleIDsCalls int
}

func (r *stubCommentRepo) ListByArticle(context.Context, int64) ([]repository.CommentWithUser, error) {
	return r.comments, r.err
}

func (r *stubCommentRepo) Get(context.Context, int64) (*entity.Comment, error) {
	return nil, r.err
}

func (r *stubCommentRepo) Create(context.Context, *entity.Comment) error { return r.err }
func (r *stubCommentRepo) Update(context.Context, *entity.Comment) error { return r.err }
func (r *stubCommentRepo) Delete(context.Context, int64) error           { return r.err }

func (r *stubCommentRepo) CountByArticle(_ context.Context, articleID int64) (int, error) {
	r.countByArticleCalls++
	return r.counts[articleID], r.err
}

func (r *stubCommentRepo) CountByArticleIDs(_ context.Context, ids []int64) (map[int64]int, error) {
	r.countByArticleIDsCalls++
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[int64]int)
	for _, id := range ids {
		if n, ok := r.counts[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (r *stubCommentRepo) FirstByArticle(context.Context, int64) (*repository.CommentWithUser, error) {
	if len(r.comments) == 0 {
		return nil, r.err
	}
	return &r.comments[len(r.comments)-1], r.err
}

func (r *stubCommentRepo) Count(context.Context) (int64, error) {
	return int64(len(r.comments)), r.err
}

type stubUserRepo struct {
	users    map[int64]*entity.User
	err      error
	getCalls int
}

func (r *stubUserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	r.getCalls++
	return r.users[id], r.err
}

func (r *stubUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, r.err
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = int64(len(r.users) + 1)
	return r.err
}

func (r *stubUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.users)), r.err
}

/* ─────────────────────────── fixtures ─────────────────────────── */

var fixedTime = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

func fixtureArticle(id int64, title string) *entity.Article {
	return &entity.Article{
		ID: id, Title: title, Content: "body of " + title, AuthorID: 1,
		PublishedAt: fixedTime, CreatedAt: fixedTime, UpdatedAt: fixedTime,
	}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, author_id, COALESCE(image_path, ''), published_at, created_at, updated_at
FROM articles
ORDER BY published_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Content, &article.AuthorID,
			&article.ImagePath, &article.PublishedAt, &article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) ListWithAuthors(ctx context.Context) ([]repository.ArticleWithAuthor, error) {
	const query = `
SELECT a.id, a.title, a.content, a.author_id, COALESCE(a.image_path, ''), a.published_at, a.created_at, a.updated_at, u.name AS author_name
FROM articles a
INNER JOIN users u ON a.author_id = u.id
ORDER BY a.published_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListWithAuthors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithAuthor, 0, 100)
	for rows.Next() {
		var article entity.Article
		var authorName string
		if err := rows.Scan(&article.ID, &article.Title, &article.Content, &article.AuthorID,
			&article.ImagePath, &article.PublishedAt, &article.CreatedAt, &article.UpdatedAt,
			&authorName); err != nil {
			return nil, fmt.Errorf("ListWithAuthors: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithAuthor{
			Article:    &article,
			AuthorName: authorName,
		})
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, author_id, COALESCE(image_path, ''), published_at, created_at, updated_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Content, &article.AuthorID,
			&article.ImagePath, &article.PublishedAt, &article.CreatedAt, &article.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) GetWithAuthor(ctx context.Context, id int64) (*entity.Article, string, error) {
	const query = `
SELECT a.id, a.title, a.content, a.author_id, COALESCE(a.image_path, ''), a.published_at, a.created_at, a.updated_at, u.name AS author_name
FROM articles a
INNER JOIN users u ON a.author_id = u.id
WHERE a.id = $1
LIMIT 1`
	var article entity.Article
	var authorName string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Content, &article.AuthorID,
			&article.ImagePath, &article.PublishedAt, &article.CreatedAt, &article.UpdatedAt,
			&authorName)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("GetWithAuthor: %w", err)
	}
	return &article, authorName, nil
}

func (repo *ArticleRepo) Search(ctx context.Context, term string) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, author_id, COALESCE(image_path, ''), published_at, created_at, updated_at
FROM articles
WHERE title   ILIKE $1
   OR content ILIKE $1
ORDER BY created_at DESC`
	param := "%" + term + "%"
	rows, err := repo.db.QueryContext(ctx, query, param)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Content, &article.AuthorID,
			&article.ImagePath, &article.PublishedAt, &article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
	   (title, content, author_id, image_path, published_at, created_at, updated_at)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.AuthorID, article.ImagePath,
		article.PublishedAt, article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title      = $1,
       content    = $2,
       updated_at = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]repository.CommentWithUser, error) {
	const query = `
SELECT c.id, c.article_id, c.user_id, c.content, c.created_at, u.name AS user_name
FROM comments c
INNER JOIN users u ON c.user_id = u.id
WHERE c.article_id = $1
ORDER BY c.created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]repository.CommentWithUser, 0, 50)
	for rows.Next() {
		var comment entity.Comment
		var userName string
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.UserID,
			&comment.Content, &comment.CreatedAt, &userName); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, repository.CommentWithUser{
			Comment:  &comment,
			UserName: userName,
		})
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, article_id, user_id, content, created_at
FROM comments
WHERE id = $1
LIMIT 1`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ArticleID, &comment.UserID, &comment.Content, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments
	   (article_id, user_id, content, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.UserID, comment.Content, comment.CreatedAt,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Update(ctx context.Context, comment *entity.Comment) error {
	const query = `UPDATE comments SET content = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, comment.Content, comment.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) CountByArticle(ctx context.Context, articleID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM comments WHERE article_id = $1`
	var count int
	if err := repo.db.QueryRowContext(ctx, query, articleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByArticle: %w", err)
	}
	return count, nil
}

func (repo *CommentRepo) CountByArticleIDs(ctx context.Context, articleIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(articleIDs))
	if len(articleIDs) == 0 {
		return counts, nil
	}

	const query = `
SELECT article_id, COUNT(*)
FROM comments
WHERE article_id = ANY($1)
GROUP BY article_id`
	rows, err := repo.db.QueryContext(ctx, query, pq.Array(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("CountByArticleIDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var articleID int64
		var count int
		if err := rows.Scan(&articleID, &count); err != nil {
			return nil, fmt.Errorf("CountByArticleIDs: Scan: %w", err)
		}
		counts[articleID] = count
	}
	return counts, rows.Err()
}

func (repo *CommentRepo) FirstByArticle(ctx context.Context, articleID int64) (*repository.CommentWithUser, error) {
	const query = `
SELECT c.id, c.article_id, c.user_id, c.content, c.created_at, u.name AS user_name
FROM comments c
INNER JOIN users u ON c.user_id = u.id
WHERE c.article_id = $1
ORDER BY c.created_at ASC
LIMIT 1`
	var comment entity.Comment
	var userName string
	err := repo.db.QueryRowContext(ctx, query, articleID).
		Scan(&comment.ID, &comment.ArticleID, &comment.UserID,
			&comment.Content, &comment.CreatedAt, &userName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FirstByArticle: %w", err)
	}
	return &repository.CommentWithUser{Comment: &comment, UserName: userName}, nil
}

func (repo *CommentRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// Package comment provides HTTP handlers for comment endpoints.
package comment

import (
	"context"
	"net/http"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
	cmtUC "blog-backend/internal/usecase/comment"
)

// Service is the comment use case surface the handlers consume.
type Service interface {
	ListByArticle(ctx context.Context, articleID int64) ([]repository.CommentWithUser, error)
	Create(ctx context.Context, in cmtUC.CreateInput) (*entity.Comment, error)
	Update(ctx context.Context, id int64, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id int64) (*cmtUC.DeleteResult, error)
}

// Register registers all comment HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("GET /articles/{id}/comments", ListHandler{Svc: svc})
	mux.Handle("POST /comments", CreateHandler{Svc: svc})
	mux.Handle("PUT /comments/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /comments/{id}", DeleteHandler{Svc: svc})
}

package article

import (
	"context"
	"log/slog"
	"net/http"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
	artUC "blog-backend/internal/usecase/article"
)

// Service is the article use case surface the handlers consume.
type Service interface {
	Get(ctx context.Context, id int64) (*entity.Article, error)
	GetDetail(ctx context.Context, id int64) (*entity.Article, string, []repository.CommentWithUser, error)
	Search(ctx context.Context, term string) ([]*entity.Article, error)
	Create(ctx context.Context, in artUC.CreateInput) (*entity.Article, error)
	Update(ctx context.Context, in artUC.UpdateInput) (*entity.Article, error)
	Delete(ctx context.Context, id int64) error
}

// Lister serves the cached listing payload.
type Lister interface {
	List(ctx context.Context, mode artUC.Mode) ([]byte, error)
}

// Register registers all article HTTP handlers with the given mux.
// Routes use method-and-pattern matching, so an unknown method on a known
// path gets a 405 from the mux itself.
func Register(mux *http.ServeMux, svc Service, listing Lister, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{Listing: listing, Logger: logger})
	mux.Handle("GET /articles/search", SearchHandler{Svc: svc})
	mux.Handle("GET /articles/{id}", GetHandler{Svc: svc})

	mux.Handle("POST /articles", CreateHandler{Svc: svc})
	mux.Handle("PUT /articles/{id}", UpdateHandler{Svc: svc})
	mux.Handle("PATCH /articles/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{Svc: svc})
}

// Package user provides HTTP handlers for user account endpoints.
package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	userUC "blog-backend/internal/usecase/user"
)

// Service is the user use case surface the handlers consume.
type Service interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, in userUC.CreateInput) (*entity.User, error)
}

// DTO represents the JSON structure for a user account.
// The password hash never leaves the server.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(u *entity.User) DTO {
	return DTO{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}

type GetHandler struct{ Svc Service }

// ServeHTTP returns one user account.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrInvalidUserID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(u))
}

type CreateHandler struct{ Svc Service }

// ServeHTTP registers a new user account and returns it with 201.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.Create(r.Context(), userUC.CreateInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(u))
}

// Register registers all user HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("GET /users/{id}", GetHandler{Svc: svc})
	mux.Handle("POST /users", CreateHandler{Svc: svc})
}

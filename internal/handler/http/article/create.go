package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/respond"
	artUC "blog-backend/internal/usecase/article"
)

type CreateHandler struct{ Svc Service }

// ServeHTTP creates a new article and returns the created record with 201.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		AuthorID  int64  `json:"author_id"`
		ImagePath string `json:"image_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		ImagePath: req.ImagePath,
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

	respond.JSON(w, http.StatusCreated, toDTO(art))
}

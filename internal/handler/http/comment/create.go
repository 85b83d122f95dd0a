package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/respond"
	cmtUC "blog-backend/internal/usecase/comment"
)

type CreateHandler struct{ Svc Service }

// ServeHTTP posts a new comment and returns the stored record with 201.
// The stored body is HTML-escaped by the use case, so the response shows
// what will actually be rendered.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ArticleID int64  `json:"article_id"`
		UserID    int64  `json:"user_id"`
		Content   string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), cmtUC.CreateInput{
		ArticleID: req.ArticleID,
		UserID:    req.UserID,
		Content:   req.Content,
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

	respond.JSON(w, http.StatusCreated, toDTO(c))
}

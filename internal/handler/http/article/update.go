package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	artUC "blog-backend/internal/usecase/article"
)

type UpdateHandler struct{ Svc Service }

// ServeHTTP partially updates an article. Absent fields keep their stored
// values; the updated record is returned with 200.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound):
			code = http.StatusNotFound
		case errors.Is(err, artUC.ErrInvalidArticleID), errors.As(err, &vErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}

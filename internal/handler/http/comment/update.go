package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	cmtUC "blog-backend/internal/usecase/comment"
)

type UpdateHandler struct{ Svc Service }

// ServeHTTP replaces a comment's body and returns the updated record.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Update(r.Context(), id, req.Content)
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, cmtUC.ErrCommentNotFound):
			code = http.StatusNotFound
		case errors.Is(err, cmtUC.ErrInvalidCommentID), errors.As(err, &vErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}

package comment

import (
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	cmtUC "blog-backend/internal/usecase/comment"
)

type DeleteHandler struct{ Svc Service }

// DeleteResponse reports the article's comment thread state after a
// deletion. FirstRemaining is null once the thread is empty.
type DeleteResponse struct {
	Message        string `json:"message"`
	RemainingCount int    `json:"remaining_count"`
	FirstRemaining *DTO   `json:"first_remaining"`
}

// ServeHTTP deletes a comment and reports what is left of the thread.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, cmtUC.ErrInvalidCommentID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, cmtUC.ErrCommentNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := DeleteResponse{
		Message:        "comment deleted",
		RemainingCount: result.RemainingCount,
	}
	if result.FirstRemaining != nil {
		first := toDTOWithUser(*result.FirstRemaining)
		out.FirstRemaining = &first
	}
	respond.JSON(w, http.StatusOK, out)
}

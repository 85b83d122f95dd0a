package article

import (
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	artUC "blog-backend/internal/usecase/article"
)

type GetHandler struct{ Svc Service }

// ServeHTTP returns one article with its author name and full comment thread.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, authorName, comments, err := h.Svc.GetDetail(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := DetailDTO{DTO: toDTO(art), Comments: toCommentDTOs(comments)}
	out.Author = authorName

	respond.JSON(w, http.StatusOK, out)
}

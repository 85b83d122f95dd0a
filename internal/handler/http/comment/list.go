package comment

import (
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	cmtUC "blog-backend/internal/usecase/comment"
)

type ListHandler struct{ Svc Service }

// ServeHTTP returns an article's comments, newest first, with commenter names.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	comments, err := h.Svc.ListByArticle(r.Context(), articleID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, cmtUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := make([]DTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, toDTOWithUser(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

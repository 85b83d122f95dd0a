package article

import (
	"net/http"
	"time"

	"blog-backend/internal/handler/http/respond"
	artUC "blog-backend/internal/usecase/article"
)

type SearchHandler struct{ Svc Service }

// SearchResultDTO is one row of a search response. Content is truncated the
// same way the listing does, but without the trailing ellipsis.
type SearchResultDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

// ServeHTTP searches articles by title or content. A missing or blank q
// parameter is not an error: it returns an empty result set with 200.
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	list, err := h.Svc.Search(r.Context(), term)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]SearchResultDTO, 0, len(list))
	for _, e := range list {
		out = append(out, SearchResultDTO{
			ID:          e.ID,
			Title:       e.Title,
			Content:     artUC.Truncate(e.Content, 200),
			PublishedAt: e.PublishedAt,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}

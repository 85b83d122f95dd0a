// Package stats provides the HTTP handler for the site statistics endpoint.
package stats

import (
	"context"
	"net/http"

	"blog-backend/internal/handler/http/respond"
)

// Service serves the cached statistics payload.
type Service interface {
	Get(ctx context.Context) ([]byte, error)
}

type GetHandler struct{ Svc Service }

// ServeHTTP returns the site-wide entity counts. The payload is cached in
// wire format, so it goes out without re-marshalling.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, err := h.Svc.Get(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.Raw(w, http.StatusOK, payload)
}

// Register registers the statistics handler with the given mux.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("GET /stats", GetHandler{Svc: svc})
}

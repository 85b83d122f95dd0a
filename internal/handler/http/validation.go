package http

import (
	"net/http"
)

// InputValidation returns middleware that rejects structurally unreasonable
// requests before they reach routing. Only the URI path length is checked
// here; body size limits are enforced by LimitRequestBody so multipart image
// uploads keep their own, larger budget.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Path length limit (2KB)
			if len(r.URL.Path) > 2048 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestURITooLong)
				_, _ = w.Write([]byte(`{"error":"URI too long"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

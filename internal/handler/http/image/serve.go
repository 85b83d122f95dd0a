package image

import (
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/respond"
)

type ServeHandler struct{ Store Store }

// ServeHTTP serves a stored image file. Resolve rejects anything that would
// escape the storage directory, so traversal attempts get 400 before any
// filesystem access.
func (h ServeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path, err := h.Store.Resolve(r.PathValue("path"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid image path"))
		return
	}

	// ServeFile sets the MIME type from the extension and handles
	// missing files with 404.
	http.ServeFile(w, r, path)
}

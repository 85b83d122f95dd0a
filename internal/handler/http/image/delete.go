package image

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/infra/imagestore"
)

type DeleteHandler struct{ Store Store }

// ServeHTTP removes a stored image by path.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Path == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("path is required"))
		return
	}

	if err := h.Store.Delete(req.Path); err != nil {
		if errors.Is(err, imagestore.ErrNotFound) {
			respond.SafeError(w, http.StatusNotFound, errors.New("image not found"))
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "image deleted"})
}

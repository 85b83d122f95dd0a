package image

import (
	"log/slog"
	"net/http"
)

// Register registers all image HTTP handlers with the given mux.
func Register(mux *http.ServeMux, processor Processor, store Store, logger *slog.Logger) {
	mux.Handle("POST /images", UploadHandler{Processor: processor, Store: store, Logger: logger})
	mux.Handle("DELETE /images", DeleteHandler{Store: store})
	mux.Handle("GET /storage/{path}", ServeHandler{Store: store})
}

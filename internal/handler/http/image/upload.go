// Package image provides HTTP handlers for image upload, deletion and
// static serving.
package image

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"blog-backend/internal/handler/http/respond"
	"blog-backend/internal/observability/metrics"
)

// MaxUploadBytes caps the accepted multipart upload size.
const MaxUploadBytes = 20 << 20

// Processor turns raw image bytes into the stored JPEG representation.
type Processor interface {
	Process(data []byte) ([]byte, error)
}

// Store persists processed images under random names.
type Store interface {
	Save(data []byte) (string, error)
	Delete(name string) error
	Resolve(name string) (string, error)
}

// UploadHandler accepts a multipart image upload, resizes oversized images
// and stores the result as JPEG.
type UploadHandler struct {
	Processor Processor
	Store     Store
	Logger    *slog.Logger
}

// UploadResponse reports where the processed image landed and how much the
// processing changed its size.
type UploadResponse struct {
	Message      string `json:"message"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	Size         int    `json:"size"`
	OriginalSize int    `json:"original_size"`
}

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ServeHTTP handles the upload. The content type is sniffed from the actual
// bytes, not trusted from the request, and nothing is written to the store
// until the image has been decoded and re-encoded successfully.
func (h UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, _, err := r.FormFile("image")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("image file is required"))
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("failed to read upload"))
		return
	}
	if len(data) == 0 {
		respond.SafeError(w, http.StatusBadRequest, errors.New("image file is empty"))
		return
	}

	if contentType := http.DetectContentType(data); !allowedTypes[contentType] {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("unsupported image type: only jpeg, png and gif are accepted"))
		return
	}

	processed, err := h.Processor.Process(data)
	if err != nil {
		metrics.RecordImageUpload(false)
		respond.SafeError(w, http.StatusBadRequest, errors.New("image could not be decoded"))
		return
	}

	name, err := h.Store.Save(processed)
	if err != nil {
		metrics.RecordImageUpload(false)
		h.Logger.Error("failed to store image", slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordImageUpload(true)
	h.Logger.Info("image uploaded",
		slog.String("path", name),
		slog.Int("original_size", len(data)),
		slog.Int("size", len(processed)))

	respond.JSON(w, http.StatusCreated, UploadResponse{
		Message:      "image uploaded",
		Path:         name,
		URL:          "/storage/" + name,
		Size:         len(processed),
		OriginalSize: len(data),
	})
}

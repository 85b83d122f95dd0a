package article

import (
	"log/slog"
	"net/http"
	"time"

	"blog-backend/internal/handler/http/requestid"
	"blog-backend/internal/handler/http/respond"
	artUC "blog-backend/internal/usecase/article"
)

// ListHandler serves the article listing straight from the cached payload.
// The payload is stored in wire format, so a cache hit is written to the
// socket without re-marshalling.
type ListHandler struct {
	Listing Lister
	Logger  *slog.Logger
}

// ServeHTTP returns the article listing. The presence of the
// performance_test query flag, regardless of its value, switches to the
// diagnostic recompute path, which loads relations per row and caches under
// a throwaway key so normal traffic is unaffected.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	mode := artUC.ModeNormal
	if r.URL.Query().Has("performance_test") {
		mode = artUC.ModeDiagnostic
	}

	payload, err := h.Listing.List(ctx, mode)
	if err != nil {
		h.Logger.Error("failed to build article listing",
			slog.String("request_id", requestid.FromContext(ctx)),
			slog.String("mode", mode.String()),
			slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	h.Logger.Info("article listing served",
		slog.String("request_id", requestid.FromContext(ctx)),
		slog.String("mode", mode.String()),
		slog.Int("bytes", len(payload)),
		slog.Duration("duration", time.Since(start)))

	respond.Raw(w, http.StatusOK, payload)
}

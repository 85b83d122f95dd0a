package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"blog-backend/internal/cache"
	pgRepo "blog-backend/internal/infra/adapter/persistence/postgres"
	"blog-backend/internal/infra/db"
	"blog-backend/internal/infra/imagestore"
	appconfig "blog-backend/internal/pkg/config"

	artUC "blog-backend/internal/usecase/article"
	cmtUC "blog-backend/internal/usecase/comment"
	statsUC "blog-backend/internal/usecase/stats"
	userUC "blog-backend/internal/usecase/user"

	hhttp "blog-backend/internal/handler/http"
	harticle "blog-backend/internal/handler/http/article"
	hcomment "blog-backend/internal/handler/http/comment"
	himage "blog-backend/internal/handler/http/image"
	"blog-backend/internal/handler/http/requestid"
	hstats "blog-backend/internal/handler/http/stats"
	huser "blog-backend/internal/handler/http/user"

	"blog-backend/internal/observability/logging"
	"blog-backend/internal/observability/slo"
	"blog-backend/internal/observability/tracing"
)

func main() {
	logger := initLogger()

	cfg, err := appconfig.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	shutdownTracing, err := tracing.InitTracerProvider("blog-backend")
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	handler := setupServer(cfg, logger, database, version)

	runServer(cfg, logger, handler, version)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracer provider shutdown failed", slog.Any("error", err))
	}
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the cache, repositories, services and handlers and
// returns the HTTP handler with the full middleware chain applied.
func setupServer(cfg appconfig.AppConfig, logger *slog.Logger, database *sql.DB, version string) http.Handler {
	// The in-memory store sits behind a circuit breaker so a misbehaving
	// store degrades listing and stats reads to direct recomputation
	// instead of failing them.
	store := cache.NewBreakerStore(cache.NewMemoryStore(), cache.DefaultBreakerConfig())

	articles := pgRepo.NewArticleRepo(database)
	comments := pgRepo.NewCommentRepo(database)
	users := pgRepo.NewUserRepo(database)

	listing := &artUC.ListingCache{
		Articles:      articles,
		Comments:      comments,
		Users:         users,
		Store:         store,
		ListTTL:       cfg.Cache.ListTTL,
		DiagnosticTTL: cfg.Cache.DiagnosticTTL,
	}
	artSvc := &artUC.Service{
		Repo:     articles,
		Users:    users,
		Comments: comments,
		Cache:    listing,
	}
	cmtSvc := &cmtUC.Service{
		Repo:     comments,
		Articles: articles,
		Users:    users,
		Cache:    listing,
	}
	statsSvc := &statsUC.Service{
		Articles: articles,
		Comments: comments,
		Users:    users,
		Store:    store,
		TTL:      cfg.Cache.StatsTTL,
	}
	userSvc := &userUC.Service{Repo: users}

	imageStore, err := imagestore.NewDiskStore(cfg.Images.Dir)
	if err != nil {
		logger.Error("failed to initialize image store", slog.Any("error", err))
		os.Exit(1)
	}
	processor := imagestore.NewProcessor(cfg.Images.MaxDimension, cfg.Images.Quality)

	mux := setupRoutes(database, version, artSvc, listing, cmtSvc, statsSvc, userSvc, processor, imageStore, logger)
	return applyMiddleware(cfg, logger, mux)
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	database *sql.DB,
	version string,
	artSvc *artUC.Service,
	listing *artUC.ListingCache,
	cmtSvc *cmtUC.Service,
	statsSvc *statsUC.Service,
	userSvc *userUC.Service,
	processor *imagestore.Processor,
	imageStore *imagestore.DiskStore,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	harticle.Register(mux, artSvc, listing, logger)
	hcomment.Register(mux, cmtSvc)
	himage.Register(mux, processor, imageStore, logger)
	hstats.Register(mux, statsSvc)
	huser.Register(mux, userSvc)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Tracing, Request ID, Rate Limit, Recovery, Logging, Timeout, Input Validation, Body Limit, Metrics
func applyMiddleware(cfg appconfig.AppConfig, logger *slog.Logger, handler http.Handler) http.Handler {
	rateLimiter := hhttp.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitWindow)

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Timeout(cfg.Server.RequestTimeout)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(cfg appconfig.AppConfig, logger *slog.Logger, handler http.Handler, version string) {
	// Context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Periodically recompute the SLO gauges from the request tracker.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				slo.Flush()
			}
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Cancel background goroutines
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

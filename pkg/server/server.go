// Package server exposes the analysis engine over HTTP: report lookups by
// group descriptor and the catalog of recognized groups.
package server

import (
	"context"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dedekind/pkg/analysis"
)

// Config configures the HTTP API.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration

	// Analysis options applied to every request. Refresh is overridden per
	// request via the refresh query parameter.
	Analysis analysis.Options
}

// WebAPI serves analysis reports over HTTP.
type WebAPI struct {
	router          *chi.Mux
	logger          *charmlog.Logger
	server          *http.Server
	runner          *analysis.Runner
	opts            analysis.Options
	shutdownTimeout time.Duration
}

// New builds the API around an analysis runner.
func New(logger *charmlog.Logger, runner *analysis.Runner, config Config) *WebAPI {
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	api := &WebAPI{
		logger: logger,
		runner: runner,
		opts:   config.Analysis,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", api.handleHealth)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", api.handleCatalog)
		r.Get("/report/{descriptor}", api.handleReport)
	})

	api.router = router
	api.server = &http.Server{
		Addr:              config.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	api.shutdownTimeout = config.ShutdownTimeout
	return api
}

// Handler returns the HTTP handler, for tests and embedding.
func (w *WebAPI) Handler() http.Handler { return w.router }

// Run serves until ctx is canceled, then drains outstanding requests.
func (w *WebAPI) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	go func() {
		w.logger.Info("starting server", "addr", w.server.Addr)
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		w.logger.Info("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		if err := w.server.Shutdown(shutdownCtx); err != nil {
			w.logger.Error("graceful shutdown failed", "error", err)
			return w.server.Close()
		}
	}
	return nil
}

// requestLogger logs one line per request with method, path, and duration.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}

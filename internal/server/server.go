// Package server exposes the detail pages over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/lepinkainen/marquee/internal/detail"
	"github.com/lepinkainen/marquee/internal/media"
	"github.com/lepinkainen/marquee/internal/subview"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Config holds the HTTP surface settings.
type Config struct {
	Addr string
	// RateLimitPerMinute caps page requests per client IP; 0 disables it.
	RateLimitPerMinute int
	// GuardStale is passed to every detail.View the server creates.
	GuardStale bool
}

// Server routes page requests to detail views.
type Server struct {
	cfg      Config
	catalog  detail.Catalog
	renderer *detail.Renderer
	subviews *subview.Registry
	logger   *slog.Logger
	router   chi.Router
}

// New builds a Server and its routes.
func New(cfg Config, catalog detail.Catalog, renderer *detail.Renderer, subviews *subview.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		catalog:  catalog,
		renderer: renderer,
		subviews: subviews,
		logger:   logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(RequestID)
	r.Use(Logging(s.logger))
	r.Use(Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	r.Group(func(r chi.Router) {
		if s.cfg.RateLimitPerMinute > 0 {
			r.Use(RateLimit(s.cfg.RateLimitPerMinute, time.Minute))
		}
		for _, kind := range []media.Kind{media.Movie, media.Show} {
			base := "/" + kind.Segment() + "/{id}"
			r.Get(base, s.handlePage(kind))
			r.Get(base+"/{sub}", s.handlePage(kind))
		}
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

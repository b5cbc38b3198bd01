// Package rest exposes the HTTP API: report generation and retrieval,
// lead capture, admin listings, health and metrics endpoints.
package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/echub/compliance-hub-backend/internal/infrastructure/cache"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/config"
	"github.com/echub/compliance-hub-backend/internal/metrics"
)

// HealthChecker reports whether a downstream dependency is reachable.
type HealthChecker func(ctx context.Context) error

// ServerOptions bundles the optional server dependencies.
type ServerOptions struct {
	RateLimiter cache.RateLimiter
	Sessions    cache.SessionStore
	// Readiness checks run on /health, keyed by dependency name.
	Readiness map[string]HealthChecker
}

// Server is the HTTP front of the backend.
type Server struct {
	cfg      *config.Config
	handlers *Handlers
	opts     ServerOptions
	srv      *http.Server
}

// NewServer assembles the router and middleware stack.
func NewServer(cfg *config.Config, handlers *Handlers, opts ServerOptions) *Server {
	s := &Server{
		cfg:      cfg,
		handlers: handlers,
		opts:     opts,
	}
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  2 * cfg.Server.ReadTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	rl := newRateLimitMiddleware(s.opts.RateLimiter,
		s.cfg.Security.RateLimit.RequestsPerSecond,
		s.cfg.Security.RateLimit.BurstSize)
	auth := newAuthMiddleware(s.cfg.Security.JWTSecret, s.opts.Sessions)

	v1 := http.NewServeMux()
	v1.HandleFunc("POST /reports", s.handlers.handleGenerateReport)
	v1.HandleFunc("GET /reports/{id}", s.handlers.handleGetReport)
	v1.HandleFunc("GET /reports/{id}/download", s.handlers.handleDownloadReport)
	v1.HandleFunc("POST /leads", s.handlers.handleCaptureLead)

	admin := http.NewServeMux()
	admin.HandleFunc("GET /reports", s.handlers.handleListReports)
	admin.HandleFunc("GET /leads", s.handlers.handleListLeads)
	v1.Handle("/admin/", http.StripPrefix("/admin",
		auth.wrap(requireRole("admin", admin))))

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", rl.wrap(v1)))
	mux.HandleFunc("GET /healthz", s.handleLiveness)
	mux.HandleFunc("GET /health", s.handleReadiness)
	mux.Handle("GET /metrics", metrics.Handler())

	return chain(mux,
		recoveryMiddleware,
		requestIDMiddleware,
		loggingMiddleware,
		corsMiddleware,
	)
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadiness probes every registered dependency with a short
// deadline and reports per-dependency state.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(s.opts.Readiness))
	for name, check := range s.opts.Readiness {
		if err := check(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}

	body := map[string]interface{}{
		"status":  "ok",
		"version": s.cfg.Version,
		"checks":  checks,
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	writeJSON(w, status, body)
}

// Start serves until the context is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	slog.Info("http server shutting down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Handler exposes the assembled routes for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

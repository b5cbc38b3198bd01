package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/echub/compliance-hub-backend/internal/infrastructure/cache"
	"github.com/echub/compliance-hub-backend/internal/metrics"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	userRoleKey  contextKey = "user_role"
)

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// statusWriter captures the response status for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestIDMiddleware assigns every request an id, honoring an inbound
// X-Request-ID header so ids propagate across services.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs one line per request and records HTTP metrics.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		slog.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"duration_ms", duration.Milliseconds(),
			"remote", clientIP(r),
			"request_id", requestIDFrom(r.Context()),
		)
		metrics.RecordHTTPRequest(r.Method, routePattern(r), strconv.Itoa(sw.status), duration)
	})
}

// routePattern returns the matched mux pattern so metrics labels stay
// low-cardinality. Falls back to the raw path for unmatched routes.
func routePattern(r *http.Request) string {
	if p := r.Pattern; p != "" {
		return p
	}
	return "unmatched"
}

func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(r.Context(), "panic recovered",
					"panic", fmt.Sprintf("%v", rec),
					"path", r.URL.Path)
				writeError(w, r, http.StatusInternalServerError,
					"INTERNAL_ERROR", "an internal error occurred", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimitMiddleware throttles by client IP. It uses the shared Redis
// limiter when available and degrades to a per-process token bucket
// when Redis is down, so a cache outage never takes the API with it.
type rateLimitMiddleware struct {
	limiter cache.RateLimiter
	limit   int
	window  time.Duration

	mu       sync.Mutex
	fallback map[string]*rate.Limiter
}

func newRateLimitMiddleware(limiter cache.RateLimiter, requestsPerSecond, burst int) *rateLimitMiddleware {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 10
	}
	if burst <= 0 {
		burst = requestsPerSecond * 3
	}
	return &rateLimitMiddleware{
		limiter:  limiter,
		limit:    burst,
		window:   time.Duration(burst) * time.Second / time.Duration(requestsPerSecond),
		fallback: make(map[string]*rate.Limiter),
	}
}

func (m *rateLimitMiddleware) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		allowed, err := m.allow(r.Context(), ip)
		if err != nil {
			// Redis unavailable, fall back to the local bucket.
			allowed = m.localLimiter(ip).Allow()
		}

		if !allowed {
			metrics.RecordRateLimited()
			w.Header().Set("Retry-After", strconv.Itoa(int(m.window.Seconds())))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
			w.Header().Set("X-RateLimit-Remaining", "0")
			writeError(w, r, http.StatusTooManyRequests,
				"RATE_LIMITED", "too many requests, slow down", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *rateLimitMiddleware) allow(ctx context.Context, ip string) (bool, error) {
	if m.limiter == nil {
		return m.localLimiter(ip).Allow(), nil
	}
	return m.limiter.Allow(ctx, "ip:"+ip, m.limit, m.window)
}

func (m *rateLimitMiddleware) localLimiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.fallback[ip]
	if !ok {
		l = rate.NewLimiter(rate.Limit(float64(m.limit)/m.window.Seconds()), m.limit)
		m.fallback[ip] = l
	}
	return l
}

// clientIP resolves the originating client address, preferring proxy
// headers set by the load balancer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

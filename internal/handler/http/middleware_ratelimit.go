package http

import (
	"net/http"

	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// newLimiter returns a token bucket for cfg, or nil when rate limiting is
// disabled.
func newLimiter(cfg config.RateLimit) *rate.Limiter {
	if !cfg.Enabled() {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
}

// SetupRateLimit attaches the limiter to router when rate limiting is
// configured. Call it after SetupMiddleware: rejected requests then still
// carry the CORS headers, and preflights answered by the CORS layer are not
// counted.
func (h *Handler) SetupRateLimit(router chi.Router) {
	if h.limiter == nil {
		return
	}
	router.Use(h.withRateLimit)
}

// withRateLimit rejects requests with 429 once the shared bucket is empty.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

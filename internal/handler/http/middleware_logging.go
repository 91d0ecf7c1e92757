package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/ecw-api/internal/logger"
)

// withLogging writes one access-log entry per request once the downstream
// handler returns. It expects withTraceID to run first.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("origin", r.Header.Get("Origin")).
			Int("status", rw.Status()).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

package http

import (
	"net/http"

	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 600

var corsMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// SetupMiddleware attaches the cross-origin policy to router. It must run
// before any route is registered on router.
//
// Allowed origins come from cfg: "*" admits every origin and an empty list
// admits none. An admitted origin is echoed back in
// Access-Control-Allow-Origin, since credentials are allowed and browsers
// reject a wildcard in that case. All methods and request headers are
// allowed; X-Trace-ID is exposed to scripts.
func SetupMiddleware(router chi.Router, cfg config.CORS) {
	origins := cfg.AllowedOrigins

	router.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return origins.Allows(origin)
		},
		AllowedMethods:   corsMethods,
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))
}

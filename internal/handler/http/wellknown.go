package http

import (
	"net/http"
	"os"
)

const jwksRoute = "/.well-known/jwks.json"

// jwksAvailable reports whether the key-set file exists and is a regular
// file. Checked once while routes are registered.
func (h *Handler) jwksAvailable() bool {
	if h.jwksPath == "" {
		return false
	}
	info, err := os.Stat(h.jwksPath)
	return err == nil && info.Mode().IsRegular()
}

func (h *Handler) serveJWKS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, h.jwksPath)
}

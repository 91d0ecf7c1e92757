package http

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
)

const (
	docsRoute    = "/docs"
	openAPIRoute = "/openapi.json"
)

//go:embed docs.html
var docsHTML string

var docsTemplate = template.Must(template.New("docs").Parse(docsHTML))

// renderDocsPage renders the Scalar page that loads the OpenAPI document
// from specURL.
func renderDocsPage(title, specURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := docsTemplate.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{title, specURL})
	if err != nil {
		return nil, fmt.Errorf("error rendering docs page: %w", err)
	}
	return buf.Bytes(), nil
}

func serveStatic(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/internal/mock"
	"github.com/MKhiriev/ecw-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Test helpers
// ─────────────────────────────────────────────

type mockedServices struct {
	appInfo  *mock.MockAppInfoService
	patients *mock.MockPatientService
}

func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()
	return config.StructuredConfig{
		App:       config.App{Name: "ECW API", Description: "ECW Development API", Version: "1.0.0"},
		Server:    config.Server{Host: "0.0.0.0", Port: 8000},
		CORS:      config.CORS{AllowedOrigins: config.Origins{config.AnyOrigin}},
		WellKnown: config.WellKnown{JWKSFile: filepath.Join(t.TempDir(), "jwks.json")},
	}
}

func newMockedHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, mockedServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mockedServices{
		appInfo:  mock.NewMockAppInfoService(ctrl),
		patients: mock.NewMockPatientService(ctrl),
	}
	services := &service.Services{AppInfoService: m.appInfo, PatientService: m.patients}

	return NewHandler(services, cfg, logger.Nop()), m
}

// newTestRouter wires h the same way the application does.
func newTestRouter(t *testing.T, h *Handler, cors config.CORS) http.Handler {
	t.Helper()

	router := h.NewRouter()
	SetupMiddleware(router, cors)
	h.SetupRateLimit(router)
	require.NoError(t, h.RegisterRoutes(router))
	return router
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	cfg := testConfig(t)
	services := &service.Services{}
	log := logger.Nop()

	h := NewHandler(services, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg.App, h.app)
	assert.Equal(t, cfg.WellKnown.JWKSFile, h.jwksPath)
}

func TestNewHandler_ResolvesRelativeJWKSPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.WellKnown.JWKSFile = "jwks.json"

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.True(t, filepath.IsAbs(h.jwksPath))
	assert.Equal(t, "jwks.json", filepath.Base(h.jwksPath))
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	cfg := testConfig(t)

	h1 := NewHandler(&service.Services{}, cfg, logger.Nop())
	h2 := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.NotSame(t, h1, h2)
}

package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appEnvKeys = []string{
	"APP_NAME", "APP_DESCRIPTION", "APP_VERSION", "HOST", "PORT", "GRPC_PORT",
	"ALLOWED_ORIGINS", "READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT", "JWKS_FILE",
	"LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// loadConfig loads settings the way cmd/server does, from env alone.
func loadConfig(t *testing.T, env map[string]string) *config.StructuredConfig {
	t.Helper()

	for _, key := range appEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("JWKS_FILE", filepath.Join(t.TempDir(), "jwks.json"))
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := config.GetStructuredConfig()
	require.NoError(t, err)
	return cfg
}

func newTestServer(t *testing.T, cfg *config.StructuredConfig) *httptest.Server {
	t.Helper()

	a, err := New(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, header http.Header) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	for k, vs := range header {
		req.Header[k] = vs
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func getJSON(t *testing.T, srv *httptest.Server, path string) (int, map[string]any) {
	t.Helper()

	resp, raw := do(t, srv, http.MethodGet, path, "", nil)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return resp.StatusCode, body
}

// ─────────────────────────────────────────────
// New
// ─────────────────────────────────────────────

func TestNew_NilConfig(t *testing.T) {
	a, err := New(nil, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, errNilConfig)
	assert.Nil(t, a)
}

func TestNew_EmptyVersion(t *testing.T) {
	cfg := loadConfig(t, nil)
	cfg.App.Version = ""

	a, err := New(cfg, models.AppBuildInfo{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}

func TestNew_CopiesConfig(t *testing.T) {
	cfg := loadConfig(t, map[string]string{"APP_NAME": "Before"})
	srv := newTestServer(t, cfg)

	cfg.App.Name = "After"
	cfg.CORS.AllowedOrigins = config.Origins{}

	_, body := getJSON(t, srv, "/")
	assert.Equal(t, "Welcome to Before", body["message"])

	resp, _ := do(t, srv, http.MethodGet, "/health", "", http.Header{"Origin": {"http://a.example"}})
	assert.Equal(t, "http://a.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

// ─────────────────────────────────────────────
// General endpoints
// ─────────────────────────────────────────────

func TestRoot(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, map[string]string{"APP_NAME": "Clinic API", "APP_VERSION": "2.3.4"}))

	status, body := getJSON(t, srv, "/")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{
		"message": "Welcome to Clinic API",
		"version": "2.3.4",
		"docs":    "/docs",
		"health":  "/health",
	}, body)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	for range 3 {
		status, body := getJSON(t, srv, "/health")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"status": "healthy", "version": "1.0.0", "service": "ECW API"}, body)
	}
}

func TestInfo(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, map[string]string{"HOST": "127.0.0.1", "PORT": "9000"}))

	status, body := getJSON(t, srv, "/info")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ECW API", body["app_name"])
	assert.Equal(t, "1.0.0", body["app_version"])
	assert.Equal(t, "127.0.0.1", body["host"])
	assert.EqualValues(t, 9000, body["port"])
	assert.NotEmpty(t, body["go_version"])
	assert.NotEmpty(t, body["platform"])
	assert.Equal(t, "N/A", body["build_version"])
}

// ─────────────────────────────────────────────
// Patient endpoints
// ─────────────────────────────────────────────

func TestListPatients(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	tests := []struct {
		path      string
		wantNames []any
	}{
		{"/api/v1/patients", []any{"John Doe", "Jane Smith"}},
		{"/api/v1/patients?skip=0&limit=1", []any{"John Doe"}},
		{"/api/v1/patients?skip=1", []any{"Jane Smith"}},
		{"/api/v1/patients?skip=5&limit=10", []any{}},
		{"/api/v1/patients?skip=-1", []any{"Jane Smith"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := getJSON(t, srv, tt.path)
			require.Equal(t, http.StatusOK, status)

			assert.EqualValues(t, 2, body["total"])
			patients := body["patients"].([]any)
			names := make([]any, 0, len(patients))
			for _, p := range patients {
				names = append(names, p.(map[string]any)["name"])
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestListPatients_FirstRecord(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	_, body := getJSON(t, srv, "/api/v1/patients?skip=0&limit=1")

	assert.Equal(t, []any{
		map[string]any{"id": float64(1), "name": "John Doe", "age": float64(30), "email": "john@example.com"},
	}, body["patients"])
	assert.EqualValues(t, 0, body["skip"])
	assert.EqualValues(t, 1, body["limit"])
}

func TestGetPatient_EchoesID(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	for _, id := range []string{"1", "0", "-15", "9223372036854775807"} {
		resp, raw := do(t, srv, http.MethodGet, "/api/v1/patients/"+id, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, id, string(body["id"]))
		assert.JSONEq(t, `"+1234567890"`, string(body["phone"]))
		assert.JSONEq(t, `"123 Main St, City, State"`, string(body["address"]))
		assert.JSONEq(t, `30`, string(body["age"]))
	}
}

func TestCreatePatient(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	resp, raw := do(t, srv, http.MethodPost, "/api/v1/patients", `{"name":"X"}`, http.Header{"Content-Type": {"application/json"}})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Patient created successfully","patient":{"id":123,"name":"X"}}`, string(raw))
}

func TestCreatePatient_PreservesNumbersAndOverrides(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	resp, raw := do(t, srv, http.MethodPost, "/api/v1/patients", `{"id":7,"weight":72.50,"big":12345678901234567890}`, nil)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(raw), `"weight":72.50`)
	assert.Contains(t, string(raw), `"big":12345678901234567890`)
	assert.Contains(t, string(raw), `"id":7`)
}

func TestUpdateAndDeletePatient(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	resp, raw := do(t, srv, http.MethodPut, "/api/v1/patients/9", `{"age":31}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Patient 9 updated successfully","patient":{"id":9,"age":31}}`, string(raw))

	resp, raw = do(t, srv, http.MethodDelete, "/api/v1/patients/9", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Patient 9 deleted successfully"}`, string(raw))
}

func TestErrors(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/api/v1/patients/abc", "", http.StatusUnprocessableEntity},
		{http.MethodGet, "/api/v1/patients?limit=x", "", http.StatusUnprocessableEntity},
		{http.MethodPost, "/api/v1/patients", `["X"]`, http.StatusUnprocessableEntity},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
		{http.MethodPatch, "/api/v1/patients/1", `{}`, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, _ := do(t, srv, tt.method, tt.path, tt.body, nil)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
		})
	}
}

// ─────────────────────────────────────────────
// CORS from settings
// ─────────────────────────────────────────────

func TestCORS_FollowsAllowedOrigins(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		origin     string
		wantHeader string
	}{
		{name: "default allows any", origin: "http://anything.example", wantHeader: "http://anything.example"},
		{name: "listed origin", env: map[string]string{"ALLOWED_ORIGINS": `["http://localhost:3000"]`}, origin: "http://localhost:3000", wantHeader: "http://localhost:3000"},
		{name: "unlisted origin", env: map[string]string{"ALLOWED_ORIGINS": `["http://localhost:3000"]`}, origin: "http://evil.example"},
		{name: "deny all", env: map[string]string{"ALLOWED_ORIGINS": `[]`}, origin: "http://localhost:3000"},
		{name: "lower-case variable", env: map[string]string{"allowed_origins": `["https://app.example"]`}, origin: "https://app.example", wantHeader: "https://app.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, loadConfig(t, tt.env))

			resp, _ := do(t, srv, http.MethodGet, "/health", "", http.Header{"Origin": {tt.origin}})

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantHeader, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, map[string]string{"ALLOWED_ORIGINS": `["http://localhost:3000"]`}))

	resp, _ := do(t, srv, http.MethodOptions, "/api/v1/patients", "", http.Header{
		"Origin":                        {"http://localhost:3000"},
		"Access-Control-Request-Method": {"POST"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

// ─────────────────────────────────────────────
// Docs
// ─────────────────────────────────────────────

func TestDocs(t *testing.T) {
	srv := newTestServer(t, loadConfig(t, nil))

	status, doc := getJSON(t, srv, "/openapi.json")
	require.Equal(t, http.StatusOK, status)
	paths := doc["paths"].(map[string]any)
	for _, p := range []string{"/", "/health", "/info", "/api/v1/patients", "/api/v1/patients/{patient_id}"} {
		assert.Contains(t, paths, p)
	}

	resp, raw := do(t, srv, http.MethodGet, "/docs", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.Contains(t, string(raw), "/openapi.json")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the ECW API
// server. It is populated once at startup from the `.env` file and the process
// environment and must be treated as read-only afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//   - envDefault: value used when the variable is absent or empty.
type StructuredConfig struct {
	// App holds the API metadata shown by the root, health and info endpoints
	// and in the generated OpenAPI document.
	App App `envPrefix:"APP_"`

	// Server holds bind address and timeout settings for the HTTP and gRPC
	// listeners.
	Server Server

	// CORS holds the cross-origin policy applied to every HTTP response.
	CORS CORS

	// WellKnown holds the location of static documents served under
	// /.well-known/.
	WellKnown WellKnown

	// RateLimit throttles incoming HTTP requests. Disabled by default.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// EnvFile is the path of the dotenv file merged under the process
	// environment. A missing file is not an error.
	// Env: ENV_FILE
	EnvFile string `env:"ENV_FILE" envDefault:".env"`
}

// App holds application-level metadata.
type App struct {
	// Name is the human-readable service name.
	// Env: APP_NAME
	Name string `env:"NAME" envDefault:"ECW API"`

	// Description is a one-line summary of the service.
	// Env: APP_DESCRIPTION
	Description string `env:"DESCRIPTION" envDefault:"ECW Development API"`

	// Version is the semantic version string of the running application
	// (e.g. "1.0.0"). Exposed via /, /health and /info.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"1.0.0"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST" envDefault:"0.0.0.0"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT" envDefault:"8000"`

	// GRPCPort is the TCP port of the gRPC health endpoint. Zero disables
	// the gRPC listener.
	// Env: GRPC_PORT
	GRPCPort int `env:"GRPC_PORT" envDefault:"0"`

	// ReadHeaderTimeout bounds how long the server waits for request headers.
	// Env: READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Address returns the HTTP listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GRPCAddress returns the gRPC listen address, or an empty string when the
// gRPC listener is disabled.
func (s Server) GRPCAddress() string {
	if s.GRPCPort == 0 {
		return ""
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(s.GRPCPort))
}

// CORS holds the cross-origin resource sharing policy.
type CORS struct {
	// AllowedOrigins lists origins allowed to make cross-origin requests.
	// "*" allows any origin; an empty list denies all of them.
	// Env: ALLOWED_ORIGINS (JSON array, e.g. ["http://localhost:3000"])
	AllowedOrigins Origins `env:"ALLOWED_ORIGINS" envDefault:"[\"*\"]"`
}

// WellKnown holds paths of documents published under /.well-known/.
type WellKnown struct {
	// JWKSFile is the JSON Web Key Set served at /.well-known/jwks.json.
	// Relative paths are resolved against the directory of the running
	// executable.
	// Env: JWKS_FILE
	JWKSFile string `env:"JWKS_FILE" envDefault:"jwks.json"`
}

// JWKSPath returns the absolute location of the key-set document.
func (w WellKnown) JWKSPath() string {
	if w.JWKSFile == "" || filepath.IsAbs(w.JWKSFile) {
		return w.JWKSFile
	}

	execPath, err := os.Executable()
	if err != nil {
		return w.JWKSFile
	}
	return filepath.Join(filepath.Dir(execPath), w.JWKSFile)
}

// RateLimit holds the token-bucket settings shared by all HTTP clients.
type RateLimit struct {
	// RPS is the sustained number of requests per second. Zero disables
	// rate limiting.
	// Env: RATE_LIMIT_RPS
	RPS float64 `env:"RPS" envDefault:"0"`

	// Burst is the number of requests allowed above RPS at once.
	// Env: RATE_LIMIT_BURST
	Burst int `env:"BURST" envDefault:"50"`
}

// Enabled reports whether requests are throttled.
func (r RateLimit) Enabled() bool {
	return r.RPS > 0
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"debug"`
}

// typedKeys are the server variables that do not decode into a string.
var typedKeys = []string{
	"PORT", "GRPC_PORT", "READ_HEADER_TIMEOUT", "SHUTDOWN_TIMEOUT",
	"ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// GetStructuredConfig loads and validates the server configuration.
//
// Sources, highest priority first:
//  1. Process environment variables (names matched case-insensitively)
//  2. The dotenv file named by ENV_FILE (default ".env")
//  3. Declared defaults
//
// Returns an error if a non-string variable is set but empty, a value cannot be
// converted to its field type, or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	if err := newConfigBuilder().
		withEnv().
		withDotEnv().
		withoutEmpty(typedKeys...).
		build(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

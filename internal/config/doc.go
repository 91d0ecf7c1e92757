// Package config provides configuration loading and validation for the ECW
// API server and its probe client.
//
// Configuration is assembled from the following sources (earlier sources win):
//  1. Environment variables, matched case-insensitively
//  2. A dotenv file (ENV_FILE, default ".env"); a missing file is ignored
//  3. Defaults declared with `envDefault` struct tags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client. The returned values are built once and
// are never mutated afterwards.
package config

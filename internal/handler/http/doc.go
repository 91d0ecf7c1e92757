// Package http implements the HTTP transport layer of the ECW API.
//
// It owns route wiring, request handlers, the OpenAPI document with its
// interactive docs page, and the middleware stack: request tracing, access
// logging, optional rate limiting, panic recovery and the CORS policy.
// Handlers only coerce path, query and body values before delegating to
// the service layer.
package http

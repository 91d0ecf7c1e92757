// Package server runs the HTTP API listener and, when a gRPC port is
// configured, the gRPC health listener next to it.
//
// Both listeners share one lifecycle: the first to fail or an interrupt
// signal stops them all.
package server

package server

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// RunServer starts every enabled listener and blocks until SIGINT,
	// SIGTERM or SIGQUIT arrives or a listener fails. A listener failure is
	// returned after the remaining listeners are shut down.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a termination signal arrives or the listener fails,
// then shuts everything down.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}

// Package server runs the HTTP server and the background workers.
//
// It owns the process lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server

// Package http implements the HTTP transport layer of the ViralCraft API.
//
// It provides route wiring, request handlers and the middleware chain
// (tracing, access logging, metrics, compression, panic recovery and the
// bearer-token gate). Handlers decode requests, delegate to the service
// layer and map service errors to JSON error bodies through a single table.
package http

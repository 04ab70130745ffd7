// Package server wires and runs the relay's transport server.
//
// It owns the HTTP server lifecycle: startup, signal handling, and graceful
// shutdown bounded by the configured shutdown timeout.
package server

// Package http implements the inbound HTTP transport of the relay.
//
// It exposes route wiring, the relay handlers, and the middleware chain
// (panic recovery, request tracing, access logging). Every relay endpoint
// answers HTTP 200 with a JSON envelope; the success field carries the
// outcome.
package http

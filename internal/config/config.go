// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Fixed upstream coordinates. They are deliberately not exposed through env,
// flags or the JSON file.
const (
	UpstreamAuthURL  = "https://salep-auth.sce.manh.com"
	UpstreamAPIURL   = "https://salep.sce.manh.com"
	UpstreamClientID = "omnicomponent.1.0.0"
)

// Default values applied for fields that no source provided.
const (
	DefaultHTTPAddress     = "0.0.0.0:8080"
	DefaultLogLevel        = "info"
	DefaultAuthTimeout     = 30 * time.Second
	DefaultRequestTimeout  = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// StructuredConfig is the top-level configuration container of the relay.
// It is built once at startup and must be treated as read-only afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds credentials and transport settings for the
	// warehouse-management backend.
	Upstream Upstream `envPrefix:"MANHATTAN_"`

	// LogLevel is the minimum zerolog level emitted (e.g. "debug", "info").
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Upstream holds everything needed to talk to the warehouse-management
// backend.
type Upstream struct {
	// Password is the password of the per-organization service user.
	// Must be kept confidential.
	// Env: MANHATTAN_PASSWORD
	Password string `env:"PASSWORD"`

	// ClientSecret is the OAuth client secret paired with ClientID.
	// Must be kept confidential.
	// Env: MANHATTAN_SECRET
	ClientSecret string `env:"SECRET"`

	// AuthTimeout bounds a single token request.
	// Env: MANHATTAN_AUTH_TIMEOUT
	AuthTimeout time.Duration `env:"AUTH_TIMEOUT"`

	// RequestTimeout bounds a single forwarded API request.
	// Env: MANHATTAN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureSkipVerify disables TLS certificate verification for both
	// upstream hosts. Off unless explicitly enabled.
	// Env: MANHATTAN_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// AuthURL, APIURL and ClientID are filled from the package constants.
	AuthURL  string
	APIURL   string
	ClientID string
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Returns ErrMissingSecrets (wrapped) when the upstream password or client
// secret is absent; the caller is expected to refuse to start.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Upstream: Upstream{
			AuthTimeout:    DefaultAuthTimeout,
			RequestTimeout: DefaultRequestTimeout,
			AuthURL:        UpstreamAuthURL,
			APIURL:         UpstreamAPIURL,
			ClientID:       UpstreamClientID,
		},
		LogLevel: DefaultLogLevel,
	}
}

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingSecrets indicates that MANHATTAN_PASSWORD or MANHATTAN_SECRET
	// was not provided. The relay must not start without them.
	ErrMissingSecrets = errors.New("missing MANHATTAN_PASSWORD or MANHATTAN_SECRET")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUpstreamConfigs indicates invalid upstream transport settings
	// (for example, a non-positive timeout).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upstream.Password == "" || cfg.Upstream.ClientSecret == "" {
		return ErrMissingSecrets
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Upstream.AuthTimeout <= 0 || cfg.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidUpstreamConfigs)
	}

	if cfg.Upstream.AuthURL == "" || cfg.Upstream.APIURL == "" || cfg.Upstream.ClientID == "" {
		return fmt.Errorf("%w: upstream coordinates are not set", ErrInvalidUpstreamConfigs)
	}

	return nil
}

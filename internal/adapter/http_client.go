// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"crypto/tls"
	"net/http"
	"time"
)

// newHTTPClient returns an *http.Client with its own transport, bounded by
// timeout. When insecureSkipVerify is set the client accepts any upstream
// certificate.
//
// Each call returns an independent client with its own connection pool.
func newHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // opt-in via MANHATTAN_INSECURE_SKIP_VERIFY
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

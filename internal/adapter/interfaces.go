// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the warehouse-management upstream.
//
// The primary abstraction is [UpstreamAdapter], which hides the two upstream
// hosts (OAuth token host and REST API host) from the service layer. The
// package ships an HTTP implementation ([NewHTTPUpstreamAdapter]) built on
// golang.org/x/oauth2 for the password grant and resty for the API calls.
//
// Token failures are mapped to the sentinel errors in errors.go so that
// callers can tell a network problem from rejected credentials or a
// malformed token response with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/cycle-count-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_adapter_mock.go -package=mock

// UpstreamAdapter defines the calls the relay makes to the upstream.
// Implementations must be safe for concurrent use and hold no per-caller
// state.
type UpstreamAdapter interface {
	// FetchToken performs the password grant for the service user derived
	// from org and returns the access token. The error wraps one of
	// ErrTokenTransport, ErrTokenRejected or ErrTokenMalformed.
	FetchToken(ctx context.Context, org string) (string, error)

	// Forward POSTs payload verbatim to the upstream path of op with the
	// standard header set. Any completed HTTP exchange is returned as a
	// response regardless of status; the error is non-nil only when no
	// response was received (wrapping ErrUpstreamTransport) or op is not a
	// forwarding operation (ErrUnknownOperation).
	Forward(ctx context.Context, op models.Operation, org, token string, payload []byte) (models.UpstreamResponse, error)

	// GetInventory issues the inventory lookup for locationID. Error
	// semantics match Forward.
	GetInventory(ctx context.Context, org, token, locationID string) (models.UpstreamResponse, error)
}

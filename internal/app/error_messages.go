// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// relay's services, handlers and middleware.
//
// All Msg* constants are the error texts written into failure envelopes.
// Callers of the relay match on some of them, so the wording is part of the
// inbound contract and must not change.
package app

const (
	// MsgOrgRequired is returned by the auth operation when the
	// organization code is missing or blank.
	MsgOrgRequired = "ORG required"

	// MsgAuthFailed is returned when no access token could be obtained,
	// whatever the cause.
	MsgAuthFailed = "Auth failed"

	// MsgForwardFieldsMissing is returned by the four POST forwarding
	// operations when org, token or payload is missing.
	MsgForwardFieldsMissing = "ORG, token and payload required"

	// MsgInventoryFieldsMissing is returned by the inventory lookup when
	// org, token or locationId is missing.
	MsgInventoryFieldsMissing = "ORG, token and locationId required"

	// MsgNoItemID is returned when the upstream accepted an inventory lookup
	// but no item identifier could be found in its response.
	MsgNoItemID = "No ItemId found in response"

	// MsgInvalidJSON is returned when the inbound body is not valid JSON.
	MsgInvalidJSON = "invalid JSON body"

	// MsgInternalError is returned when a handler panicked.
	MsgInternalError = "internal error"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the uniform JSON body returned by every relay endpoint.
// The relay always answers HTTP 200; Success tells the caller whether the
// operation worked.
type Envelope struct {
	Success bool `json:"success"`

	// Token is set only by a successful auth operation.
	Token string `json:"token,omitempty"`

	// ItemID is set only by a successful inventory lookup. The upstream
	// value is relayed with its original JSON type.
	ItemID any `json:"itemId,omitempty"`

	// Response carries the upstream body: parsed JSON, a raw_response
	// wrapper, or the truncated text of a failed call.
	Response any `json:"response,omitempty"`

	Error string `json:"error,omitempty"`

	// Reason classifies auth failures: transport, rejected or malformed.
	Reason string `json:"reason,omitempty"`
}

// Failure builds an unsuccessful envelope with the given error text.
func Failure(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// Succeeded builds a successful envelope relaying response.
func Succeeded(response any) Envelope {
	return Envelope{Success: true, Response: response}
}

// RawResponse wraps an upstream body that could not be parsed as JSON.
type RawResponse struct {
	RawResponse string `json:"raw_response"`
}

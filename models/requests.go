// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AuthRequest is the inbound body of POST /api/auth.
type AuthRequest struct {
	Org string `json:"org"`
}

// ForwardRequest is the inbound body shared by the four POST forwarding
// operations. Payload is relayed to the upstream byte for byte.
type ForwardRequest struct {
	Org     string          `json:"org"`
	Token   string          `json:"token"`
	Payload json.RawMessage `json:"payload"`
}

// InventoryRequest is the inbound body of POST /api/getInventory.
type InventoryRequest struct {
	Org        string `json:"org"`
	Token      string `json:"token"`
	LocationID string `json:"locationId"`
}

// PayloadSummary holds the few payload fields that are worth logging.
// Everything else in a payload is opaque to the relay.
type PayloadSummary struct {
	LocationID any `json:"LocationId,omitempty"`
	Quantity   any `json:"Quantity,omitempty"`

	ItemAttributeDTO struct {
		Item any `json:"Item,omitempty"`
	} `json:"ItemAttributeDTO"`
}

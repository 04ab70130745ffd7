// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/cycle-count-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		env        models.Envelope
		wantJSON   string
		wantCalled bool
		wantOrg    string
	}{
		{
			name:       "token relayed",
			body:       `{"org":"acme"}`,
			env:        models.Envelope{Success: true, Token: "tok"},
			wantJSON:   `{"success":true,"token":"tok"}`,
			wantCalled: true,
			wantOrg:    "acme",
		},
		{
			name:       "auth failure relayed with reason",
			body:       `{"org":"acme"}`,
			env:        models.Envelope{Error: "Auth failed", Reason: "rejected"},
			wantJSON:   `{"success":false,"error":"Auth failed","reason":"rejected"}`,
			wantCalled: true,
			wantOrg:    "acme",
		},
		{
			name:       "empty body reaches the service as a zero request",
			body:       ``,
			env:        models.Failure("ORG required"),
			wantJSON:   `{"success":false,"error":"ORG required"}`,
			wantCalled: true,
		},
		{
			name:     "malformed JSON",
			body:     `{"org":`,
			wantJSON: `{"success":false,"error":"invalid JSON body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &fakeRelayService{env: tt.env}
			router := newTestHandler(relay, nil).Init()

			rr := doRequest(t, router, http.MethodPost, "/api/auth", tt.body)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantJSON, rr.Body.String())
			if !tt.wantCalled {
				assert.Nil(t, relay.authReq)
				return
			}
			require.NotNil(t, relay.authReq)
			assert.Equal(t, tt.wantOrg, relay.authReq.Org)
		})
	}
}

func TestForwardHandler_PassesOperationAndPayload(t *testing.T) {
	for _, op := range models.ForwardOperations {
		t.Run(op.String(), func(t *testing.T) {
			relay := &fakeRelayService{env: models.Succeeded(map[string]any{"CountId": "C1"})}
			router := newTestHandler(relay, nil).Init()

			body := `{"org":"acme","token":"tok","payload":{"LocationId":"L-1","Quantity":3}}`
			rr := doRequest(t, router, http.MethodPost, "/api/"+op.String(), body)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"success":true,"response":{"CountId":"C1"}}`, rr.Body.String())

			require.NotNil(t, relay.forwardReq)
			assert.Equal(t, op, relay.forwardOp)
			assert.Equal(t, "acme", relay.forwardReq.Org)
			assert.Equal(t, "tok", relay.forwardReq.Token)
			assert.JSONEq(t, `{"LocationId":"L-1","Quantity":3}`, string(relay.forwardReq.Payload))
		})
	}
}

func TestForwardHandler_MalformedJSON(t *testing.T) {
	relay := &fakeRelayService{}
	router := newTestHandler(relay, nil).Init()

	rr := doRequest(t, router, http.MethodPost, "/api/acceptQuantity", `not json`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid JSON body"}`, rr.Body.String())
	assert.Nil(t, relay.forwardReq)
}

func TestGetInventoryHandler(t *testing.T) {
	relay := &fakeRelayService{env: models.Envelope{
		Success:  true,
		ItemID:   "X1",
		Response: map[string]any{"Data": []any{map[string]any{"ItemId": "X1"}}},
	}}
	router := newTestHandler(relay, nil).Init()

	rr := doRequest(t, router, http.MethodPost, "/api/getInventory", `{"org":"acme","token":"tok","locationId":"L-1"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"itemId":"X1","response":{"Data":[{"ItemId":"X1"}]}}`, rr.Body.String())

	require.NotNil(t, relay.inventoryReq)
	assert.Equal(t, models.InventoryRequest{Org: "acme", Token: "tok", LocationID: "L-1"}, *relay.inventoryReq)
}

func TestGetInventoryHandler_MalformedJSON(t *testing.T) {
	relay := &fakeRelayService{}
	router := newTestHandler(relay, nil).Init()

	rr := doRequest(t, router, http.MethodPost, "/api/getInventory", `[1,2`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid JSON body"}`, rr.Body.String())
	assert.Nil(t, relay.inventoryReq)
}

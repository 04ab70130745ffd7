// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/cycle-count-relay/internal/app"
	"github.com/MKhiriev/cycle-count-relay/models"
)

// maxBodyChars caps how much of an upstream body is echoed to the caller.
const maxBodyChars = 500

func isAcceptedStatus(code int) bool {
	return code == http.StatusOK || code == http.StatusCreated
}

// upstreamFailure builds the envelope of a response whose status is not
// 200 or 201.
func upstreamFailure(resp models.UpstreamResponse) models.Envelope {
	body := truncate(string(resp.Body), maxBodyChars)

	env := models.Failure(fmt.Sprintf("API %d: %s", resp.StatusCode, body))
	if body != "" {
		env.Response = body
	}
	return env
}

// classifyForward maps the response of a POST forwarding operation.
func classifyForward(resp models.UpstreamResponse) models.Envelope {
	if !isAcceptedStatus(resp.StatusCode) {
		return upstreamFailure(resp)
	}

	if json.Valid(resp.Body) {
		return models.Succeeded(json.RawMessage(resp.Body))
	}

	return models.Succeeded(models.RawResponse{RawResponse: truncate(string(resp.Body), maxBodyChars)})
}

// classifyInventory maps the response of an inventory lookup. An accepted
// response without an item identifier is still a failure.
func classifyInventory(resp models.UpstreamResponse) models.Envelope {
	if !isAcceptedStatus(resp.StatusCode) {
		return upstreamFailure(resp)
	}

	var (
		response any
		itemID   any
	)

	parsed, err := decodeJSON(resp.Body)
	if err != nil {
		response = models.RawResponse{RawResponse: truncate(string(resp.Body), maxBodyChars)}
	} else {
		response = json.RawMessage(resp.Body)
		itemID = extractItemID(parsed)
	}

	if itemID == nil {
		env := models.Failure(app.MsgNoItemID)
		env.Response = response
		return env
	}

	return models.Envelope{Success: true, ItemID: itemID, Response: response}
}

// decodeJSON decodes body keeping numbers as json.Number so that numeric
// identifiers are relayed without float rounding.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

// extractItemID looks for an item identifier in order: the first element
// of a data/Data array, the top-level object, the first element of a
// top-level array. It returns nil when nothing is found.
func extractItemID(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for _, key := range []string{"data", "Data"} {
			if list, ok := t[key].([]any); ok && len(list) > 0 {
				if id := itemIDOf(list[0]); id != nil {
					return id
				}
			}
		}
		return itemIDOf(t)
	case []any:
		if len(t) > 0 {
			return itemIDOf(t[0])
		}
	}
	return nil
}

func itemIDOf(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	for _, key := range []string{"ItemId", "itemId"} {
		if id := obj[key]; !isBlank(id) {
			return id
		}
	}
	return nil
}

// isBlank reports whether a decoded JSON value carries no information:
// null, false, zero, an empty string, an empty array or an empty object.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// isBlankPayload applies isBlank to a raw payload. A missing payload is
// blank as well.
func isBlankPayload(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true
	}

	v, err := decodeJSON(raw)
	if err != nil {
		return false
	}
	return isBlank(v)
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

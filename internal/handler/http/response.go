package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/models"
)

// fallbackEnvelope is written when an envelope cannot be marshaled, which
// only happens if the upstream relayed something encoding/json rejects.
const fallbackEnvelope = `{"success":false,"error":"error writing response"}`

// writeEnvelope serializes env and writes it with HTTP 200. Relay outcomes
// never change the status code.
func writeEnvelope(w http.ResponseWriter, log *logger.Logger, env models.Envelope) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(env)
	if err != nil {
		log.Err(err).Msg("error writing envelope to JSON")
		body = []byte(fallbackEnvelope)
	}

	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(body); err != nil {
		log.Err(err).Msg("error writing response body")
	}
}

// writeJSON writes an arbitrary JSON document with the given status.
func writeJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return err
}

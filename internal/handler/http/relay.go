// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/cycle-count-relay/internal/app"
	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/models"
)

// decodeBody decodes the request body into dst. An empty body leaves dst
// zero-valued so that the presence checks of the service report it.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handler) auth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeEnvelope(w, log, models.Failure(app.MsgInvalidJSON))
		return
	}

	writeEnvelope(w, log, h.services.RelayService.Authenticate(r.Context(), req))
}

// forward returns the handler of one POST forwarding operation.
func (h *Handler) forward(op models.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var req models.ForwardRequest
		if err := decodeBody(r, &req); err != nil {
			log.Err(err).Str("operation", op.String()).Msg("Invalid JSON was passed")
			writeEnvelope(w, log, models.Failure(app.MsgInvalidJSON))
			return
		}

		writeEnvelope(w, log, h.services.RelayService.Forward(r.Context(), op, req))
	}
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.InventoryRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeEnvelope(w, log, models.Failure(app.MsgInvalidJSON))
		return
	}

	writeEnvelope(w, log, h.services.RelayService.GetInventory(r.Context(), req))
}

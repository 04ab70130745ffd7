// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/cycle-count-relay/internal/adapter"
	"github.com/MKhiriev/cycle-count-relay/internal/app"
	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/internal/metrics"
	"github.com/MKhiriev/cycle-count-relay/models"
)

// relayService is the concrete implementation of RelayService. It holds no
// per-request state and is safe for concurrent use.
type relayService struct {
	upstream adapter.UpstreamAdapter
	metrics  *metrics.Recorder

	logger *logger.Logger
}

// NewRelayService constructs a RelayService forwarding to upstream.
// recorder may be nil.
func NewRelayService(upstream adapter.UpstreamAdapter, recorder *metrics.Recorder, logger *logger.Logger) RelayService {
	return &relayService{
		upstream: upstream,
		metrics:  recorder,
		logger:   logger,
	}
}

// Authenticate obtains an upstream access token for req.Org.
//
// An empty org is rejected without contacting the upstream. All token
// failures are reported as [app.MsgAuthFailed] with the failure kind in Reason.
func (s *relayService) Authenticate(ctx context.Context, req models.AuthRequest) models.Envelope {
	op := models.OperationAuth.String()
	log := logger.FromContext(ctx).WithOperation(op)

	org := strings.TrimSpace(req.Org)
	if org == "" {
		log.Warn().Msg("auth request without org")
		s.metrics.ObserveOutcome(op, metrics.OutcomeInvalidInput)
		return models.Failure(app.MsgOrgRequired)
	}

	start := time.Now()
	token, err := s.upstream.FetchToken(ctx, org)
	s.metrics.ObserveUpstream(op, time.Since(start))
	if err != nil {
		log.Err(err).Str("org", org).Msg("token acquisition failed")
		s.metrics.ObserveOutcome(op, metrics.OutcomeAuthFailed)

		env := models.Failure(app.MsgAuthFailed)
		env.Reason = authFailureReason(err)
		return env
	}

	log.Info().Str("org", org).Msg("token acquired")
	s.metrics.ObserveOutcome(op, metrics.OutcomeSuccess)
	return models.Envelope{Success: true, Token: token}
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, adapter.ErrTokenRejected):
		return ReasonRejected
	case errors.Is(err, adapter.ErrTokenMalformed):
		return ReasonMalformed
	default:
		return ReasonTransport
	}
}

// Forward relays req.Payload to the upstream path of op.
//
// Missing org, token or payload is rejected without contacting the upstream.
func (s *relayService) Forward(ctx context.Context, op models.Operation, req models.ForwardRequest) models.Envelope {
	log := logger.FromContext(ctx).WithOperation(op.String())

	org := strings.TrimSpace(req.Org)
	token := strings.TrimSpace(req.Token)
	if org == "" || token == "" || isBlankPayload(req.Payload) {
		log.Warn().Msg("forward request with missing fields")
		s.metrics.ObserveOutcome(op.String(), metrics.OutcomeInvalidInput)
		return models.Failure(app.MsgForwardFieldsMissing)
	}

	logPayloadSummary(log, org, req.Payload)

	start := time.Now()
	resp, err := s.upstream.Forward(ctx, op, org, token, req.Payload)
	s.metrics.ObserveUpstream(op.String(), time.Since(start))
	if err != nil {
		log.Err(err).Msg("upstream call failed")
		s.metrics.ObserveOutcome(op.String(), metrics.OutcomeTransportError)
		return models.Failure(err.Error())
	}

	env := classifyForward(resp)
	s.observeEnvelope(log, op.String(), resp.StatusCode, env)
	return env
}

// GetInventory looks up the inventory of req.LocationID and extracts the
// item identifier from the upstream answer.
func (s *relayService) GetInventory(ctx context.Context, req models.InventoryRequest) models.Envelope {
	op := models.OperationGetInventory.String()
	log := logger.FromContext(ctx).WithOperation(op)

	org := strings.TrimSpace(req.Org)
	token := strings.TrimSpace(req.Token)
	locationID := strings.TrimSpace(req.LocationID)
	if org == "" || token == "" || locationID == "" {
		log.Warn().Msg("inventory request with missing fields")
		s.metrics.ObserveOutcome(op, metrics.OutcomeInvalidInput)
		return models.Failure(app.MsgInventoryFieldsMissing)
	}

	log.Debug().
		Str("facility_id", adapter.FacilityID(org)).
		Str("location_id", locationID).
		Msg("looking up inventory")

	start := time.Now()
	resp, err := s.upstream.GetInventory(ctx, org, token, locationID)
	s.metrics.ObserveUpstream(op, time.Since(start))
	if err != nil {
		log.Err(err).Msg("upstream call failed")
		s.metrics.ObserveOutcome(op, metrics.OutcomeTransportError)
		return models.Failure(err.Error())
	}

	env := classifyInventory(resp)
	s.observeEnvelope(log, op, resp.StatusCode, env)
	return env
}

func (s *relayService) observeEnvelope(log *logger.Logger, op string, status int, env models.Envelope) {
	switch {
	case env.Success:
		log.Info().Int("status", status).Msg("upstream call succeeded")
		s.metrics.ObserveOutcome(op, metrics.OutcomeSuccess)
	case !isAcceptedStatus(status):
		log.Warn().Int("status", status).Str("error", env.Error).Msg("upstream returned an error status")
		s.metrics.ObserveOutcome(op, metrics.OutcomeUpstreamError)
	default:
		log.Warn().Int("status", status).Msg(env.Error)
		s.metrics.ObserveOutcome(op, metrics.OutcomeNoItemID)
	}
}

// logPayloadSummary logs the handful of payload fields useful for tracing a
// count. Unparsable payloads are forwarded anyway and only noted here.
func logPayloadSummary(log *logger.Logger, org string, payload json.RawMessage) {
	var summary models.PayloadSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		log.Debug().Str("facility_id", adapter.FacilityID(org)).Msg("forwarding non-object payload")
		return
	}

	log.Debug().
		Str("facility_id", adapter.FacilityID(org)).
		Any("location_id", summary.LocationID).
		Any("quantity", summary.Quantity).
		Any("item", summary.ItemAttributeDTO.Item).
		Msg("forwarding payload")
}

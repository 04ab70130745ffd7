package service

import (
	"context"

	"github.com/MKhiriev/cycle-count-relay/models"
)

// RelayService turns inbound relay requests into envelopes. Every method
// returns an envelope; failures are reported through Envelope.Success and
// never as Go errors.
type RelayService interface {
	Authenticate(ctx context.Context, req models.AuthRequest) models.Envelope
	Forward(ctx context.Context, op models.Operation, req models.ForwardRequest) models.Envelope
	GetInventory(ctx context.Context, req models.InventoryRequest) models.Envelope
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

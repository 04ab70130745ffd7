package service

import (
	"github.com/MKhiriev/cycle-count-relay/internal/adapter"
	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/internal/metrics"
	"github.com/MKhiriev/cycle-count-relay/models"
)

type Services struct {
	RelayService   RelayService
	AppInfoService AppInfoService
}

func NewServices(upstream adapter.UpstreamAdapter, recorder *metrics.Recorder, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		RelayService:   NewRelayService(upstream, recorder, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}

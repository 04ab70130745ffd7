package http

import (
	"net/http"

	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics serves GET /metrics when non-nil.
	metrics http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}

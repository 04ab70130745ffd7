package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/cycle-count-relay/internal/config"
	"github.com/MKhiriev/cycle-count-relay/internal/handler/http"
	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. metrics may be
// nil, in which case GET /metrics is not served.
func NewHandlers(services *service.Services, metrics stdhttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

package main

import (
	"fmt"

	"github.com/MKhiriev/cycle-count-relay/internal/adapter"
	"github.com/MKhiriev/cycle-count-relay/internal/config"
	"github.com/MKhiriev/cycle-count-relay/internal/handler"
	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/internal/metrics"
	"github.com/MKhiriev/cycle-count-relay/internal/server"
	"github.com/MKhiriev/cycle-count-relay/internal/service"
	"github.com/MKhiriev/cycle-count-relay/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	appLogger := logger.NewLogger("cycle-count-relay", cfg.LogLevel)
	appLogger.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("auth_url", cfg.Upstream.AuthURL).
		Str("api_url", cfg.Upstream.APIURL).
		Dur("auth_timeout", cfg.Upstream.AuthTimeout).
		Dur("request_timeout", cfg.Upstream.RequestTimeout).
		Msg("received configs")

	upstream, err := adapter.NewHTTPUpstreamAdapter(cfg.Upstream, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("error creating upstream adapter")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	services := service.NewServices(upstream, recorder, buildInfo, appLogger)

	handlers, err := handler.NewHandlers(services, metrics.Handler(registry), cfg.Server, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

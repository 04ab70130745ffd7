package http

import (
	"net/http"

	"github.com/MKhiriev/cycle-count-relay/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecovery, h.withTraceID, h.withLogging)

	// relay routes
	router.Group(func(r chi.Router) {
		r.Post("/api/auth", h.auth)
		for _, op := range models.ForwardOperations {
			r.Post("/api/"+op.String(), h.forward(op))
		}
		r.Post("/api/"+models.OperationGetInventory.String(), h.getInventory)
	})

	// operational routes
	router.Get("/healthz", h.health)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

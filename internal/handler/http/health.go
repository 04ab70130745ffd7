package http

import (
	"net/http"

	"github.com/MKhiriev/cycle-count-relay/internal/logger"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	resp := healthResponse{Status: "ok", Version: info.Version, Commit: info.Commit}
	if err := writeJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}

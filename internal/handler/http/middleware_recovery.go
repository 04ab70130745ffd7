package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/cycle-count-relay/internal/app"
	"github.com/MKhiriev/cycle-count-relay/models"
)

// withRecovery turns a panic in any downstream handler into a failure
// envelope so that nothing escapes the relay uncaught. It runs before
// withTraceID, so it logs through the handler's root logger.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.logger.Error().
				Interface("panic", rec).
				Str("uri", r.RequestURI).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeEnvelope(w, h.logger, models.Failure(app.MsgInternalError))
		}()

		next.ServeHTTP(w, r)
	})
}

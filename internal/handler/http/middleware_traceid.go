package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds caller-supplied trace ids before they end up
	// in every log line of the request.
	maxTraceIDLength = 128
)

// traceIDFromRequest reuses the caller's trace id when it is present and
// reasonably sized, otherwise it generates a new one.
func traceIDFromRequest(r *http.Request) string {
	if traceID := r.Header.Get(traceIDHeader); traceID != "" && len(traceID) <= maxTraceIDLength {
		return traceID
	}

	// v7 ids sort by creation time in log storage
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

// withTraceID attaches a child logger carrying trace_id to the request
// context and echoes the id in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := traceIDFromRequest(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

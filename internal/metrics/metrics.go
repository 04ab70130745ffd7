// Package metrics exposes Prometheus instrumentation for relay operations.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cycle_count_relay"

// Outcome labels a finished relay operation.
type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomeInvalidInput   Outcome = "invalid_input"
	OutcomeTransportError Outcome = "transport_error"
	OutcomeUpstreamError  Outcome = "upstream_error"
	OutcomeAuthFailed     Outcome = "auth_failed"
	OutcomeNoItemID       Outcome = "no_item_id"
)

// Recorder records relay metrics. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	operations       *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// NewRecorder registers the relay collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Relay operations by operation name and outcome.",
		}, []string{"operation", "outcome"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream calls, including failed ones.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"operation"}),
	}
}

// ObserveOutcome counts one finished operation.
func (r *Recorder) ObserveOutcome(operation string, outcome Outcome) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, string(outcome)).Inc()
}

// ObserveUpstream records the latency of one upstream call.
func (r *Recorder) ObserveUpstream(operation string, d time.Duration) {
	if r == nil {
		return
	}
	r.upstreamDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

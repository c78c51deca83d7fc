// Package metrics exposes Prometheus counters for the chat pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for one server instance. Using an owned
// registry keeps tests isolated from the process-global default.
type Metrics struct {
	registry *prometheus.Registry

	chatRequestsTotal   *prometheus.CounterVec
	gatewayFailures     *prometheus.CounterVec
	fallbackTotal       prometheus.Counter
	chatRequestDuration prometheus.Histogram
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		chatRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foliochat_chat_requests_total",
				Help: "Total number of chat requests by detected intent",
			},
			[]string{"intent"},
		),
		gatewayFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foliochat_gateway_failures_total",
				Help: "Completion gateway failures by reason",
			},
			[]string{"reason"},
		),
		fallbackTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "foliochat_fallback_responses_total",
				Help: "Responses served from the canned fallback templates",
			},
		),
		chatRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "foliochat_chat_request_duration_seconds",
				Help:    "Chat request handling duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordChatRequest(intent string, duration time.Duration) {
	m.chatRequestsTotal.WithLabelValues(intent).Inc()
	m.chatRequestDuration.Observe(duration.Seconds())
}

// RecordGatewayFailure counts one gateway failure; reason is one of
// "request_failed", "safety_filtered", "empty_response".
func (m *Metrics) RecordGatewayFailure(reason string) {
	m.gatewayFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordFallback() {
	m.fallbackTotal.Inc()
}

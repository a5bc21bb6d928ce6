// Package metrics provides Prometheus metrics for the token service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_api_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "token_api_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// TokensIssued tracks the total number of room tokens issued.
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_api_tokens_issued_total",
			Help: "Total number of LiveKit room tokens issued",
		},
	)

	// TokenFailures tracks rejected or failed token requests by reason.
	TokenFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_api_token_failures_total",
			Help: "Total number of token requests that did not produce a token",
		},
		[]string{"reason"},
	)

	// TokenRequestDuration tracks successful token requests end to end,
	// including an awaited agent dispatch.
	TokenRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "token_api_token_request_duration_seconds",
			Help:    "Duration of token requests, including any awaited agent dispatch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// RoomsGenerated tracks server-generated room names.
	RoomsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_api_rooms_generated_total",
			Help: "Total number of room names generated by the service",
		},
	)

	// RoomNameCollisions tracks generated names that LiveKit already had.
	RoomNameCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_api_room_name_collisions_total",
			Help: "Generated room names rejected because the room was already active",
		},
	)

	// DispatchRequests tracks outbound agent dispatch calls by result.
	DispatchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_api_agent_dispatch_requests_total",
			Help: "Total number of agent dispatch calls",
		},
		[]string{"result"},
	)

	// DispatchDuration tracks the latency of agent dispatch calls.
	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "token_api_agent_dispatch_duration_seconds",
			Help:    "Duration of agent dispatch calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

// RecordTokenIssued increments token issuance metrics.
func RecordTokenIssued(seconds float64) {
	TokensIssued.Inc()
	TokenRequestDuration.Observe(seconds)
}

// RecordTokenFailure increments the failure counter for reason.
func RecordTokenFailure(reason string) {
	TokenFailures.WithLabelValues(reason).Inc()
}

// RecordDispatch records one dispatch call.
func RecordDispatch(result string, seconds float64) {
	DispatchRequests.WithLabelValues(result).Inc()
	DispatchDuration.Observe(seconds)
}

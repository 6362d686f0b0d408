// Package metrics provides Prometheus metrics for the WriteFreely MCP server.
// It tracks tool calls, WriteFreely API calls, authentication failures and mutations.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "writefreely_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures tool call latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// APIRequestsTotal counts WriteFreely API round trips by method and HTTP status.
	// Transport failures are recorded with status "transport_error".
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total WriteFreely API requests by method and status",
	}, []string{"method", "status"})

	// APILatency measures WriteFreely API round trip latency
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "WriteFreely API call latency by method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// AuthFailures counts calls rejected for missing or refused credentials
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failure count by reason",
	}, []string{"reason"})

	// CircuitOpenRejections counts requests refused by an open circuit breaker
	CircuitOpenRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "circuit_open_rejections_total",
		Help:      "Requests rejected because the circuit breaker was open",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// EditOperations counts write operations by type
	EditOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "edit_operations_total",
		Help:      "Edit operations by type and status",
	}, []string{"operation", "status"})

	// ContentSize tracks post body sizes sent to the API
	ContentSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "content_size_bytes",
		Help:      "Content size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"operation"})
)

// Auth failure reasons
const (
	AuthReasonMissingToken = "missing_token"
	AuthReasonRejected     = "rejected"
	AuthReasonLoginFailed  = "login_failed"
)

// StatusTransportError labels API calls that never produced an HTTP response
const StatusTransportError = "transport_error"

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	RequestsTotal.WithLabelValues(tool, statusLabel(success)).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records one WriteFreely API round trip. A zero statusCode means
// the transport failed before a response arrived.
func RecordAPICall(method string, statusCode int, duration float64) {
	status := StatusTransportError
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	APIRequestsTotal.WithLabelValues(method, status).Inc()
	APILatency.WithLabelValues(method).Observe(duration)
}

// RecordAuthFailure records an authentication failure
func RecordAuthFailure(reason string) {
	AuthFailures.WithLabelValues(reason).Inc()
}

// RecordEdit records a mutating operation and, when size > 0, the content size it carried
func RecordEdit(operation string, size int, success bool) {
	EditOperations.WithLabelValues(operation, statusLabel(success)).Inc()
	if size > 0 {
		ContentSize.WithLabelValues(operation).Observe(float64(size))
	}
}

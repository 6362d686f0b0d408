package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := getCounterValue(t, RequestsTotal.WithLabelValues(tt.tool, tt.wantStatus))
			RecordRequest(tt.tool, tt.duration, tt.success)
			after := getCounterValue(t, RequestsTotal.WithLabelValues(tt.tool, tt.wantStatus))

			if after != before+1 {
				t.Errorf("requests_total{status=%q} = %v, want %v", tt.wantStatus, after, before+1)
			}
		})
	}
}

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		statusCode int
		wantStatus string
	}{
		{"ok", "GET", 200, "200"},
		{"not found", "GET", 404, "404"},
		{"created", "POST", 201, "201"},
		{"transport failure", "DELETE", 0, StatusTransportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := getCounterValue(t, APIRequestsTotal.WithLabelValues(tt.method, tt.wantStatus))
			RecordAPICall(tt.method, tt.statusCode, 0.1)
			after := getCounterValue(t, APIRequestsTotal.WithLabelValues(tt.method, tt.wantStatus))

			if after != before+1 {
				t.Errorf("api_requests_total{method=%q,status=%q} = %v, want %v",
					tt.method, tt.wantStatus, after, before+1)
			}
		})
	}
}

func TestRecordAuthFailure(t *testing.T) {
	before := getCounterValue(t, AuthFailures.WithLabelValues(AuthReasonMissingToken))
	RecordAuthFailure(AuthReasonMissingToken)
	if got := getCounterValue(t, AuthFailures.WithLabelValues(AuthReasonMissingToken)); got != before+1 {
		t.Errorf("auth_failures_total = %v, want %v", got, before+1)
	}
}

func TestRecordEdit(t *testing.T) {
	before := getCounterValue(t, EditOperations.WithLabelValues("create_post", "success"))
	RecordEdit("create_post", 1234, true)
	if got := getCounterValue(t, EditOperations.WithLabelValues("create_post", "success")); got != before+1 {
		t.Errorf("edit_operations_total = %v, want %v", got, before+1)
	}

	hist, err := ContentSize.GetMetricWithLabelValues("create_post")
	if err != nil {
		t.Fatalf("failed to get histogram: %v", err)
	}
	var m dto.Metric
	if err := hist.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Histogram.GetSampleCount() < 1 {
		t.Error("expected content size to be observed")
	}
}

func TestRecordEdit_ZeroSizeSkipsHistogram(t *testing.T) {
	hist, err := ContentSize.GetMetricWithLabelValues("delete_post")
	if err != nil {
		t.Fatalf("failed to get histogram: %v", err)
	}
	var before dto.Metric
	if err := hist.(prometheus.Metric).Write(&before); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	RecordEdit("delete_post", 0, true)

	var after dto.Metric
	if err := hist.(prometheus.Metric).Write(&after); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if after.Histogram.GetSampleCount() != before.Histogram.GetSampleCount() {
		t.Error("content size observed for a zero-size edit")
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		APIRequestsTotal,
		APILatency,
		AuthFailures,
		CircuitOpenRejections,
		PanicsRecovered,
		EditOperations,
		ContentSize,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "writefreely_mcp" {
		t.Errorf("expected namespace 'writefreely_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}

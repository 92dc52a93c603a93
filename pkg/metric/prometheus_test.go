package metric_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-session-gate/pkg/metric"
)

func TestPrometheus_Handler_ExposesRecordedMetrics(t *testing.T) {
	metrics := metric.NewPrometheus("session_gate")

	metrics.With(metric.Labels{"outcome": "rejected", "reason": "no_token"}).Increment("gate_decisions_total")
	metrics.With(metric.Labels{"outcome": "rejected", "reason": "no_token"}).Increment("gate_decisions_total")
	metrics.Gauge("sessions_active", 3)
	metrics.WithLabel("path", "/api").Duration("request_duration_seconds", 150*time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `session_gate_gate_decisions_total{outcome="rejected",reason="no_token"} 2`)
	assert.Contains(t, string(body), `session_gate_sessions_active 3`)
	assert.Contains(t, string(body), `session_gate_request_duration_seconds_count{path="/api"} 1`)
}

func TestPrometheus_MismatchedLabelsIgnored(t *testing.T) {
	metrics := metric.NewPrometheus("test")

	metrics.WithLabel("a", "1").Increment("calls_total")
	assert.NotPanics(t, func() {
		metrics.WithLabel("b", "2").Increment("calls_total")
		metrics.Gauge("calls_total", 1)
	})
}

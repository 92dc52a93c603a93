package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/klwxsrx/go-session-gate/pkg/metric"
)

const MetricsPath = "/metrics"

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			if r.URL.Path == MetricsPath {
				return
			}

			result := getHandlerMetadata(r.Context())
			path := getRoutePath(r)

			if result.Panic != nil {
				metrics.With(metric.Labels{
					"method": r.Method,
					"path":   path,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"method": r.Method,
				"path":   path,
				"code":   strconv.Itoa(result.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}

func WithMetricsHandler(handler http.Handler) ServerOption {
	return WithRawHandler(http.MethodGet, MetricsPath, handler)
}

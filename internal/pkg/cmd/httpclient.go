package cmd

import (
	"time"

	"github.com/klwxsrx/go-session-gate/pkg/http"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	"github.com/klwxsrx/go-session-gate/pkg/observability"
)

type HTTPClientFactory struct {
	observer observability.Observer
	metrics  metric.Metrics
	logger   log.Logger
}

func NewHTTPClientFactory(
	observer observability.Observer,
	metrics metric.Metrics,
	logger log.Logger,
) HTTPClientFactory {
	return HTTPClientFactory{
		observer: observer,
		metrics:  metrics,
		logger:   logger,
	}
}

// NewClient returns an outgoing client with request id propagation, logging and metrics labeled by destination.
func (f HTTPClientFactory) NewClient(destination string, timeout time.Duration, extraOpts ...http.ClientOption) http.Client {
	opts := append([]http.ClientOption{
		http.WithClientDestination(destination),
		http.WithClientTimeout(timeout),
		http.WithRequestObservability(f.observer),
		http.WithRequestLogging(f.logger, log.LevelDebug, log.LevelWarn),
		http.WithRequestMetrics(f.metrics),
	}, extraOpts...)

	return http.NewClient(opts...)
}

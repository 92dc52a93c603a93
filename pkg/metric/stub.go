package metric

import (
	"time"
)

type metricsStub struct{}

func NewMetricsStub() Metrics {
	return metricsStub{}
}

func (s metricsStub) With(Labels) Metrics {
	return s
}

func (s metricsStub) WithLabel(string, string) Metrics {
	return s
}

func (s metricsStub) Increment(string) {}

func (s metricsStub) Add(string, float64) {}

func (s metricsStub) Gauge(string, float64) {}

func (s metricsStub) Duration(string, time.Duration) {}

package metric

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/puzpuzpuz/xsync/v3"

	pkgstrings "github.com/klwxsrx/go-session-gate/pkg/strings"
)

type (
	// Prometheus creates collectors on first use; a metric name must keep the same label names and kind.
	Prometheus interface {
		Metrics
		Handler() http.Handler
	}

	prometheusMetrics struct {
		registry   *prometheus.Registry
		namespace  string
		collectors *xsync.MapOf[string, prometheus.Collector]
		labels     Labels
	}
)

func NewPrometheus(namespace string) Prometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return prometheusMetrics{
		registry:   registry,
		namespace:  pkgstrings.ToMetricName(namespace),
		collectors: xsync.NewMapOf[string, prometheus.Collector](),
		labels:     nil,
	}
}

func (m prometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m prometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	m.labels = m.labels.merge(labels)
	return m
}

func (m prometheusMetrics) WithLabel(name, value string) Metrics {
	return m.With(Labels{name: value})
}

func (m prometheusMetrics) Increment(key string) {
	m.Add(key, 1)
}

func (m prometheusMetrics) Add(key string, value float64) {
	vec, ok := m.collector(key, func(name string, labelNames []string) prometheus.Collector {
		return prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: m.namespace, Name: name}, labelNames)
	}).(*prometheus.CounterVec)
	if !ok {
		return
	}

	counter, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	counter.Add(value)
}

func (m prometheusMetrics) Gauge(key string, value float64) {
	vec, ok := m.collector(key, func(name string, labelNames []string) prometheus.Collector {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: m.namespace, Name: name}, labelNames)
	}).(*prometheus.GaugeVec)
	if !ok {
		return
	}

	gauge, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	gauge.Set(value)
}

func (m prometheusMetrics) Duration(key string, duration time.Duration) {
	vec, ok := m.collector(key, func(name string, labelNames []string) prometheus.Collector {
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      name,
			Buckets:   prometheus.DefBuckets,
		}, labelNames)
	}).(*prometheus.HistogramVec)
	if !ok {
		return
	}

	observer, err := vec.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}
	observer.Observe(duration.Seconds())
}

func (m prometheusMetrics) collector(
	key string,
	create func(name string, labelNames []string) prometheus.Collector,
) prometheus.Collector {
	name := pkgstrings.ToMetricName(key)
	collector, _ := m.collectors.LoadOrCompute(name, func() prometheus.Collector {
		collector := create(name, m.labelNames())
		err := m.registry.Register(collector)

		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			return alreadyRegistered.ExistingCollector
		}
		return collector
	})

	return collector
}

func (m prometheusMetrics) labelNames() []string {
	names := make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

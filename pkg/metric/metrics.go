package metric

import "time"

type (
	Metrics interface {
		With(Labels) Metrics
		WithLabel(name, value string) Metrics
		Increment(key string)
		Add(key string, value float64)
		Gauge(key string, value float64)
		Duration(key string, duration time.Duration)
	}

	Labels map[string]string
)

func (l Labels) merge(other Labels) Labels {
	result := make(Labels, len(l)+len(other))
	for k, v := range l {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}

	return result
}

package metric

import "github.com/prometheus/client_golang/prometheus"

// Counter is a cumulative metric that only increases.
type Counter interface {
	Inc()
	Add(float64)
}

// CounterVec is a Counter with labels.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	Set(float64)
	Inc()
	Dec()
	Add(float64)
	Sub(float64)
}

// Histogram samples observations and counts them in buckets.
type Histogram interface {
	Observe(float64)
}

// HistogramVec is a Histogram with labels.
type HistogramVec interface {
	WithLabelValues(lvs ...string) Histogram
}

// counterVec adapts prometheus.CounterVec to the CounterVec interface.
type counterVec struct {
	vec *prometheus.CounterVec
}

func (c *counterVec) WithLabelValues(lvs ...string) Counter {
	return c.vec.WithLabelValues(lvs...)
}

// histogramVec adapts prometheus.HistogramVec to the HistogramVec interface.
type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (h *histogramVec) WithLabelValues(lvs ...string) Histogram {
	return h.vec.WithLabelValues(lvs...)
}

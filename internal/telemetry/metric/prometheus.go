package metric

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	// Command dispatch metrics
	CommandsTotal   CounterVec // labels: command, status
	CommandDuration HistogramVec
	CommandRetries  Counter
	ResponseBytes   Histogram

	// Connection metrics
	ConnectAttempts Counter
	ConnectFailures Counter

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	commandsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uebridge",
		Name:      "commands_total",
		Help:      "Commands dispatched to the editor, by command and final status.",
	}, []string{"command", "status"})

	commandDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "uebridge",
		Name:      "command_duration_seconds",
		Help:      "Wall-clock duration of a command including retries.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"command"})

	commandRetries := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "uebridge",
		Name:      "command_retries_total",
		Help:      "Transient command failures that triggered a retry.",
	})

	responseBytes := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "uebridge",
		Name:      "response_bytes",
		Help:      "Size of complete responses received from the editor.",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 10),
	})

	connectAttempts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "uebridge",
		Name:      "connect_attempts_total",
		Help:      "TCP connection attempts to the editor.",
	})

	connectFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "uebridge",
		Name:      "connect_failures_total",
		Help:      "TCP connection attempts that failed.",
	})

	reg.MustRegister(commandsTotal, commandDuration, commandRetries,
		responseBytes, connectAttempts, connectFailures)
	reg.MustRegister(collectors.NewGoCollector())

	return &Registry{
		CommandsTotal:   &counterVec{commandsTotal},
		CommandDuration: &histogramVec{commandDuration},
		CommandRetries:  commandRetries,
		ResponseBytes:   responseBytes,
		ConnectAttempts: connectAttempts,
		ConnectFailures: connectFailures,
		registry:        reg,
	}
}

// Handler returns an HTTP handler serving this registry in Prometheus format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide metrics registry.
func Global() *Registry {
	globalOnce.Do(func() {
		global = NewRegistry()
	})
	return global
}

// Handler returns an HTTP handler for the global registry.
func Handler() http.Handler {
	return Global().Handler()
}

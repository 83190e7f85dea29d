// Package metric provides Prometheus metrics for the bridge.
//
// It exposes command dispatch counts and latencies, retry and
// connection behavior, and response sizes. The metric types are
// defined as small interfaces so that callers never depend on the
// Prometheus client directly.
package metric

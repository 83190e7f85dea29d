// Package gateway exposes the bridge over HTTP. It serves a generic
// command endpoint, a named tool surface backed by a concurrent
// registry, command history from the journal, and health and metrics
// endpoints.
package gateway

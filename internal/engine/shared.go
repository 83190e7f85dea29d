package engine

import (
	"sync"

	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
)

// The process-wide connection, shared by every tool surface so that
// commands from all of them are serialized onto the editor socket.
var (
	sharedMu   sync.Mutex
	sharedConn *Conn
)

// Shared returns the process-wide connection, creating it on first
// use from the given configuration. Later calls return the existing
// instance and ignore their arguments; callers that need different
// settings must ResetShared first.
func Shared(cfg *Config, log logger.Logger, opts ...Option) *Conn {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedConn == nil {
		sharedConn = New(cfg, log, opts...)
	}
	return sharedConn
}

// ResetShared disconnects and discards the shared connection. The next
// Shared call creates a fresh one.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedConn != nil {
		sharedConn.Disconnect()
		sharedConn = nil
	}
}

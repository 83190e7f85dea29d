package engine

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
	"github.com/yndnr/uebridge-go/internal/telemetry/metric"
)

// State describes the lifecycle of the managed connection.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Conn manages the bridge connection to the editor plugin. All public
// methods are safe for concurrent use; a single mutex serializes the
// entire connect/send/receive cycle so only one command is ever in
// flight on the socket.
type Conn struct {
	cfg     *Config
	log     logger.Logger
	metrics *metric.Registry
	dial    DialFunc

	observers []Observer

	mu      sync.Mutex
	sock    net.Conn
	state   State
	lastErr error
}

// Option configures a Conn.
type Option func(*Conn)

// WithMetrics attaches a metrics registry.
func WithMetrics(r *metric.Registry) Option {
	return func(c *Conn) { c.metrics = r }
}

// WithObserver registers an observer notified after every dispatched
// command. Observers must not call back into the Conn.
func WithObserver(o Observer) Option {
	return func(c *Conn) { c.observers = append(c.observers, o) }
}

// WithDialer overrides the socket factory.
func WithDialer(dial DialFunc) Option {
	return func(c *Conn) { c.dial = dial }
}

// New creates a connection manager. It does not dial; the first
// command (or an explicit Connect) establishes the socket.
func New(cfg *Config, log logger.Logger, opts ...Option) *Conn {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.Default()
	}
	c := &Conn{
		cfg:  cfg,
		log:  log.With("component", "engine"),
		dial: dialSocket,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current connection state.
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the most recent dial failure, if any.
func (c *Conn) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Connect establishes the socket, retrying with exponential backoff up
// to MaxRetries times. The lock is released while sleeping between
// attempts so other goroutines are not blocked behind the backoff.
func (c *Conn) Connect(ctx context.Context) error {
	var err error
	for attempt := 0; ; attempt++ {
		c.mu.Lock()
		err = c.dialLocked(ctx)
		c.mu.Unlock()
		if err == nil {
			return nil
		}
		if attempt >= c.cfg.MaxRetries {
			return err
		}
		delay := c.cfg.backoff(attempt)
		c.log.Warn("connect failed, retrying",
			"attempt", attempt+1, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// connectLocked is Connect for callers already holding c.mu. The lock
// stays held across backoff sleeps, which keeps the whole command
// attempt atomic with respect to other senders.
func (c *Conn) connectLocked(ctx context.Context) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = c.dialLocked(ctx)
		if err == nil {
			return nil
		}
		if attempt >= c.cfg.MaxRetries {
			return err
		}
		delay := c.cfg.backoff(attempt)
		c.log.Warn("connect failed, retrying",
			"attempt", attempt+1, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// dialLocked performs a single dial attempt. Caller holds c.mu.
func (c *Conn) dialLocked(ctx context.Context) error {
	c.closeLocked()
	c.state = StateConnecting
	if c.metrics != nil {
		c.metrics.ConnectAttempts.Inc()
	}
	sock, err := c.dial(ctx, c.cfg)
	if err != nil {
		c.state = StateDisconnected
		c.lastErr = err
		if c.metrics != nil {
			c.metrics.ConnectFailures.Inc()
		}
		return err
	}
	c.sock = sock
	c.state = StateConnected
	c.lastErr = nil
	c.log.Debug("connected", "address", c.cfg.Address())
	return nil
}

// Disconnect closes the socket if one is open. Always succeeds.
func (c *Conn) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

// closeLocked tears down the socket, best effort. Caller holds c.mu.
func (c *Conn) closeLocked() {
	if c.sock == nil {
		c.state = StateDisconnected
		return
	}
	if tc, ok := c.sock.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}
	_ = c.sock.Close()
	c.sock = nil
	c.state = StateDisconnected
}

package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// Result is the dispatch record for one command, delivered to
// observers after every Send regardless of outcome.
type Result struct {
	ID       string
	Command  string
	Status   string
	Error    string
	Attempts int
	Elapsed  time.Duration
	Bytes    int
	At       time.Time
}

// Observer receives a Result after each dispatched command.
type Observer interface {
	Observe(Result)
}

// Send dispatches one command and returns its normalized response.
// Failures never surface as Go errors; callers always get a response
// map, with status "error" and an error message on failure. Transient
// failures (connectivity, timeouts) are retried with exponential
// backoff up to MaxRetries times on a fresh connection; encoding and
// protocol-shape failures abort immediately since resending the same
// request cannot succeed.
func (c *Conn) Send(ctx context.Context, command string, params any) protocol.Response {
	id := ulid.Make().String()
	start := time.Now()
	log := c.log.With("request_id", id, "command", command)

	var (
		resp    protocol.Response
		bytes   int
		lastErr error
	)
	attempts := 0
loop:
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		attempts = attempt + 1
		resp, bytes, lastErr = c.sendOnce(ctx, command, params)
		if lastErr == nil {
			break
		}
		c.Disconnect()
		if !transient(lastErr) {
			log.Error("command failed", "attempt", attempts, "error", lastErr)
			resp = protocol.ErrorResponse(lastErr.Error())
			break
		}
		if attempt == c.cfg.MaxRetries {
			log.Error("command failed after final attempt",
				"attempts", attempts, "error", lastErr)
			resp = protocol.ErrorResponse(fmt.Sprintf(
				"command %s failed after %d attempts: %v",
				command, attempts, lastErr))
			break
		}
		if c.metrics != nil {
			c.metrics.CommandRetries.Inc()
		}
		delay := c.cfg.backoff(attempt)
		log.Warn("transient failure, retrying",
			"attempt", attempts, "delay", delay, "error", lastErr)
		select {
		case <-ctx.Done():
			resp = protocol.ErrorResponse(fmt.Sprintf(
				"command %s canceled after %d attempts: %v",
				command, attempts, ctx.Err()))
			break loop
		case <-time.After(delay):
		}
	}

	elapsed := time.Since(start)
	status := protocol.StatusSuccess
	errMsg := ""
	if resp.IsError() {
		status = protocol.StatusError
		errMsg = resp.ErrorMessage()
	}
	if c.metrics != nil {
		c.metrics.CommandsTotal.WithLabelValues(command, status).Inc()
		c.metrics.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
		if bytes > 0 {
			c.metrics.ResponseBytes.Observe(float64(bytes))
		}
	}
	res := Result{
		ID:       id,
		Command:  command,
		Status:   status,
		Error:    errMsg,
		Attempts: attempts,
		Elapsed:  elapsed,
		Bytes:    bytes,
		At:       start,
	}
	for _, o := range c.observers {
		o.Observe(res)
	}
	log.Info("command done",
		"status", status, "attempts", attempts,
		"elapsed", elapsed, "bytes", bytes)
	return resp
}

// sendOnce performs one full connect/send/receive cycle under the
// lock. The socket is closed before returning in every case; each
// command gets a fresh connection, which keeps request and response
// trivially paired on the wire.
func (c *Conn) sendOnce(ctx context.Context, command string, params any) (protocol.Response, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connectLocked(ctx); err != nil {
		return nil, 0, err
	}
	defer c.closeLocked()

	payload, err := (&protocol.Request{Type: command, Params: params}).Marshal()
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}
	if err := c.sock.SetWriteDeadline(time.Now().Add(c.cfg.SendTimeout)); err != nil {
		return nil, 0, fmt.Errorf("set write deadline: %w", err)
	}
	if _, err := c.sock.Write(payload); err != nil {
		return nil, 0, fmt.Errorf("write request: %w", err)
	}

	raw, err := c.receiveLocked(command)
	if err != nil {
		return nil, 0, err
	}
	var resp protocol.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, len(raw), fmt.Errorf("decode response: %w", err)
	}
	return protocol.Normalize(resp), len(raw), nil
}

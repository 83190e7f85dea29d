package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// timeoutFor returns the receive budget for a command. Commands known
// to run long on the editor side get the extended budget.
func (c *Conn) timeoutFor(command string) time.Duration {
	if protocol.IsLargeOperation(command) {
		return c.cfg.LargeOpRecvTimeout
	}
	return c.cfg.RecvTimeout
}

// receiveLocked accumulates chunks from the socket until the buffer
// parses as a complete JSON value. The protocol has no length prefix
// or delimiter; completeness is detected by parsing. The deadline is
// fixed at entry so the budget covers the whole response, not each
// individual read. Caller holds c.mu with an open socket.
func (c *Conn) receiveLocked(command string) ([]byte, error) {
	if c.sock == nil {
		return nil, ErrNotConnected
	}
	budget := c.timeoutFor(command)
	start := time.Now()
	if err := c.sock.SetReadDeadline(start.Add(budget)); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}

	buf := make([]byte, 0, c.cfg.ChunkSize)
	chunk := make([]byte, c.cfg.ChunkSize)
	for {
		n, err := c.sock.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if json.Valid(buf) {
				c.log.Debug("response complete",
					"command", command, "bytes", len(buf),
					"elapsed", time.Since(start))
				return buf, nil
			}
		}
		if err == nil {
			continue
		}

		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			// A complete value may have landed exactly at the deadline.
			if len(buf) > 0 && json.Valid(buf) {
				return buf, nil
			}
			return nil, &TimeoutError{
				Command: command,
				Elapsed: time.Since(start),
				Bytes:   len(buf),
			}
		}
		if errors.Is(err, io.EOF) {
			if len(buf) == 0 {
				return nil, fmt.Errorf("%w before any data", ErrConnClosed)
			}
			if json.Valid(buf) {
				return buf, nil
			}
			return nil, fmt.Errorf("%w with incomplete data (%d bytes)",
				ErrConnClosed, len(buf))
		}
		return nil, fmt.Errorf("read response: %w", err)
	}
}

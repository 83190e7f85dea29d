package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"
)

var (
	// ErrNotConnected is returned when an operation requires a live
	// socket and none is present.
	ErrNotConnected = errors.New("not connected")

	// ErrConnClosed is returned when the peer closes the socket before
	// a complete response arrives.
	ErrConnClosed = errors.New("connection closed by peer")

	// ErrConnectFailed wraps dial failures.
	ErrConnectFailed = errors.New("connect failed")
)

// TimeoutError reports that the receive budget for a command expired
// before a complete response was accumulated.
type TimeoutError struct {
	Command string
	Elapsed time.Duration
	Bytes   int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout waiting for %s response after %s (%d bytes buffered)",
		e.Command, e.Elapsed.Round(time.Millisecond), e.Bytes)
}

// Timeout and Temporary satisfy net.Error. Receive timeouts are
// always retryable.
func (e *TimeoutError) Timeout() bool   { return true }
func (e *TimeoutError) Temporary() bool { return true }

// transient reports whether the dispatcher should tear down the
// connection and retry the whole command. Connectivity failures and
// timeouts are transient; encoding and protocol-shape failures are
// not, since resending the same request cannot change the outcome.
func transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotConnected) ||
		errors.Is(err, ErrConnClosed) ||
		errors.Is(err, ErrConnectFailed) {
		return true
	}
	var te *TimeoutError
	if errors.As(err, &te) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	var se *os.SyscallError
	if errors.As(err, &se) {
		return true
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return false
	}
	var ste *json.SyntaxError
	if errors.As(err, &ste) {
		return false
	}
	var mte *json.MarshalerError
	if errors.As(err, &mte) {
		return false
	}
	var uve *json.UnsupportedValueError
	if errors.As(err, &uve) {
		return false
	}
	var ut *json.UnsupportedTypeError
	if errors.As(err, &ut) {
		return false
	}
	return false
}

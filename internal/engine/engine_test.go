package engine

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
)

// ============================================================
// Test Helpers
// ============================================================

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	cfg.BaseRetryDelay = time.Millisecond
	cfg.MaxRetryDelay = 5 * time.Millisecond
	cfg.ConnectTimeout = 100 * time.Millisecond
	cfg.SendTimeout = 250 * time.Millisecond
	cfg.RecvTimeout = 250 * time.Millisecond
	cfg.LargeOpRecvTimeout = 500 * time.Millisecond
	return cfg
}

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	l, err := logger.New(logger.Config{Level: "error", Output: io.Discard})
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return l
}

// fakeServer hands out in-memory pipes and runs a scripted peer on the
// server side of each one. The dial index lets scripts behave
// differently on successive connections.
type fakeServer struct {
	mu     sync.Mutex
	dials  int
	handle func(dial int, conn net.Conn)
}

func (s *fakeServer) dialer() DialFunc {
	return func(ctx context.Context, cfg *Config) (net.Conn, error) {
		client, server := net.Pipe()
		s.mu.Lock()
		n := s.dials
		s.dials++
		s.mu.Unlock()
		go func() {
			defer server.Close()
			s.handle(n, server)
		}()
		return client, nil
	}
}

func (s *fakeServer) dialCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dials
}

// readRequest accumulates until the buffer is a complete JSON value,
// mirroring how the editor plugin reads.
func readRequest(conn net.Conn) ([]byte, error) {
	buf := make([]byte, 0, 512)
	chunk := make([]byte, 512)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if json.Valid(buf) {
				return buf, nil
			}
		}
		if err != nil {
			return buf, err
		}
	}
}

// echoHandler answers every request with a fixed body.
func echoHandler(body string) func(int, net.Conn) {
	return func(_ int, conn net.Conn) {
		if _, err := readRequest(conn); err != nil {
			return
		}
		_, _ = conn.Write([]byte(body))
	}
}

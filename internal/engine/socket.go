package engine

import (
	"context"
	"fmt"
	"net"
	"time"
)

// DialFunc produces a configured socket for one command exchange.
// Tests substitute it with an in-memory pipe.
type DialFunc func(ctx context.Context, cfg *Config) (net.Conn, error)

// dialSocket opens a TCP connection to the editor plugin and applies
// the transport socket options.
func dialSocket(ctx context.Context, cfg *Config) (net.Conn, error) {
	d := net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	conn, err := d.DialContext(ctx, "tcp", cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnectFailed, cfg.Address(), err)
	}
	tc, ok := conn.(*net.TCPConn)
	if !ok {
		return conn, nil
	}
	if err := tc.SetNoDelay(true); err != nil {
		_ = tc.Close()
		return nil, fmt.Errorf("%w: set nodelay: %v", ErrConnectFailed, err)
	}
	if cfg.SocketBufferSize > 0 {
		if err := tc.SetReadBuffer(cfg.SocketBufferSize); err != nil {
			_ = tc.Close()
			return nil, fmt.Errorf("%w: set read buffer: %v", ErrConnectFailed, err)
		}
		if err := tc.SetWriteBuffer(cfg.SocketBufferSize); err != nil {
			_ = tc.Close()
			return nil, fmt.Errorf("%w: set write buffer: %v", ErrConnectFailed, err)
		}
	}
	// Abortive close on teardown so the editor port does not pile up
	// sockets in TIME_WAIT between commands. Best effort only.
	_ = tc.SetLinger(0)
	return tc, nil
}

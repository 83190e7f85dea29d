package engine

import (
	"net"
	"strconv"
	"time"
)

// Config holds the transport configuration.
type Config struct {
	// Host is the editor plugin host.
	Host string
	// Port is the editor plugin TCP port.
	Port int
	// MaxRetries is the number of retries after the first attempt, for
	// both connection attempts and whole-command attempts (3 retries
	// means 4 total tries).
	MaxRetries int
	// BaseRetryDelay is the backoff base; attempt n sleeps
	// min(BaseRetryDelay * 2^n, MaxRetryDelay).
	BaseRetryDelay time.Duration
	// MaxRetryDelay caps the backoff delay.
	MaxRetryDelay time.Duration
	// ConnectTimeout bounds a single TCP connect.
	ConnectTimeout time.Duration
	// SendTimeout bounds writing one request.
	SendTimeout time.Duration
	// RecvTimeout is the receive budget for ordinary commands.
	RecvTimeout time.Duration
	// LargeOpRecvTimeout is the receive budget for known slow commands.
	LargeOpRecvTimeout time.Duration
	// ChunkSize is the per-read buffer size.
	ChunkSize int
	// SocketBufferSize is applied to both kernel send and receive buffers.
	SocketBufferSize int
}

// DefaultConfig returns the default transport configuration. The
// values mirror what the editor plugin is tuned for.
func DefaultConfig() *Config {
	return &Config{
		Host:               "127.0.0.1",
		Port:               55557,
		MaxRetries:         3,
		BaseRetryDelay:     500 * time.Millisecond,
		MaxRetryDelay:      5 * time.Second,
		ConnectTimeout:     10 * time.Second,
		SendTimeout:        10 * time.Second,
		RecvTimeout:        30 * time.Second,
		LargeOpRecvTimeout: 300 * time.Second,
		ChunkSize:          8192,
		SocketBufferSize:   128 * 1024,
	}
}

// Address returns the host:port dial target.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// backoff returns the delay before retry number attempt (0-based).
func (c *Config) backoff(attempt int) time.Duration {
	delay := c.BaseRetryDelay << uint(attempt)
	if delay > c.MaxRetryDelay || delay <= 0 {
		delay = c.MaxRetryDelay
	}
	return delay
}

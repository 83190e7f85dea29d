package gateway

import (
	"net/http"

	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
)

// RouterConfig configures the middleware stack around the API handler.
type RouterConfig struct {
	Logger logger.Logger

	// RatePerSecond is the sustained per-client request rate.
	// Zero disables rate limiting.
	RatePerSecond float64
	RateBurst     int
}

// NewRouter wraps the handler with the gateway middleware stack.
//
// Order matters: RequestID runs first so Recover and Logging can
// report it, Recover wraps everything below it, and rate limiting
// rejects before any work happens.
func NewRouter(h http.Handler, cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	middlewares := []Middleware{
		RequestID(),
		Recover(cfg.Logger),
		Logging(cfg.Logger),
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = int(cfg.RatePerSecond)
			if burst < 1 {
				burst = 1
			}
		}
		middlewares = append(middlewares, RateLimit(cfg.RatePerSecond, burst))
	}

	return Chain(h, middlewares...)
}

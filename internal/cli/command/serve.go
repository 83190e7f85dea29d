// Package command provides CLI command definitions for uebridge.
package command

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/uebridge-go/internal/engine"
	"github.com/yndnr/uebridge-go/internal/gateway"
	"github.com/yndnr/uebridge-go/internal/infra/confloader"
	"github.com/yndnr/uebridge-go/internal/infra/shutdown"
	"github.com/yndnr/uebridge-go/internal/journal"
	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
	"github.com/yndnr/uebridge-go/internal/telemetry/metric"
)

// serveConfig is the configuration for the HTTP gateway, loaded from
// file and UEBRIDGE_* environment variables.
type serveConfig struct {
	Engine struct {
		Host string `koanf:"host"`
		Port int    `koanf:"port"`
	} `koanf:"engine"`
	Gateway struct {
		Address       string  `koanf:"address"`
		RatePerSecond float64 `koanf:"rate_per_second"`
		RateBurst     int     `koanf:"rate_burst"`
	} `koanf:"gateway"`
	Journal struct {
		Dir string `koanf:"dir"`
	} `koanf:"journal"`
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
}

func defaultServeConfig() *serveConfig {
	cfg := &serveConfig{}
	cfg.Engine.Host = "127.0.0.1"
	cfg.Engine.Port = 55557
	cfg.Gateway.Address = "127.0.0.1:8080"
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

// ServeCommand returns the gateway server command.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP gateway in front of the editor",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "Gateway listen address",
				EnvVars: []string{"UEBRIDGE_GATEWAY_ADDRESS"},
			},
			&cli.StringFlag{
				Name:  "journal-dir",
				Usage: "Journal directory (empty keeps history in memory)",
			},
			&cli.Float64Flag{
				Name:  "rate-limit",
				Usage: "Per-client requests per second (0 disables)",
			},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	cfg, err := loadServeConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	// Edits to the config file adjust the log level without a restart.
	var watcher *confloader.Watcher
	if path := c.String("config"); path != "" {
		watcher, err = confloader.NewWatcher(confloader.WithWatcherLogger(log))
		if err != nil {
			return fmt.Errorf("config watcher: %w", err)
		}
		if err := watcher.Watch(path); err != nil {
			return fmt.Errorf("config watcher: %w", err)
		}
		watcher.OnChange(func(string) {
			fresh := defaultServeConfig()
			loader := confloader.NewLoader(confloader.WithConfigFile(path))
			if err := loader.Load(fresh); err != nil {
				log.Warn("config reload failed", "error", err)
				return
			}
			if fresh.Log.Level != logger.GetLevel() {
				log.Info("log level changed", "level", fresh.Log.Level)
				logger.SetLevel(fresh.Log.Level)
			}
		})
		watcher.StartAsync()
	}

	// Journal records every dispatched command.
	j, err := journal.Open(cfg.Journal.Dir, log)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	// Engine connection shared by every request.
	engCfg := engine.DefaultConfig()
	engCfg.Host = cfg.Engine.Host
	engCfg.Port = cfg.Engine.Port
	conn := engine.Shared(engCfg, log,
		engine.WithMetrics(metric.Global()),
		engine.WithObserver(j),
	)

	handler := gateway.NewHandler(gateway.HandlerConfig{
		Sender:  conn,
		Tools:   gateway.DefaultTools(conn),
		History: j,
		Metrics: metric.Global(),
		Logger:  log,
	})

	router := gateway.NewRouter(handler, gateway.RouterConfig{
		Logger:        log,
		RatePerSecond: cfg.Gateway.RatePerSecond,
		RateBurst:     cfg.Gateway.RateBurst,
	})

	srv := gateway.NewServer(cfg.Gateway.Address, router)

	// Shutdown hooks run in reverse order of startup.
	shutdownHandler := shutdown.NewHandler(15 * time.Second)
	if watcher != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			return watcher.Stop()
		})
	}
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("closing journal")
		return j.Close()
	})
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("disconnecting from editor")
		conn.Disconnect()
		return nil
	})
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down gateway")
		return srv.Shutdown(ctx)
	})

	go func() {
		log.Info("gateway listening",
			"address", cfg.Gateway.Address,
			"editor", engCfg.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("gateway error", "error", err)
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("gateway stopped gracefully")
	return nil
}

// loadServeConfig merges defaults, config file, environment and flags.
func loadServeConfig(c *cli.Context) (*serveConfig, error) {
	cfg := defaultServeConfig()

	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Flags win over file and environment.
	if addr := c.String("address"); addr != "" {
		cfg.Gateway.Address = addr
	}
	if dir := c.String("journal-dir"); dir != "" {
		cfg.Journal.Dir = dir
	}
	if rate := c.Float64("rate-limit"); rate > 0 {
		cfg.Gateway.RatePerSecond = rate
	}
	if host := c.String("host"); host != "" {
		cfg.Engine.Host = host
	}
	if port := c.Int("port"); port != 0 {
		cfg.Engine.Port = port
	}

	return cfg, nil
}

// Package command provides CLI command definitions for uebridge.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive REPL mode.
package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/yndnr/uebridge-go/internal/cli/config"
	"github.com/yndnr/uebridge-go/internal/cli/output"
	"github.com/yndnr/uebridge-go/internal/engine"
	"github.com/yndnr/uebridge-go/internal/infra/buildinfo"
	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "uebridge",
		Usage:   "Unreal Engine editor bridge",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ActorCommand(),
			BuildCommand(),
			BlueprintCommand(),
			SendCommand(),
			HistoryCommand(),
			ServeCommand(),
			ReplCommand(),
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path (default ~/.uebridge/cli.yaml)",
			EnvVars: []string{"UEBRIDGE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "Editor host",
			EnvVars: []string{"UEBRIDGE_HOST"},
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Editor TCP port",
			EnvVars: []string{"UEBRIDGE_PORT"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "json",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "Overall command timeout (0 disables)",
			Value:   10 * time.Minute,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// loadConfig resolves the CLI config with flag overrides applied.
func loadConfig(c *cli.Context) (*cliconfig.CLIConfig, error) {
	cfg, err := cliconfig.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if host := c.String("host"); host != "" {
		cfg.Host = host
	}
	if port := c.Int("port"); port != 0 {
		cfg.Port = port
	}
	return cfg, nil
}

// newSender resolves the process-wide engine connection from flags and
// config. Every command in one invocation shares the same instance so
// dispatches stay serialized on the editor socket.
func newSender(c *cli.Context) (*engine.Conn, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	engCfg := engine.DefaultConfig()
	engCfg.Host = cfg.Host
	engCfg.Port = cfg.Port

	level := "warn"
	if c.Bool("verbose") {
		level = "debug"
	}
	log, err := logger.New(logger.Config{Level: level, Format: "text"})
	if err != nil {
		return nil, err
	}

	return engine.Shared(engCfg, log), nil
}

// runContext returns the context for a single CLI invocation.
func runContext(c *cli.Context) (context.Context, context.CancelFunc) {
	timeout := c.Duration("timeout")
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// printData writes data in the selected output format.
func printData(c *cli.Context, data any) error {
	format := output.Format(c.String("output"))
	return output.NewFormatter(format, false).Format(os.Stdout, data)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

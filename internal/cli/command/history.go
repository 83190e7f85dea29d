// Package command provides CLI command definitions for uebridge.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/uebridge-go/internal/journal"
	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
)

// HistoryCommand returns the history subcommand.
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect the command journal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "journal-dir",
				Usage: "Journal directory (defaults to the config value)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "Number of entries to show, newest first",
			},
			&cli.StringFlag{
				Name:  "id",
				Usage: "Show a single entry by request ID",
			},
		},
		Action: historyShow,
	}
}

func historyShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	dir := c.String("journal-dir")
	if dir == "" {
		dir = cfg.JournalDir
	}
	if dir == "" {
		return fmt.Errorf("no journal directory configured (set journal_dir or --journal-dir)")
	}

	log, err := logger.New(logger.Config{Level: "error", Format: "text"})
	if err != nil {
		return err
	}

	j, err := journal.Open(dir, log)
	if err != nil {
		return err
	}
	defer j.Close()

	if id := c.String("id"); id != "" {
		result, err := j.Get(id)
		if err != nil {
			return err
		}
		return printData(c, result)
	}

	results, err := j.Recent(c.Int("limit"))
	if err != nil {
		return err
	}
	return printData(c, results)
}

// Package command provides CLI command definitions for uebridge.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/uebridge-go/internal/cli/repl"
)

// ReplCommand returns the interactive console command.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:    "repl",
		Aliases: []string{"console"},
		Usage:   "Start an interactive editor console",
		Action:  runRepl,
	}
}

func runRepl(c *cli.Context) error {
	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	return repl.New(sender).Run()
}

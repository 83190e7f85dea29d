// Package main provides the entry point for uebridge.
//
// uebridge is the command-line tool for driving an Unreal Editor
// instance over the plugin TCP protocol, supporting both
// single-command mode and interactive REPL mode.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/uebridge-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

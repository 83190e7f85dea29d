// Package command provides CLI command definitions for uebridge.
package command

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

// SendCommand returns the raw command pass-through.
func SendCommand() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "Send a raw command to the editor",
		ArgsUsage: "COMMAND [PARAMS_JSON]",
		Description: `Sends a single command with optional JSON parameters, for example:

   uebridge send spawn_actor '{"name": "Cube1", "type": "StaticMeshActor"}'`,
		Action: sendRaw,
	}
}

func sendRaw(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		return fmt.Errorf("expected COMMAND and optional PARAMS_JSON")
	}

	var params map[string]any
	if c.NArg() == 2 {
		if err := json.Unmarshal([]byte(c.Args().Get(1)), &params); err != nil {
			return fmt.Errorf("parameters must be a JSON object: %w", err)
		}
	}

	sender, err := newSender(c)
	if err != nil {
		return err
	}
	defer sender.Disconnect()

	ctx, cancel := runContext(c)
	defer cancel()

	resp := sender.Send(ctx, c.Args().First(), params)
	return printData(c, resp)
}

// Package repl provides the interactive REPL mode for the uebridge CLI.
package repl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/uebridge-go/internal/protocol"
)

// Sender dispatches a command to the editor.
type Sender interface {
	Send(ctx context.Context, command string, params any) protocol.Response
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
	sender    Sender
}

// New creates a new REPL dispatching commands through s.
func New(s Sender) *REPL {
	return &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory(),
		sender:    s,
	}
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	reader := bufio.NewReader(r.input)

	for {
		// Print prompt
		fmt.Fprint(r.output, "uebridge> ")

		// Read line
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		// Trim and skip empty lines
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Add to history
		r.history.Add(line)

		// Handle special commands
		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "help" {
			r.printHelp()
			continue
		}

		// Execute command
		if err := r.execute(line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

// execute parses a line as "command [json-params]" and dispatches it.
func (r *REPL) execute(line string) error {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	var params map[string]any
	if rest != "" {
		if err := json.Unmarshal([]byte(rest), &params); err != nil {
			return fmt.Errorf("parameters must be a JSON object: %w", err)
		}
	}

	resp := r.sender.Send(context.Background(), command, params)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.output, string(out))
	return nil
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.output, "Type an editor command followed by optional JSON parameters:")
	fmt.Fprintln(r.output, `  spawn_actor {"name": "Cube1", "type": "StaticMeshActor"}`)
	fmt.Fprintln(r.output, "  get_actors_in_level")
	fmt.Fprintln(r.output, "Use exit or quit to leave.")
}

// Package repl provides interactive mode for the uebridge CLI.
//
// This package implements the Read-Eval-Print Loop for interactive sessions:
//
//   - repl.go: Main REPL loop and command dispatch
//   - completer.go: Tab completion for editor command names
//   - history.go: Command history persistence
//
// Lines are parsed as an editor command name followed by optional JSON
// parameters and dispatched straight to the editor, making the REPL a
// raw protocol console.
package repl

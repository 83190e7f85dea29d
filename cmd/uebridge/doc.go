// Package main provides the entry point for uebridge.
//
// The CLI tool provides command-line access to the Unreal Editor for:
//
//   - Actor management (list, find, spawn, delete, transform)
//   - Structure generation (pyramids, walls, towers, mazes, towns)
//   - Blueprint authoring (create, compile, spawn, inspect)
//   - Raw command dispatch and command history
//   - Running the HTTP gateway in front of the editor
//
// Usage:
//
//	uebridge [command] [flags]
//	uebridge actor list --output json
//	uebridge build pyramid --base-size 5 --location 0,0,0
//	uebridge serve --address 127.0.0.1:8080
//
// The CLI supports both single-command mode and interactive REPL mode.
package main

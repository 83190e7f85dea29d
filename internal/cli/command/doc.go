// Package command provides CLI command definitions for uebridge.
//
// This package defines the command tree:
//
//   - root.go: Application setup and global flags
//   - actor.go: Level actor operations
//   - build.go: Procedural structure generators
//   - blueprint.go: Blueprint authoring operations
//   - send.go: Raw command pass-through
//   - history.go: Command journal inspection
//   - serve.go: HTTP gateway server
//   - repl.go: Interactive console
//
// Commands talk to a running Unreal Editor through the engine
// connection; serve additionally exposes the same operations over
// HTTP.
package command

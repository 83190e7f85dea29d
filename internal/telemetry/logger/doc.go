// Package logger provides structured logging for the bridge.
//
// This package wraps log/slog:
//
//   - logger.go: configuration, level handling, default logger
//   - context.go: context-aware logging with request IDs
//   - truncate.go: oversized attribute truncation
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Large payload truncation
//   - Context propagation for request tracing
package logger

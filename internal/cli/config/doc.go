// Package config provides CLI configuration for the bridge.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.uebridge/cli.yaml)
//   - loader.go: Configuration loading and saving
//
// Configuration includes:
//
//   - Editor connection settings (host, port)
//   - Output format preferences
//   - Journal and history file locations
package config

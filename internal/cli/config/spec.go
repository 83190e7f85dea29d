// Package config defines the CLI configuration structure.
package config

// CLIConfig is the configuration for the uebridge CLI.
type CLIConfig struct {
	// Editor connection settings.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// DefaultOutput is the output format (table, json, yaml).
	DefaultOutput string `yaml:"default_output"`

	// GatewayAddress is the listen address for the serve command.
	GatewayAddress string `yaml:"gateway_address"`

	// JournalDir is where command history is persisted.
	// Empty keeps the journal in memory.
	JournalDir string `yaml:"journal_dir"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Host:           "127.0.0.1",
		Port:           55557,
		DefaultOutput:  "table",
		GatewayAddress: "127.0.0.1:8080",
	}
}

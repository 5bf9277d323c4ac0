package domain

// ConfigFileName is the per-workspace configuration file name.
const ConfigFileName = ".taskmd.toml"

// GlobalConfigFileName is the file name used inside the global config dir.
const GlobalConfigFileName = "config.toml"

// DefaultLedgerFileName is the ledger file name used when no config is present.
const DefaultLedgerFileName = "TODO.md"

// Config holds the application configuration.
type Config struct {
	File     string `toml:"file"`      // Ledger file name, relative to the workspace root
	LogLevel string `toml:"log_level"` // slog level: debug, info, warn, error
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		File:     DefaultLedgerFileName,
		LogLevel: "info",
	}
}

package config

// Default values.
const (
	DefaultDataFile   = "tasks.json"
	DefaultSchemaFile = "tasks.schema.json"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for planner.
type Config struct {
	// Paths
	DataFile   string `toml:"data_file"`
	SchemaFile string `toml:"schema_file"`

	// Ask before remove / clear-completed in the CLI.
	// The TUI always confirms on screen.
	ConfirmDestructive bool `toml:"confirm_destructive"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

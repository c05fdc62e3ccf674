package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Planner configuration file
# Values can be overridden by environment variables (PLANNER_*) or CLI flags

# Task file (relative paths resolve against the working directory)
data_file = "tasks.json"

# Schema file used by doctor (written by 'planner init' if missing)
schema_file = "tasks.schema.json"

# Ask before 'rm' and 'clear' in the CLI (the TUI always confirms on screen)
confirm_destructive = true

# Logging
log_level = "info"       # debug, info, warn, error
log_format = "text"      # text, json, logfmt
log_timestamps = false
`
}

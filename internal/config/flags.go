package config

import (
	"flag"
)

// parseFlags defines and parses global CLI flags onto the config.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("planner", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DataFile, "tasks", cfg.DataFile, "Path to task file")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to schema file")
	fs.BoolVar(&cfg.ConfirmDestructive, "confirm", cfg.ConfirmDestructive, "Confirm before destructive operations")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")

	return fs.Parse(args)
}

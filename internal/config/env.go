package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("PLANNER_TASKS"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("PLANNER_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("PLANNER_CONFIRM"); v != "" {
		cfg.ConfirmDestructive = boolFromString(v)
	}
	if v := os.Getenv("PLANNER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PLANNER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("PLANNER_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

// boolFromString interprets common truthy strings.
func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

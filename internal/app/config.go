package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPaths are settings files or directories of .hcl files. Missing
	// paths are ignored; with none, the built-in defaults are used.
	ConfigPaths []string

	// Environ holds environment variables in os.Environ form. GENELOADER_*
	// entries override the user defaults of the settings file.
	Environ []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	case "":
		cfg.LogFormat = "text"
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		cfg.LogLevel = "warn"
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	for _, p := range cfg.ConfigPaths {
		if p == "" {
			return nil, errors.New("config paths must not be empty")
		}
	}

	return &cfg, nil
}

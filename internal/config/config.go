// Package config defines service configuration structures and loading hooks.
package config

import "context"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the CSV source of employee records.
	DatasetPath string `koanf:"dataset_path"`
}

// New returns a Config holding the defaults. Context is accepted first to
// satisfy the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		DatasetPath: "EA.csv",
	}
}

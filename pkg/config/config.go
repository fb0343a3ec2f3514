// Package config loads citizen-dojo settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Backend selects where progress is kept.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Config holds application configuration.
type Config struct {
	StateBackend Backend `env:"CITIZEN_DOJO_STATE_BACKEND" envDefault:"json"`
	// StatePath defaults to a file under ~/.citizen-dojo.
	StatePath string `env:"CITIZEN_DOJO_STATE_PATH"`

	FeedbackDelay time.Duration `env:"CITIZEN_DOJO_FEEDBACK_DELAY" envDefault:"800ms"`

	CatalogFile      string `env:"CITIZEN_DOJO_CATALOG_FILE"`
	CatalogConfigMap string `env:"CITIZEN_DOJO_CATALOG_CONFIGMAP"`
	Kubeconfig       string `env:"CITIZEN_DOJO_KUBECONFIG"`

	LogFile      string `env:"CITIZEN_DOJO_LOG_FILE"`
	LogVerbosity int    `env:"CITIZEN_DOJO_LOG_V" envDefault:"0"`

	// MetricsAddr serves /metrics when set, e.g. "127.0.0.1:9464".
	MetricsAddr string `env:"CITIZEN_DOJO_METRICS_ADDR"`
}

// Load parses the environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	var errs []error
	switch c.StateBackend {
	case BackendJSON, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown state backend %q (want %q or %q)", c.StateBackend, BackendJSON, BackendSQLite))
	}
	if c.FeedbackDelay < 0 {
		errs = append(errs, fmt.Errorf("feedback delay must not be negative, got %s", c.FeedbackDelay))
	}
	if c.LogVerbosity < 0 {
		errs = append(errs, fmt.Errorf("log verbosity must not be negative, got %d", c.LogVerbosity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

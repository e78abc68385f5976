package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Paths are .hcl files or directories containing them.
	Paths []string `validate:"required,min=1,dive,required"`
	// DeploymentID is stamped on every compiled case. A random id is
	// generated when empty.
	DeploymentID string
	Format       string `validate:"oneof=table yaml"`

	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = FormatTable
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

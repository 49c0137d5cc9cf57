package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the fully resolved command-line configuration.
type Config struct {
	// Key material. Exactly one source must be set, checked separately
	// since the info command needs none.
	Key        string `mapstructure:"key"`
	KeyFile    string `mapstructure:"key-file"`
	Passphrase string `mapstructure:"passphrase"`
	Prompt     bool   `mapstructure:"prompt"`

	// Common flags
	Parallel           int    `mapstructure:"parallel" validate:"min=1"`
	Quiet              bool   `mapstructure:"quiet"`
	Stats              bool   `mapstructure:"stats"`
	PreserveTimestamps bool   `mapstructure:"preserve-timestamps"`
	LogLevel           string `mapstructure:"log-level" validate:"oneof=trace debug info warn error off"`

	// Command-specific flags
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Input  string `mapstructure:"-" validate:"required"`
	Output string `mapstructure:"-"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// Package logging creates the hclog loggers used across the tool.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment variables overriding the logger defaults.
const (
	envLevel = "GOSCRAM_LOG_LEVEL"
	envJSON  = "GOSCRAM_LOG_JSON"
)

// New creates a named hclog logger writing to output.
// A nil output falls back to stderr.
func New(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(envJSON) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// DefaultLevel returns the log level from the environment,
// defaulting to "warn" when unset.
func DefaultLevel() string {
	level := os.Getenv(envLevel)
	if level == "" {
		level = "warn"
	}

	return level
}

// Package commands provides the command-line interface for the goscram tool.
//
// It implements commands for:
//   - scrambling
//   - unscrambling
//   - image inspection
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/idelchi/goscram/internal/config"
	"github.com/idelchi/goscram/pkg/logging"
)

// preRun returns a PreRunE handler that unmarshals the bound flags into
// cfg, resolves positional args into the input and output paths, and
// validates the result. A passphrase requested with --prompt is read
// here, before any pixels are touched.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Input = args[0]
		if len(args) > 1 {
			cfg.Output = args[1]
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := cfg.ValidateKeySource(); err != nil {
			return err
		}

		if cfg.Prompt {
			passphrase, err := readPassphrase(cmd)
			if err != nil {
				return err
			}

			cfg.Passphrase = passphrase
		}

		return nil
	}
}

// readPassphrase prompts on stderr and reads a passphrase without echo.
func readPassphrase(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")

	secret, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	return string(secret), nil
}

// newLogger builds the command logger honoring --log-level.
func newLogger(cfg *config.Config) hclog.Logger {
	return logging.New("goscram", cfg.LogLevel, nil)
}

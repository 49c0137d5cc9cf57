package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goscram/internal/config"
	"github.com/idelchi/goscram/internal/logic"
)

// NewInfoCommand creates a new cobra command for the info subcommand.
// Inspection needs no key, so the key source rules are not applied.
func NewInfoCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info input",
		Short: "Show image metadata",
		Long:  `Show the format, dimensions and channel layout of an image.`,
		Args:  cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			if err := viper.Unmarshal(cfg); err != nil {
				return fmt.Errorf("parsing config: %w", err)
			}

			cfg.Input = args[0]

			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunInfo(cfg)
		},
	}
}

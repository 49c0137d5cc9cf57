package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goscram/internal/config"
	"github.com/idelchi/goscram/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] input [output]",
		Aliases: []string{"dec"},
		Short:   "Restore a scrambled image",
		Long: `Restore an image scrambled with the same key.
When output is omitted the input file is overwritten in place.`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg, newLogger(cfg))
		},
	}
}

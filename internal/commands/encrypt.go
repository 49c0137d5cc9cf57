package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goscram/internal/config"
	"github.com/idelchi/goscram/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] input [output]",
		Aliases: []string{"enc"},
		Short:   "Scramble an image",
		Long: `Scramble the pixels of an image with the given key.
When output is omitted the input file is overwritten in place.`,
		Args:    cobra.RangeArgs(1, 2),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg, newLogger(cfg))
		},
	}
}

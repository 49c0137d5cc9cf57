package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goscram/internal/config"
	"github.com/idelchi/goscram/pkg/logging"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goscram [flags] command [flags]",
		Short: "Image scrambling utility",
		Long: `A keyed image scrambler. Reorders and masks the raw pixels of an image
so that only the holder of the key can restore the original picture.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix("GOSCRAM")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()

			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			return nil
		},
	}

	root.PersistentFlags().StringP("key", "k", "", "Key as a decimal or 0x-prefixed hex integer (unsigned 64-bit)")
	root.PersistentFlags().StringP("key-file", "f", "", "Path to a file whose first line holds the key")
	root.PersistentFlags().StringP("passphrase", "p", "", "Passphrase to derive the key from")
	root.PersistentFlags().Bool("prompt", false, "Prompt for a passphrase without echo")

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Carry the input file's timestamps over to the output")
	root.PersistentFlags().String("log-level", logging.DefaultLevel(), "Log level (trace, debug, info, warn, error, off)")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewInfoCommand(cfg))

	return root
}

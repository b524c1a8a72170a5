// Package cli provides the command-line interface for sparsem.
//
// The CLI is thin glue over the sparse and render packages: it loads
// matrices from user-given paths, runs one operation, and presents or saves
// the result. All matrix semantics live in package sparse; messaging of
// format and dimension errors happens here.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsem/internal/cli/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sparsem",
		Short: "sparsem - sparse integer matrix operations",
		Long: `sparsem loads sparse integer matrices from the rows=/cols=/(r, c, v)
text format, performs addition, subtraction or multiplication, and writes
the result back in the same format. It can also render a matrix as a
console table or a sparsity-pattern plot.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: sparsem.yaml in the working directory)")
	rootCmd.PersistentFlags().String("format", config.DefaultFormat, "default rendering for show: table or text")
	rootCmd.PersistentFlags().BoolP("verbose", "v", config.DefaultVerbose, "enable debug logging")

	rootCmd.AddCommand(
		newAddCmd(),
		newSubCmd(),
		newMulCmd(),
		newShowCmd(),
		newSpyCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and reports failure on stderr.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}

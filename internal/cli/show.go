package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsem/internal/cli/config"
	"github.com/katalvlaran/sparsem/render"
)

// newShowCmd renders one matrix file on stdout. The format flag (or the
// "format" config key) selects a dense table or the triplet text listing.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Render a matrix file on the console",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadOperand(args[0])
			if err != nil {
				return err
			}

			switch cfg.Format {
			case config.FormatTable:
				return render.Table(cmd.OutOrStdout(), m)
			case config.FormatText:
				return render.Triplets(cmd.OutOrStdout(), m)
			default:
				// Validate() rejects anything else before commands run.
				return fmt.Errorf("unknown format %q", cfg.Format)
			}
		},
	}
}

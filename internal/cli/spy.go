package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsem/render"
)

// newSpyCmd saves a sparsity-pattern plot of one matrix file.
func newSpyCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "spy FILE",
		Short: "Save a sparsity-pattern plot of a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadOperand(args[0])
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = strings.TrimSuffix(args[0], ".txt") + ".png"
			}
			if err = render.Spy(m, outPath); err != nil {
				return err
			}
			slog.Debug("saved spy plot", "path", outPath, "nnz", m.NNZ())

			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "plot file (default: input name with .png)")

	return cmd
}

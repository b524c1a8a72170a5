package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsem/sparse"
)

// loadOperand loads one matrix file, distinguishing a missing file from a
// malformed one in the user-facing message. The codec folds both into
// ErrInvalidFormat; telling them apart is this layer's job.
func loadOperand(path string) (*sparse.Matrix, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("matrix file %s does not exist", path)
	}
	m, err := sparse.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded matrix", "path", path, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return m, nil
}

// newOpCmd builds one binary-operation command: load two operand files,
// apply op, print the result text, and save it when -o was given.
func newOpCmd(use, short string, op func(a, b *sparse.Matrix) (*sparse.Matrix, error)) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   use + " A_FILE B_FILE",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadOperand(args[0])
			if err != nil {
				return err
			}
			b, err := loadOperand(args[1])
			if err != nil {
				return err
			}

			res, err := op(a, b)
			if errors.Is(err, sparse.ErrDimensionMismatch) {
				return fmt.Errorf("%s: %dx%d and %dx%d are not compatible: %w",
					use, a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res)
			if outPath != "" {
				if err = res.Save(outPath); err != nil {
					return err
				}
				slog.Debug("saved result", "path", outPath, "nnz", res.NNZ())
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the result to this file")

	return cmd
}

func newAddCmd() *cobra.Command {
	return newOpCmd("add", "Add two matrices", sparse.Add)
}

func newSubCmd() *cobra.Command {
	return newOpCmd("sub", "Subtract the second matrix from the first", sparse.Sub)
}

func newMulCmd() *cobra.Command {
	return newOpCmd("mul", "Multiply two matrices", sparse.Mul)
}

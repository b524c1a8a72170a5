package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/sparsem/sparse"
)

// MaxTableCells bounds the dense console rendering. A matrix with more than
// this many cells is refused with ErrTooLarge; use Triplets instead.
const MaxTableCells = 10_000

// Table writes a dense view of m to w, zeros included, with column indices
// as the header and row indices in the leading column.
// Returns ErrNilMatrix on a nil matrix and ErrTooLarge past MaxTableCells.
// Complexity: O(rows·cols).
func Table(w io.Writer, m *sparse.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	rows, cols := m.Rows(), m.Cols()
	if rows*cols > MaxTableCells {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrTooLarge)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, cols+1)
	header[0] = ""
	for j := 0; j < cols; j++ {
		header[j+1] = strconv.Itoa(j)
	}
	t.AppendHeader(header)

	for i := 0; i < rows; i++ {
		row := make(table.Row, cols+1)
		row[0] = strconv.Itoa(i)
		for j := 0; j < cols; j++ {
			row[j+1] = strconv.FormatInt(m.At(i, j), 10)
		}
		t.AppendRow(row)
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d non-zero of %dx%d)\n", m.NNZ(), rows, cols)

	return err
}

// Triplets writes the codec text form of m to w followed by a non-zero
// count footer. Suitable for matrices of any size.
func Triplets(w io.Writer, m *sparse.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if _, err := m.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n(%d non-zero of %dx%d)\n", m.NNZ(), m.Rows(), m.Cols())

	return err
}

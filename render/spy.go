package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/sparsem/sparse"
)

// spySize is the rendered edge length of the square spy plot.
const spySize = 5 * vg.Inch

// Spy saves a sparsity-pattern scatter plot of m to path. Each stored cell
// becomes one marker at (col, row), with the row axis inverted so row 0
// sits at the top, matching how the matrix is read on paper. The output
// format follows the path extension (.png, .svg, .pdf, ...), as supported
// by gonum/plot.
// Returns ErrNilMatrix on a nil matrix and ErrEmptyPlot for a 0×n shape.
// Complexity: O(nnz) points plus rendering cost.
func Spy(m *sparse.Matrix, path string) error {
	if m == nil {
		return ErrNilMatrix
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return ErrEmptyPlot
	}

	pts := make(plotter.XYs, 0, m.NNZ())
	for _, e := range m.Entries() {
		pts = append(pts, plotter.XY{X: float64(e.Col), Y: float64(rows - 1 - e.Row)})
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("render: spy scatter: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%dx%d, nnz=%d", rows, cols, m.NNZ())
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5
	p.Add(sc)

	if err = p.Save(spySize, spySize, path); err != nil {
		return fmt.Errorf("render: spy save %s: %w", path, err)
	}

	return nil
}

// Package sparse: bridges to gonum's dense matrices.
//
// The sparse package stores integers; gonum works in float64. ToDense is
// always exact for values up to 2⁵³ in magnitude, beyond which float64
// rounds. FromDense is strict: every cell must be exactly representable as
// an int64, otherwise the conversion fails with ErrNonIntegral.
package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToDense materializes m as a gonum dense matrix for callers doing float
// math. A matrix with zero rows or columns has no dense representation in
// gonum and returns nil.
// Complexity: O(rows·cols) memory, O(nnz) fill.
func (m *Matrix) ToDense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for k, v := range m.entries {
		if k.Row < m.rows && k.Col < m.cols {
			d.Set(k.Row, k.Col, float64(v))
		}
	}

	return d
}

// FromDense ingests a gonum dense matrix. Cells must be integral and within
// int64 range; zeros are dropped through Set.
// Returns ErrNonIntegral on any fractional, NaN, Inf or out-of-range cell.
// Complexity: O(rows·cols).
func FromDense(d *mat.Dense) (*Matrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := d.Dims()
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			if v != math.Trunc(v) || math.IsNaN(v) || math.IsInf(v, 0) ||
				v < math.MinInt64 || v >= math.MaxInt64 {
				return nil, fmt.Errorf("cell (%d,%d)=%v: %w", i, j, v, ErrNonIntegral)
			}
			m.Set(i, j, int64(v))
		}
	}

	return m, nil
}

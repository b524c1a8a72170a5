package sparse_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sparsem/sparse"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects negative dimensions and accepts
// zero-sized shapes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		err        error
	}{
		{"NegativeRows", -1, 3, sparse.ErrInvalidDimensions},
		{"NegativeCols", 3, -1, sparse.ErrInvalidDimensions},
		{"ZeroByZero", 0, 0, nil},
		{"Regular", 4, 5, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := sparse.New(tc.rows, tc.cols)
			if !errors.Is(err, tc.err) {
				t.Fatalf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
			if tc.err == nil {
				if m.Rows() != tc.rows || m.Cols() != tc.cols {
					t.Errorf("shape = %dx%d; want %dx%d", m.Rows(), m.Cols(), tc.rows, tc.cols)
				}
				if m.NNZ() != 0 {
					t.Errorf("NNZ = %d; want 0", m.NNZ())
				}
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Accessors & the no-zero invariant
//----------------------------------------------------------------------------//

// TestSet_NoZeroStored drives Set through inserts, overwrites and zero
// deletions and checks that no coordinate ever reads back a stored zero.
func TestSet_NoZeroStored(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)

	m.Set(0, 0, 7)
	m.Set(1, 2, -4)
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, int64(7), m.At(0, 0))
	require.Equal(t, int64(-4), m.At(1, 2))

	// Overwrite, then delete via zero.
	m.Set(0, 0, 9)
	require.Equal(t, int64(9), m.At(0, 0))
	m.Set(0, 0, 0)
	require.Equal(t, int64(0), m.At(0, 0))
	require.Equal(t, 1, m.NNZ())

	// Zero on an absent cell is a no-op.
	m.Set(2, 2, 0)
	require.Equal(t, 1, m.NNZ())
}

// TestAt_NoBoundsCheck confirms that any coordinate is legal to query and
// that coordinates outside the declared shape read as 0 unless stored.
func TestAt_NoBoundsCheck(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	require.Equal(t, int64(0), m.At(-1, 40))
	require.Equal(t, int64(0), m.At(100, 100))

	// The entity itself does not clamp to the declared shape.
	m.Set(100, 100, 6)
	require.Equal(t, int64(6), m.At(100, 100))
}

//----------------------------------------------------------------------------//
// Clone, Entries, Equal
//----------------------------------------------------------------------------//

// TestClone_Independent verifies deep-copy semantics: mutating the clone
// never leaks into the original and vice versa.
func TestClone_Independent(t *testing.T) {
	a, err := sparse.New(2, 3)
	require.NoError(t, err)
	a.Set(0, 1, 5)
	a.Set(1, 2, -1)

	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Set(0, 1, 0)
	b.Set(1, 0, 8)
	require.Equal(t, int64(5), a.At(0, 1))
	require.Equal(t, int64(0), a.At(1, 0))
	require.False(t, a.Equal(b))
}

// TestEntries_RowMajorOrder checks the ordering contract: entries set in
// order (1,0), (0,5), (0,1) snapshot as (0,1), (0,5), (1,0).
func TestEntries_RowMajorOrder(t *testing.T) {
	m, err := sparse.New(2, 6)
	require.NoError(t, err)
	m.Set(1, 0, 10)
	m.Set(0, 5, 20)
	m.Set(0, 1, 30)

	got := m.Entries()
	want := []sparse.Entry{
		{Row: 0, Col: 1, Val: 30},
		{Row: 0, Col: 5, Val: 20},
		{Row: 1, Col: 0, Val: 10},
	}
	require.Equal(t, want, got)
}

// TestEqual covers shape, entry-set and nil comparisons.
func TestEqual(t *testing.T) {
	a, _ := sparse.New(2, 2)
	b, _ := sparse.New(2, 2)
	c, _ := sparse.New(2, 3)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))

	a.Set(1, 1, 4)
	require.False(t, a.Equal(b))
	b.Set(1, 1, 4)
	require.True(t, a.Equal(b))
}

// TestCoord_Less pins the row-major ordering helper.
func TestCoord_Less(t *testing.T) {
	cases := []struct {
		name string
		a, b sparse.Coord
		want bool
	}{
		{"RowWins", sparse.Coord{Row: 0, Col: 9}, sparse.Coord{Row: 1, Col: 0}, true},
		{"ColBreaksTie", sparse.Coord{Row: 1, Col: 2}, sparse.Coord{Row: 1, Col: 3}, true},
		{"EqualNotLess", sparse.Coord{Row: 1, Col: 1}, sparse.Coord{Row: 1, Col: 1}, false},
		{"Greater", sparse.Coord{Row: 2, Col: 0}, sparse.Coord{Row: 1, Col: 5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("%v.Less(%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

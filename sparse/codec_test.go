// Package sparse_test contains unit tests for the text codec.
package sparse_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sparsem/sparse"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse_Succeeds(t *testing.T) {
	const text = "rows=3\ncols=4\n(0, 1, 5)\n(2, 3, -7)\n"

	m, err := sparse.ParseString(text)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, int64(5), m.At(0, 1))
	require.Equal(t, int64(-7), m.At(2, 3))
}

// TestParse_GrammarTolerance covers the permissive corners of the grammar:
// blank lines, interior whitespace, header order, duplicate assignments.
func TestParse_GrammarTolerance(t *testing.T) {
	cases := []struct {
		name string
		text string
		rows int
		cols int
		nnz  int
	}{
		{"BlankLinesSkipped", "rows=2\n\n\ncols=2\n\n(0, 0, 1)\n\n", 2, 2, 1},
		{"WhitespaceInTriplet", "rows=2\ncols=2\n(  1 ,\t1 ,  9 )", 2, 2, 1},
		{"HeaderAfterEntries", "(0, 0, 3)\nrows=1\ncols=1", 1, 1, 1},
		{"LastAssignmentWins", "rows=5\nrows=2\ncols=2", 2, 2, 0},
		{"HeaderOnly", "rows=0\ncols=0", 0, 0, 0},
		{"ExplicitZeroDropped", "rows=1\ncols=1\n(0, 0, 0)", 1, 1, 0},
		{"DuplicateEntryOverwrites", "rows=1\ncols=1\n(0, 0, 4)\n(0, 0, 6)", 1, 1, 1},
		// Historical permissiveness: coordinates outside the declared shape load fine.
		{"OutOfRangeAccepted", "rows=1\ncols=1\n(9, 9, 1)", 1, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := sparse.ParseString(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Equal(t, tc.nnz, m.NNZ())
		})
	}
}

// TestParse_InvalidFormat asserts that every malformed shape fails with the
// single ErrInvalidFormat kind and that nothing partial leaks out.
func TestParse_InvalidFormat(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"TwoFieldTriplet", "rows=2\ncols=2\n(1, 2)"},
		{"FourFieldTriplet", "rows=2\ncols=2\n(1, 2, 3, 4)"},
		{"NonIntegerField", "rows=2\ncols=2\n(1, x, 3)"},
		{"FloatField", "rows=2\ncols=2\n(1, 2, 3.5)"},
		{"UnknownAssignment", "foo=bar"},
		{"BareWord", "hello"},
		{"UnclosedParen", "rows=1\ncols=1\n(0, 0, 1"},
		{"NonIntegerRows", "rows=two"},
		{"NegativeRows", "rows=-3"},
		{"EmptyTriplet", "()"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := sparse.ParseString(tc.text)
			if !errors.Is(err, sparse.ErrInvalidFormat) {
				t.Fatalf("ParseString(%q) error = %v; want ErrInvalidFormat", tc.text, err)
			}
			if m != nil {
				t.Errorf("ParseString(%q) returned a partial matrix", tc.text)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// String / round trip
//----------------------------------------------------------------------------//

// TestString_SortedRowMajor checks the serialization order contract:
// entries set as (1,0), (0,5), (0,1) serialize as (0,1), (0,5), (1,0).
func TestString_SortedRowMajor(t *testing.T) {
	m, err := sparse.New(2, 6)
	require.NoError(t, err)
	m.Set(1, 0, 10)
	m.Set(0, 5, 20)
	m.Set(0, 1, 30)

	want := "rows=2\ncols=6\n(0, 1, 30)\n(0, 5, 20)\n(1, 0, 10)"
	require.Equal(t, want, m.String())
}

func TestString_EmptyMatrix(t *testing.T) {
	m, err := sparse.New(3, 2)
	require.NoError(t, err)
	require.Equal(t, "rows=3\ncols=2", m.String())
}

// TestRoundTrip_Law verifies parse(serialize(m)) == m across shapes.
func TestRoundTrip_Law(t *testing.T) {
	cases := []struct {
		name  string
		build func(t *testing.T) *sparse.Matrix
	}{
		{"Empty", func(t *testing.T) *sparse.Matrix {
			m, err := sparse.New(0, 0)
			require.NoError(t, err)
			return m
		}},
		{"Mixed", func(t *testing.T) *sparse.Matrix {
			m, err := sparse.New(4, 4)
			require.NoError(t, err)
			m.Set(0, 0, -1)
			m.Set(3, 3, 12345678901234)
			m.Set(1, 2, 7)
			return m
		}},
		{"SingleCell", func(t *testing.T) *sparse.Matrix {
			m, err := sparse.New(1, 1)
			require.NoError(t, err)
			m.Set(0, 0, 42)
			return m
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.build(t)
			back, err := sparse.ParseString(m.String())
			require.NoError(t, err)
			require.True(t, m.Equal(back), "round trip changed the matrix:\n%s", m)
		})
	}
}

//----------------------------------------------------------------------------//
// Load / Save
//----------------------------------------------------------------------------//

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.txt")

	m, err := sparse.New(2, 2)
	require.NoError(t, err)
	m.Set(0, 1, 3)
	m.Set(1, 0, -9)
	require.NoError(t, m.Save(path))

	back, err := sparse.Load(path)
	require.NoError(t, err)
	require.True(t, m.Equal(back))

	// Save overwrites.
	m.Set(0, 1, 0)
	require.NoError(t, m.Save(path))
	back, err = sparse.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, back.NNZ())
}

// TestLoad_MissingFile folds the I/O failure into ErrInvalidFormat; the
// outer glue distinguishes missing files before calling Load if it cares.
func TestLoad_MissingFile(t *testing.T) {
	_, err := sparse.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, sparse.ErrInvalidFormat)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("rows=2\ncols=2\n(1, 2)\n"), 0o644))

	_, err := sparse.Load(path)
	require.ErrorIs(t, err, sparse.ErrInvalidFormat)
}

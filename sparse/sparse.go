// SPDX-License-Identifier: MIT

// Package sparse - coordinate-map storage & accessors.
//
// Purpose:
//   - Keep only non-zero cells in a map keyed by Coord, so memory scales
//     with nnz rather than rows×cols.
//   - Guarantee the storage invariant at a single choke point: Set deletes
//     on zero, so no key ever maps to 0.
//   - Keep accessors permissive: At/Set accept any coordinate; declared
//     dimensions bound arithmetic, not queries.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) expected; Clone: O(nnz); Entries: O(nnz log nnz).

package sparse

import "sort"

// Coord identifies one cell of a matrix. Comparable, usable as a map key.
// Ordering across the package is row-major: by Row, then by Col.
type Coord struct {
	Row, Col int
}

// Less reports whether c precedes o in row-major order.
// Complexity: O(1).
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Entry is one non-zero cell together with its value, as produced by
// Entries and consumed by the codec.
type Entry struct {
	Row, Col int
	Val      int64
}

// Matrix is a sparse integer matrix in coordinate form.
//   - rows, cols hold the declared dimensions; they are fixed at
//     construction and never change (a different shape means a new Matrix).
//   - entries holds exactly the non-zero cells. Absence means 0.
//
// Values are int64 with wraparound overflow semantics (see package doc).
// Matrix is not safe for concurrent mutation; operations in this package
// are single-threaded by design.
type Matrix struct {
	rows, cols int
	entries    map[Coord]int64
}

// New creates an empty rows×cols matrix.
// Returns ErrInvalidDimensions if rows or cols is negative; zero is legal.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{rows: rows, cols: cols, entries: make(map[Coord]int64)}, nil
}

// Rows returns the declared number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the declared number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols
}

// NNZ returns the number of stored (non-zero) cells.
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	return len(m.entries)
}

// At returns the value at (row, col), or 0 when the cell is not stored.
// There is no bounds check: any coordinate is legal to query, and
// coordinates outside the declared shape simply read as 0 unless a loader
// or caller explicitly stored them.
// Complexity: O(1) expected.
func (m *Matrix) At(row, col int) int64 {
	return m.entries[Coord{Row: row, Col: col}]
}

// Set assigns v at (row, col). A non-zero v inserts or overwrites the cell;
// v == 0 removes the cell if present (no-op otherwise). This is the single
// choke point for the "no stored zeros" invariant — all mutation in the
// package, including arithmetic accumulation, routes through it.
// Complexity: O(1) expected.
func (m *Matrix) Set(row, col int, v int64) {
	key := Coord{Row: row, Col: col}
	if v == 0 {
		delete(m.entries, key)
		return
	}
	m.entries[key] = v
}

// Clone returns a deep copy of the matrix. The copy owns a fresh entry map;
// later mutation of either matrix never affects the other.
// Complexity: O(nnz) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make(map[Coord]int64, len(m.entries))
	for k, v := range m.entries {
		cp[k] = v
	}

	return &Matrix{rows: m.rows, cols: m.cols, entries: cp}
}

// Entries returns a snapshot of all stored cells in ascending row-major
// order. The slice is freshly allocated; mutating it does not touch m.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Val: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// Equal reports whether m and o have the same declared dimensions and the
// same non-zero entry set. A nil operand is only equal to another nil.
// Complexity: O(nnz).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || len(m.entries) != len(o.entries) {
		return false
	}
	for k, v := range m.entries {
		if o.entries[k] != v {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the operation boundary — callers still match via errors.Is.

var (
	// ErrInvalidFormat is returned by the codec for any grammar violation
	// (unrecognized line shape, wrong triplet arity, non-integer field) and
	// for any underlying I/O failure while reading. The first bad line
	// aborts the whole load; no partial matrix is ever returned.
	ErrInvalidFormat = errors.New("sparse: invalid matrix format")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with different shapes, or Mul where a.Cols() !=
	// b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidDimensions indicates negative rows or cols at construction.
	// Zero is legal: a 0×0 matrix is empty but well-formed.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrNonIntegral is returned by FromDense when a cell holds a value
	// that is not exactly representable as an int64 (fractional, NaN, Inf,
	// or out of range).
	ErrNonIntegral = errors.New("sparse: non-integral value")
)

// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single, canonical source of truth for operand validation.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - All checks are pure, deterministic and allocate nothing.

package sparse

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have identical declared dimensions.
// Assumes both are non-nil (caller runs ValidateNotNil first).
// Returns ErrDimensionMismatch on any difference.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulShape ensures a and b are conformable for multiplication,
// i.e. a.Cols() == b.Rows(). Assumes both are non-nil.
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateMulShape(a, b *Matrix) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// Package sparse provides universal operations on sparse matrices:
// element-wise addition and subtraction, and matrix multiplication. All
// functions perform strict fail-fast validation, never mutate their
// operands, and return freshly allocated results.
package sparse

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// opErrorf wraps an underlying error with the given operation tag.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new Matrix containing the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): clone a as the accumulator.
// Stage 3 (Execute): fold b's non-zeros through Set, so sums that cancel
// to zero are pruned rather than stored.
// Complexity: O(nnz(a) + nnz(b)) time, O(nnz(result)) memory.
func Add(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	res := a.Clone()
	for k, v := range b.entries {
		res.Set(k.Row, k.Col, res.At(k.Row, k.Col)+v)
	}

	return res, nil
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Same validation and accumulation scheme as Add, with subtraction.
// Complexity: O(nnz(a) + nnz(b)) time, O(nnz(result)) memory.
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opSub, err)
	}

	res := a.Clone()
	for k, v := range b.entries {
		res.Set(k.Row, k.Col, res.At(k.Row, k.Col)-v)
	}

	return res, nil
}

// Mul returns the matrix product a × b as a new a.Rows()×b.Cols() Matrix.
// Stage 1 (Validate): nil-checks and inner-dimension match.
// Stage 2 (Prepare): allocate the empty result.
// Stage 3 (Execute): for every non-zero (r1,c1)->v1 of a, scan every column
// c2 of b and accumulate v1·b[c1,c2] into result[r1,c2] through Set.
//
// The scan is sparse on the left operand but dense over b's columns, so the
// cost is O(nnz(a)·b.Cols()), not O(nnz(a)·nnz(b)). Accumulation through
// Set keeps cancellations out of storage. Products wrap on int64 overflow.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	res, err := New(a.rows, b.cols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var v2 int64
	for k, v1 := range a.entries {
		for c2 := 0; c2 < b.cols; c2++ {
			if v2 = b.At(k.Col, c2); v2 != 0 {
				res.Set(k.Row, c2, res.At(k.Row, c2)+v1*v2)
			}
		}
	}

	return res, nil
}

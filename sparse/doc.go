// Package sparse implements integer matrices stored in coordinate form:
// only non-zero cells are kept, keyed by their (row, col) position.
//
// The sparse package provides:
//
//   - Matrix, a map-backed entity with O(1) At/Set accessors and a strict
//     "no stored zeros" invariant maintained by Set.
//   - Add, Sub and Mul, which validate shapes fail-fast and always return
//     freshly allocated results (operands are never mutated).
//   - A line-oriented text codec (rows=/cols=/triplet lines) with a strict
//     grammar: Parse, Load, String, WriteTo, Save.
//   - Bridges to gonum's dense matrices for callers that need float math.
//
// Values are int64. Arithmetic uses Go's two's-complement semantics, so
// sums and products that exceed the int64 range wrap silently; callers that
// need checked arithmetic must bound their inputs.
//
// Matrices are best when the non-zero count is small relative to rows×cols;
// a fully populated Matrix costs more than a flat dense buffer.
//
// See the examples in this package for usage patterns.
package sparse

// Package sparsem bundles sparse integer matrices with a small toolchain
// around them: the coordinate-form entity and its arithmetic, the
// rows=/cols=/(r, c, v) text codec, console and plot rendering, and a
// non-interactive CLI.
//
// 🚀 What is sparsem?
//
//	A compact library + CLI that brings together:
//		• Coordinate-form storage: only non-zero cells are kept
//		• Arithmetic: add, subtract, multiply — fresh results, untouched operands
//		• A strict line-oriented text codec with a round-trip guarantee
//		• Bridges to gonum dense matrices for float math
//		• Console tables and sparsity-pattern plots
//
// Everything is organized under three packages plus the CLI:
//
//	sparse/  — Matrix entity, Add/Sub/Mul, text codec, gonum bridges
//	render/  — dense console tables, triplet listings, spy plots
//	internal/cli/ — cobra command tree and koanf configuration
//	cmd/sparsem/  — the executable
//
// Quick ASCII example of the on-disk format:
//
//	rows=3
//	cols=3
//	(0, 1, 5)
//	(2, 2, -7)
//
// represents a 3×3 matrix with two non-zero cells.
//
//	go get github.com/katalvlaran/sparsem/sparse
package sparsem

// Package render presents sparse matrices for humans: dense console tables
// for small matrices, triplet listings for large ones, and sparsity-pattern
// ("spy") plots saved as image files.
//
// The package never mutates its inputs and is safe to call with matrices of
// any shape; only Table enforces a size guard, since a dense rendering of a
// large sparse matrix defeats the point of the representation.
package render

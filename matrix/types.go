// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface consumed by the solvers.
// Errors live in errors.go; the dense row-major implementation in dense.go.
package matrix

// Matrix is a bounds-checked rows×cols grid of float64 weights.
//
// Every method is O(1).
type Matrix interface {
	// Rows is the row count.
	Rows() int

	// Cols is the column count.
	Cols() int

	// At reads entry (i, j); indices outside the shape yield ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes v at (i, j); indices outside the shape yield ErrOutOfRange.
	Set(i, j int, v float64) error
}

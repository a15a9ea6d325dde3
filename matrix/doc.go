// Package matrix provides the dense float64 storage and validators used to
// hold TSP distance matrices.
//
// The package provides:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set).
//   - Dense, a row-major implementation with O(1) access.
//   - Validators for shape, finiteness, non-negativity and symmetry.
//
// All errors are package sentinels (see errors.go) matched with errors.Is.
package matrix

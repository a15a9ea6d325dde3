// Package tsp - the read-only distance oracle shared by every solver.
//
// Distances validates a matrix once (square, finite, non-negative,
// symmetric) and prefetches it into a flat row-major buffer so hot loops
// read w[i*n+j] without interface dispatch or error returns.
//
// Concurrency: a *Distances is immutable after construction and may be
// shared freely across goroutines.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tspsolve/matrix"
)

// Distances is a validated, immutable n×n symmetric weight matrix.
type Distances struct {
	n int
	w []float64 // w[i*n+j] == weight(i, j)
}

// NewDistances validates m and copies it into a Distances.
//
// Contracts:
//   - m is non-nil, square, n ≥ 1.
//   - every entry is finite and ≥ 0 (the diagonal included, even though
//     solvers never read it).
//   - |m(i,j) - m(j,i)| ≤ SymmetryTolerance.
//
// Errors: ErrNonSquare, ErrNonFiniteWeight, ErrNegativeWeight, ErrAsymmetry,
// each joined with the underlying matrix sentinel.
//
// Complexity: O(n²) time and memory.
func NewDistances(m matrix.Matrix) (*Distances, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}
	if err := matrix.ValidateFiniteNonNegative(m); err != nil {
		if errors.Is(err, matrix.ErrNegative) {
			return nil, fmt.Errorf("%w: %w", ErrNegativeWeight, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNonFiniteWeight, err)
	}
	if err := matrix.ValidateSymmetric(m, SymmetryTolerance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAsymmetry, err)
	}

	var (
		n    = m.Rows()
		w    []float64
		i, j int
	)
	if d, ok := m.(*matrix.Dense); ok {
		w = d.RowMajor()
	} else {
		w = make([]float64, n*n)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				w[i*n+j], _ = m.At(i, j) // shape validated above
			}
		}
	}

	return &Distances{n: n, w: w}, nil
}

// FromRows builds Distances from a [][]float64. Ragged rows yield ErrNonSquare.
func FromRows(rows [][]float64) (*Distances, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}

	return NewDistances(m)
}

// N returns the number of vertices.
func (d *Distances) N() int { return d.n }

// Weight returns w(i, j) or ErrIndexOutOfRange.
// Complexity: O(1).
func (d *Distances) Weight(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Weight(%d,%d) with n=%d: %w", i, j, d.n, ErrIndexOutOfRange)
	}

	return d.w[i*d.n+j], nil
}

// Matrix returns an independent dense copy of the weights.
func (d *Distances) Matrix() *matrix.Dense {
	m, _ := matrix.NewDense(d.n, d.n) // n ≥ 1 by construction
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			_ = m.Set(i, j, d.w[i*d.n+j])
		}
	}

	return m
}

// at is the unchecked hot-path accessor.
func (d *Distances) at(i, j int) float64 { return d.w[i*d.n+j] }

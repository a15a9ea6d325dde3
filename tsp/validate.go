// Package tsp - option validation shared by the solvers.
//
// Deterministic, side-effect free checks; only sentinel errors from types.go
// (wrapped with the offending value).
package tsp

import (
	"fmt"
	"math"
)

// validateOptions checks the knobs read by the heuristic engines.
// TimeLimit has no invalid values (negative means no limit).
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if math.IsNaN(opts.Alpha) || opts.Alpha < 0 || opts.Alpha > 1 {
		return fmt.Errorf("alpha=%v: %w", opts.Alpha, ErrInvalidAlpha)
	}
	if opts.MaxIterations < 0 {
		return fmt.Errorf("max iterations=%d: %w", opts.MaxIterations, ErrInvalidOptions)
	}
	if math.IsNaN(opts.Eps) || opts.Eps < 0 {
		return fmt.Errorf("eps=%v: %w", opts.Eps, ErrInvalidOptions)
	}

	return nil
}

// validateAlgorithm rejects Algorithm values outside the declared set.
func validateAlgorithm(a Algorithm) error {
	if a < 0 || int(a) >= len(algoNames) {
		return fmt.Errorf("%v: %w", a, ErrUnsupportedAlgorithm)
	}

	return nil
}

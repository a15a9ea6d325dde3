// Package tsp - cost utilities shared by exact/heuristic solvers.
//
// Design:
//   - TourCost validates the tour, then sums the cycle in O(n).
//   - Stable summation: reported costs are rounded to 1e-9 so that
//     incremental bookkeeping (2-opt deltas) and a fresh recomputation
//     agree across platforms.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the total weight of tour read as a cycle, including the
// wrap edge from the last vertex back to the first. A single-vertex tour
// costs 0 (the diagonal is never read).
//
// Errors: ErrIndexOutOfRange or ErrInvalidTour from ValidateTour.
//
// Complexity: O(n).
func (d *Distances) TourCost(tour []int) (float64, error) {
	if err := ValidateTour(tour, d.n); err != nil {
		return 0, err
	}

	return round1e9(d.cycleCost(tour)), nil
}

// cycleCost sums a valid tour without validation or rounding.
func (d *Distances) cycleCost(tour []int) float64 {
	var (
		n   = len(tour)
		sum float64
		i   int
	)
	if n < 2 {
		return 0
	}
	for i = 0; i < n-1; i++ {
		sum += d.at(tour[i], tour[i+1])
	}

	return sum + d.at(tour[n-1], tour[0])
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

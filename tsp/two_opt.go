// Package tsp - 2-opt local search engine.
//
// TwoOpt performs deterministic first-improvement 2-opt on a tour read as a
// cycle. For cut positions 1 ≤ i < j ≤ n−1 with a=T[i−1], b=T[i], c=T[j],
// d=T[(j+1) mod n]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// A move with Δ < −Eps reverses T[i..j] in place, adds Δ to the running cost
// and restarts the scan from the top. The pair whose removed edges share a
// vertex on both sides (d == a, i.e. i=1, j=n−1) is skipped.
//
// Design:
//   - Incremental cost: O(1) per candidate instead of an O(n) recompute.
//   - Restart-from-top after every accepted move. Resuming the scan or
//     don't-look bits would be faster but change which local optimum is
//     reached, so the plain order is kept.
//   - No iteration cap: callers bound the run through ctx, which is checked
//     before every scan.
//   - T[0] never moves, so the returned tour keeps the input's first vertex.
//
// Complexity:
//   - One pass: O(n²) candidate checks; O(n) per accepted move.
//   - Number of passes is small in practice but unbounded in theory.
package tsp

import (
	"context"
	"fmt"
	"math"
)

// TwoOpt improves tour to a 2-opt local optimum and returns the result
// (the input slice is not modified). The reported cost equals TourCost of
// the returned tour up to the 1e-9 rounding.
//
// Errors: ErrNilDistances, ErrInvalidOptions (negative or NaN Eps), tour
// validation sentinels, or ctx.Err() when the context ends mid-search (the
// partial work is discarded).
func TwoOpt(ctx context.Context, d *Distances, tour []int, opts Options) (Result, error) {
	if d == nil {
		return Result{}, ErrNilDistances
	}
	if math.IsNaN(opts.Eps) || opts.Eps < 0 {
		return Result{}, fmt.Errorf("eps=%v: %w", opts.Eps, ErrInvalidOptions)
	}
	if err := ValidateTour(tour, d.n); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cur := CopyTour(tour)
	cost, moves, err := d.twoOptInPlace(ctx, cur, opts.Eps)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: cur, Cost: round1e9(cost), Status: StatusHeuristic, Moves: moves}, nil
}

// twoOptInPlace runs first-improvement 2-opt on a validated tour and returns
// the final raw cost and the number of accepted moves.
func (d *Distances) twoOptInPlace(ctx context.Context, cur []int, eps float64) (float64, int, error) {
	var (
		cost  = d.cycleCost(cur)
		moves int
	)

	for {
		if err := ctx.Err(); err != nil {
			return 0, moves, err
		}
		if !d.firstImprovement(cur, &cost, eps) {
			return cost, moves, nil // local optimum
		}
		moves++
	}
}

// firstImprovement scans (i, j) pairs in order and applies the first
// improving move. It reports whether a move was applied.
func (d *Distances) firstImprovement(cur []int, cost *float64, eps float64) bool {
	var (
		n          = len(cur)
		i, j, next int
		a, b, c, e int
		delta      float64
	)
	for i = 1; i <= n-2; i++ {
		a = cur[i-1]
		b = cur[i]
		for j = i + 1; j <= n-1; j++ {
			next = (j + 1) % n
			if next == i-1 {
				continue // both removed edges touch T[i-1]
			}
			c = cur[j]
			e = cur[next]

			delta = d.at(a, c) + d.at(b, e) - d.at(a, b) - d.at(c, e)
			if delta < -eps {
				reverseSegment(cur, i, j)
				*cost += delta

				return true
			}
		}
	}

	return false
}

// Package tsp - GRASP (Greedy Randomized Adaptive Search Procedure).
//
// Each iteration builds a tour with RandomizedNearestNeighbor and improves it
// with first-improvement 2-opt; the best tour over all completed iterations
// wins. The loop stops after opts.MaxIterations or when the budget
// (opts.TimeLimit combined with ctx) is exhausted.
//
// Determinism: a single *rand.Rand seeded from opts.Seed drives every
// iteration, so equal seeds on equal inputs yield equal results as long as
// the budget does not cut the loop.
package tsp

import (
	"context"
	"fmt"
	"time"
)

// GRASP runs the randomized multi-start heuristic.
//
// An iteration interrupted by the deadline is discarded. When no iteration
// completed the result is {Status: StatusNoSolution} together with
// ErrNoSolution, joined with the context error if the budget was the cause. Otherwise the best tour is rotated to begin at vertex 0 and
// tagged StatusTimeLimit if the budget cut the loop, StatusHeuristic if all
// iterations ran.
//
// Errors: ErrNilDistances, ErrInvalidAlpha, ErrInvalidOptions, ErrNoSolution.
func GRASP(ctx context.Context, d *Distances, opts Options) (Result, error) {
	if d == nil {
		return Result{}, ErrNilDistances
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	began := time.Now()
	ctx, cancel := withBudget(ctx, opts.TimeLimit)
	defer cancel()

	var (
		rng       = rngFromSeed(opts.Seed)
		bestTour  []int
		bestCost  float64
		moves     int
		completed int
		cut       bool
		it        int
	)
	for it = 0; it < opts.MaxIterations; it++ {
		if ctx.Err() != nil {
			cut = true
			break
		}

		built, err := RandomizedNearestNeighbor(d, opts.Alpha, rng)
		if err != nil {
			return Result{}, err
		}
		cost, m, err := d.twoOptInPlace(ctx, built.Tour, opts.Eps)
		if err != nil {
			cut = true
			break
		}
		completed++

		if bestTour == nil || cost < bestCost {
			bestTour, bestCost, moves = built.Tour, cost, m
			if opts.Logger != nil {
				opts.Logger.Debug("grasp: new best tour", "iteration", it+1, "cost", round1e9(cost))
			}
		}
	}

	elapsed := time.Since(began)
	if completed == 0 {
		if opts.Logger != nil {
			opts.Logger.Warn("grasp: no iteration completed", "elapsed", elapsed.Round(time.Millisecond))
		}
		if cut {
			return Result{Status: StatusNoSolution, Elapsed: elapsed}, fmt.Errorf("%w: %w", ErrNoSolution, ctx.Err())
		}
		return Result{Status: StatusNoSolution, Elapsed: elapsed}, ErrNoSolution
	}

	tour, err := RotateToStart(bestTour, 0)
	if err != nil {
		panic("tsp: grasp: best tour lost vertex 0")
	}
	res := Result{
		Tour:       tour,
		Cost:       round1e9(bestCost),
		Status:     StatusHeuristic,
		Moves:      moves,
		Iterations: completed,
		Elapsed:    elapsed,
	}
	if cut {
		res.Status = StatusTimeLimit
		if opts.Logger != nil {
			opts.Logger.Info("grasp: time budget exhausted",
				"iterations", completed, "cost", res.Cost, "elapsed", elapsed.Round(time.Millisecond))
		}
	}

	return res, nil
}

// Package tsp - unified dispatcher for the TSP solvers.
//
// Solve routes a validated *Distances to the engine selected by opts.Algo and
// stamps the wall time into Result.Elapsed. It owns no algorithmic logic of
// its own apart from the local-search pipeline (nearest neighbor + 2-opt).
package tsp

import (
	"context"
	"time"
)

// Solve runs the algorithm selected by opts.Algo.
//
// Contracts:
//   - d must be non-nil.
//   - opts is validated first (alpha range, iteration count, eps).
//   - Budget-bounded engines (AlgoExact, AlgoGRASP) honor opts.TimeLimit and
//     ctx; the others honor ctx only where they run long enough to check it.
//
// Every returned tour starts at vertex 0 and is oriented so that
// Tour[1] < Tour[n-1]; mirror-image optima therefore report the same tour.
//
// Errors: ErrNilDistances, ErrUnsupportedAlgorithm, option sentinels, and
// whatever the selected engine returns (ErrNoSolution, ErrTooLarge, ctx.Err()).
//
// Complexity: per algorithm.
//   - AlgoExact:        O(n!) worst case.
//   - AlgoConstructive: O(n²).
//   - AlgoLocalSearch:  O(n²) construction + O(passes·n²).
//   - AlgoGRASP:        O(iterations·(n² + passes·n²)).
//   - AlgoHeldKarp:     O(n²·2ⁿ).
func Solve(ctx context.Context, d *Distances, opts Options) (Result, error) {
	if d == nil {
		return Result{}, ErrNilDistances
	}
	if err := validateAlgorithm(opts.Algo); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	began := time.Now()
	var (
		res Result
		err error
	)
	switch opts.Algo {
	case AlgoExact:
		res, err = BranchAndBound(ctx, d, opts)
	case AlgoConstructive:
		res, err = NearestNeighbor(d)
	case AlgoLocalSearch:
		res, err = localSearch(ctx, d, opts)
	case AlgoGRASP:
		res, err = GRASP(ctx, d, opts)
	case AlgoHeldKarp:
		res, err = HeldKarp(d)
	}
	res.Elapsed = time.Since(began)
	if err != nil {
		return res, err
	}
	CanonicalizeOrientationInPlace(res.Tour)

	if opts.Logger != nil {
		opts.Logger.Debug("solve finished",
			"algo", opts.Algo, "n", d.n, "cost", res.Cost, "status", res.Status,
			"elapsed", res.Elapsed.Round(time.Microsecond))
	}

	return res, nil
}

// localSearch improves the nearest-neighbor tour from vertex 0 with 2-opt.
func localSearch(ctx context.Context, d *Distances, opts Options) (Result, error) {
	seed, err := NearestNeighbor(d)
	if err != nil {
		return Result{}, err
	}

	return TwoOpt(ctx, d, seed.Tour, opts)
}

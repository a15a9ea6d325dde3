package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/tsp"
)

func TestSolve_AllAlgorithmsOnTrap(t *testing.T) {
	d := mustDistances(t, trapRows())
	want := map[tsp.Algorithm]float64{
		tsp.AlgoExact:        5,
		tsp.AlgoConstructive: 13,
		tsp.AlgoLocalSearch:  5,
		tsp.AlgoGRASP:        5,
		tsp.AlgoHeldKarp:     5,
	}
	for _, algo := range tsp.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			opts := tsp.DefaultOptions()
			opts.Algo = algo
			opts.TimeLimit = tsp.NoTimeLimit

			res, err := tsp.Solve(context.Background(), d, opts)
			require.NoError(t, err)
			requireValidResult(t, d, res)
			assert.Equal(t, want[algo], res.Cost)
			assert.Equal(t, res.Status == tsp.StatusOptimal, res.Optimal)
		})
	}
}

func TestSolve_LocalSearchStartsFromNearestNeighbor(t *testing.T) {
	d := mustDistances(t, randomRows(40, seedDet))
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AlgoLocalSearch

	ls, err := tsp.Solve(context.Background(), d, opts)
	require.NoError(t, err)
	nn, err := tsp.NearestNeighbor(d)
	require.NoError(t, err)
	assert.LessOrEqual(t, ls.Cost, nn.Cost)
	assert.Equal(t, startV, ls.Tour[0])
}

func TestSolve_CanonicalOrientation(t *testing.T) {
	trap := mustDistances(t, trapRows())
	for seed := int64(1); seed <= 10; seed++ {
		opts := tsp.DefaultGRASPOptions()
		opts.TimeLimit = tsp.NoTimeLimit
		opts.Seed = seed

		res, err := tsp.Solve(context.Background(), trap, opts)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 3, 2}, res.Tour, "seed %d", seed)
	}

	d := mustDistances(t, randomRows(9, seedDet))
	for _, algo := range tsp.Algorithms() {
		opts := tsp.DefaultOptions()
		opts.Algo = algo
		opts.TimeLimit = tsp.NoTimeLimit

		res, err := tsp.Solve(context.Background(), d, opts)
		require.NoError(t, err)
		requireValidResult(t, d, res)
		assert.Equal(t, startV, res.Tour[0], algo.String())
		assert.Less(t, res.Tour[1], res.Tour[len(res.Tour)-1], algo.String())
	}
}

func TestSolve_Errors(t *testing.T) {
	d := mustDistances(t, triangleRows())
	ctx := context.Background()

	_, err := tsp.Solve(ctx, nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNilDistances)

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algorithm(99)
	_, err = tsp.Solve(ctx, d, opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	opts = tsp.DefaultOptions()
	opts.Alpha = -1
	_, err = tsp.Solve(ctx, d, opts)
	require.ErrorIs(t, err, tsp.ErrInvalidAlpha)

	opts = tsp.DefaultOptions()
	opts.Algo = tsp.AlgoHeldKarp
	_, err = tsp.Solve(ctx, mustDistances(t, ringRows(20)), opts)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]tsp.Algorithm{
		"exact":        tsp.AlgoExact,
		"BB":           tsp.AlgoExact,
		"nn":           tsp.AlgoConstructive,
		"constructive": tsp.AlgoConstructive,
		"local-search": tsp.AlgoLocalSearch,
		"2opt":         tsp.AlgoLocalSearch,
		" grasp ":      tsp.AlgoGRASP,
		"held_karp":    tsp.AlgoHeldKarp,
		"hk":           tsp.AlgoHeldKarp,
	}
	for in, want := range tests {
		got, err := tsp.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := tsp.ParseAlgorithm("christofides")
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	for _, algo := range tsp.Algorithms() {
		back, err := tsp.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, back)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "optimal", tsp.StatusOptimal.String())
	assert.Equal(t, "time_limit", tsp.StatusTimeLimit.String())
	assert.Equal(t, "heuristic", tsp.StatusHeuristic.String())
	assert.Equal(t, "no_solution", tsp.StatusNoSolution.String())
	assert.Equal(t, "status(9)", tsp.Status(9).String())
}

func TestDefaultOptions(t *testing.T) {
	opts := tsp.DefaultOptions()
	assert.Equal(t, tsp.AlgoExact, opts.Algo)
	assert.Equal(t, tsp.DefaultExactTimeLimit, opts.TimeLimit)
	assert.Equal(t, 20, opts.MaxIterations)
	assert.Equal(t, 0.3, opts.Alpha)
	assert.Equal(t, 1e-9, opts.Eps)

	g := tsp.DefaultGRASPOptions()
	assert.Equal(t, tsp.AlgoGRASP, g.Algo)
	assert.Equal(t, tsp.DefaultGRASPTimeLimit, g.TimeLimit)
}

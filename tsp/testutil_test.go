// Package tsp_test holds the shared fixtures for the tsp tests: small named
// instances, seeded random instances and a couple of assertion helpers.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/tsp"
)

const (
	// seedDet is the fixed seed for every randomized fixture.
	seedDet = int64(42)

	// startV is the canonical start vertex.
	startV = 0
)

// trapRows is the 4-vertex instance where greedy walks into the heavy 3-0
// edge: nearest neighbor pays 13, the optimum [0,2,3,1] pays 5.
func trapRows() [][]float64 {
	return [][]float64{
		{0, 1, 1.5, 10},
		{1, 0, 1, 1.5},
		{1.5, 1, 0, 1},
		{10, 1.5, 1, 0},
	}
}

// triangleRows is a 3-cycle; every tour costs 6.
func triangleRows() [][]float64 {
	return [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}
}

// ringRows places n vertices on a ring with dist(i,j) = min(|i-j|, n-|i-j|).
// The optimum is the ring itself, cost n.
func ringRows(n int) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d := math.Abs(float64(i - j))
			rows[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return rows
}

// randomRows returns a symmetric n×n matrix with weights in [1, 101).
// Ties are practically impossible, which keeps greedy choices unique.
func randomRows(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w := 1 + 100*rng.Float64()
			rows[i][j], rows[j][i] = w, w
		}
	}

	return rows
}

// euclidRows builds Euclidean distances for points on a slightly rippled
// circle, which gives a metric instance without ties.
func euclidRows(n int) [][]float64 {
	var (
		xs   = make([]float64, n)
		ys   = make([]float64, n)
		rows = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1 + 0.03*float64((i*5)%7)
		xs[i], ys[i] = r*math.Cos(th), r*math.Sin(th)
	}
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
		}
	}

	return rows
}

// mustDistances builds a *tsp.Distances or fails the test.
func mustDistances(t testing.TB, rows [][]float64) *tsp.Distances {
	t.Helper()
	d, err := tsp.FromRows(rows)
	require.NoError(t, err)

	return d
}

// requireValidResult checks the permutation invariant and that the reported
// cost matches an independent recomputation.
func requireValidResult(t testing.TB, d *tsp.Distances, res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, d.N()))
	cost, err := d.TourCost(res.Tour)
	require.NoError(t, err)
	require.InDelta(t, cost, res.Cost, 1e-7)
}

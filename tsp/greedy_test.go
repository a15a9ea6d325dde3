package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/tsp"
)

// uniformRows returns an n×n matrix with every off-diagonal weight equal to w.
func uniformRows(n int, w float64) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = w
			}
		}
	}

	return rows
}

func TestNearestNeighbor_Trap(t *testing.T) {
	d := mustDistances(t, trapRows())
	res, err := tsp.NearestNeighbor(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Tour)
	assert.Equal(t, 13.0, res.Cost)
	assert.Equal(t, tsp.StatusHeuristic, res.Status)
	assert.False(t, res.Optimal)
}

func TestNearestNeighbor_TiesGoToLowestIndex(t *testing.T) {
	d := mustDistances(t, uniformRows(5, 2))

	res, err := tsp.NearestNeighbor(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Tour)
	assert.Equal(t, 10.0, res.Cost)

	res, err = tsp.NearestNeighborFrom(d, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1, 2, 4}, res.Tour)
}

func TestNearestNeighbor_Small(t *testing.T) {
	res, err := tsp.NearestNeighbor(mustDistances(t, [][]float64{{0}}))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Tour)
	assert.Zero(t, res.Cost)

	res, err = tsp.NearestNeighbor(mustDistances(t, [][]float64{{0, 4}, {4, 0}}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Tour)
	assert.Equal(t, 8.0, res.Cost)
}

func TestNearestNeighbor_Errors(t *testing.T) {
	_, err := tsp.NearestNeighbor(nil)
	require.ErrorIs(t, err, tsp.ErrNilDistances)

	d := mustDistances(t, triangleRows())
	_, err = tsp.NearestNeighborFrom(d, 3)
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
	_, err = tsp.NearestNeighborFrom(d, -1)
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
}

func TestRandomizedNearestNeighbor_AlphaZeroIsGreedy(t *testing.T) {
	d := mustDistances(t, randomRows(15, seedDet))

	var seed int64
	for seed = 1; seed <= 10; seed++ {
		start := rand.New(rand.NewSource(seed)).Intn(d.N())
		want, err := tsp.NearestNeighborFrom(d, start)
		require.NoError(t, err)

		got, err := tsp.RandomizedNearestNeighbor(d, 0, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, want.Tour, got.Tour, "seed %d", seed)
		assert.InDelta(t, want.Cost, got.Cost, 1e-9)
	}
}

func TestRandomizedNearestNeighbor_AllEqualAdmitsEveryCandidate(t *testing.T) {
	d := mustDistances(t, uniformRows(6, 1))
	rng := rand.New(rand.NewSource(seedDet))

	// With a degenerate RCL the pick is uniform over every unvisited
	// vertex, so many distinct tours show up even at alpha 0.
	seen := make(map[[6]int]struct{})
	var k int
	for k = 0; k < 200; k++ {
		res, err := tsp.RandomizedNearestNeighbor(d, 0, rng)
		require.NoError(t, err)
		requireValidResult(t, d, res)
		assert.Equal(t, 6.0, res.Cost)

		var key [6]int
		copy(key[:], res.Tour)
		seen[key] = struct{}{}
	}
	assert.Greater(t, len(seen), 50)
}

func TestRandomizedNearestNeighbor_AlphaOne(t *testing.T) {
	d := mustDistances(t, randomRows(20, seedDet))
	rng := rand.New(rand.NewSource(seedDet))
	var k int
	for k = 0; k < 20; k++ {
		res, err := tsp.RandomizedNearestNeighbor(d, 1, rng)
		require.NoError(t, err)
		requireValidResult(t, d, res)
	}
}

func TestRandomizedNearestNeighbor_Deterministic(t *testing.T) {
	d := mustDistances(t, randomRows(20, seedDet))
	a, err := tsp.RandomizedNearestNeighbor(d, 0.5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := tsp.RandomizedNearestNeighbor(d, 0.5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := tsp.RandomizedNearestNeighbor(d, 0.5, nil)
	require.NoError(t, err)
	requireValidResult(t, d, c)
}

func TestRandomizedNearestNeighbor_InvalidAlpha(t *testing.T) {
	d := mustDistances(t, triangleRows())
	for _, alpha := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := tsp.RandomizedNearestNeighbor(d, alpha, nil)
		require.ErrorIs(t, err, tsp.ErrInvalidAlpha, "alpha=%v", alpha)
	}
	_, err := tsp.RandomizedNearestNeighbor(nil, 0.3, nil)
	require.ErrorIs(t, err, tsp.ErrNilDistances)
}

package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/matrix"
	"github.com/katalvlaran/tspsolve/tsp"
)

func TestNewDistances_Valid(t *testing.T) {
	m, err := matrix.NewDenseFromRows(trapRows())
	require.NoError(t, err)

	d, err := tsp.NewDistances(m)
	require.NoError(t, err)
	assert.Equal(t, 4, d.N())

	w, err := d.Weight(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)

	// Later edits to the source matrix do not leak into the oracle.
	require.NoError(t, m.Set(0, 3, 99))
	w, _ = d.Weight(0, 3)
	assert.Equal(t, 10.0, w)
}

func TestNewDistances_Rejects(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"ragged", [][]float64{{0, 1}, {1}}, tsp.ErrNonSquare},
		{"non-square", [][]float64{{0, 1, 2}, {1, 0, 3}}, tsp.ErrNonSquare},
		{"empty", [][]float64{}, tsp.ErrNonSquare},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, tsp.ErrNonFiniteWeight},
		{"inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, tsp.ErrNonFiniteWeight},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, tsp.ErrNegativeWeight},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, tsp.ErrAsymmetry},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewDistances_MatrixSentinelPreserved(t *testing.T) {
	_, err := tsp.FromRows([][]float64{{0, -1}, {-1, 0}})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
	require.ErrorIs(t, err, matrix.ErrNegative)

	_, err = tsp.NewDistances(nil)
	require.ErrorIs(t, err, tsp.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNewDistances_SymmetryTolerance(t *testing.T) {
	_, err := tsp.FromRows([][]float64{{0, 1}, {1 + 1e-12, 0}})
	require.NoError(t, err)
}

func TestDistances_WeightOutOfRange(t *testing.T) {
	d := mustDistances(t, triangleRows())
	for _, p := range [][2]int{{-1, 0}, {0, 3}, {3, 3}} {
		_, err := d.Weight(p[0], p[1])
		require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
	}
}

func TestDistances_MatrixRoundTrip(t *testing.T) {
	d := mustDistances(t, trapRows())
	m := d.Matrix()
	require.Equal(t, 4, m.Rows())

	again, err := tsp.NewDistances(m)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			a, _ := d.Weight(i, j)
			b, _ := again.Weight(i, j)
			require.Equal(t, a, b)
		}
	}
}

func TestTourCost(t *testing.T) {
	d := mustDistances(t, trapRows())

	cost, err := d.TourCost([]int{0, 2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, cost)

	cost, err = d.TourCost([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 13.0, cost)

	single := mustDistances(t, [][]float64{{0}})
	cost, err = single.TourCost([]int{0})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = d.TourCost([]int{0, 1, 1, 3})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = d.TourCost([]int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = d.TourCost([]int{0, 1, 2, 4})
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
}

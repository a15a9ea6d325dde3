package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/tsp"
)

func TestMSTCost(t *testing.T) {
	d := mustDistances(t, triangleRows())

	tests := []struct {
		name   string
		subset []int
		want   float64
	}{
		{"single vertex", []int{2}, 0},
		{"edge", []int{0, 2}, 3},
		{"all", []int{0, 1, 2}, 3},
		{"order independent", []int{2, 0, 1}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tsp.MSTCost(d, tc.subset)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMSTCost_Ring(t *testing.T) {
	// Any spanning path along the ring has n-1 unit edges.
	d := mustDistances(t, ringRows(9))
	got, err := tsp.MSTCost(d, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)
}

func TestMSTCost_LowerBoundsTour(t *testing.T) {
	d := mustDistances(t, randomRows(12, seedDet))
	all := make([]int, d.N())
	var i int
	for i = range all {
		all[i] = i
	}
	mst, err := tsp.MSTCost(d, all)
	require.NoError(t, err)

	opt, err := tsp.HeldKarp(d)
	require.NoError(t, err)
	assert.LessOrEqual(t, mst, opt.Cost)
}

func TestMSTCost_Errors(t *testing.T) {
	d := mustDistances(t, triangleRows())

	_, err := tsp.MSTCost(d, nil)
	require.ErrorIs(t, err, tsp.ErrEmptySubset)
	_, err = tsp.MSTCost(d, []int{0, 3})
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
	_, err = tsp.MSTCost(d, []int{1, 1})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.MSTCost(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrNilDistances)
}

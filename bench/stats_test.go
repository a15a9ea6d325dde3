package bench_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/bench"
)

func TestSummarize(t *testing.T) {
	sums := bench.Summarize(sampleRecords())
	require.Len(t, sums, 2)

	exact := sums[0]
	assert.Equal(t, "exact", exact.Algorithm)
	assert.Equal(t, 3, exact.Runs)
	assert.Equal(t, 1, exact.Successes)
	assert.Equal(t, 1, exact.Timeouts)
	assert.Equal(t, 1, exact.Failures)
	assert.InDelta(t, 15.5, exact.MeanCost, 1e-9)
	assert.InDelta(t, math.Sqrt(60.5), exact.StdCost, 1e-9)
	assert.Equal(t, 1, exact.Wins)
	assert.InDelta(t, 2.5, exact.MeanGapPct, 1e-9) // (0% + 5%) / 2

	nn := sums[1]
	assert.Equal(t, "constructive", nn.Algorithm)
	assert.Equal(t, 1, nn.Wins)
	assert.InDelta(t, 12.5, nn.MeanGapPct, 1e-9) // (25% + 0%) / 2
}

func TestSummarize_SingleAndEmpty(t *testing.T) {
	sums := bench.Summarize(sampleRecords()[4:])
	require.Len(t, sums, 1)
	assert.True(t, math.IsNaN(sums[0].MeanCost))
	assert.Zero(t, sums[0].StdTime)

	assert.Empty(t, bench.Summarize(nil))
}

func TestBestCosts(t *testing.T) {
	best := bench.BestCosts(sampleRecords())
	assert.Equal(t, map[string]float64{"a.in": 10, "b.in": 20}, best)
}

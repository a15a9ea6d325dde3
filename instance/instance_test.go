package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolve/instance"
	"github.com/katalvlaran/tspsolve/tsp"
)

const trapText = `4
0 1 1.5 10
1 0 1 1.5
1.5 1 0 1
10 1.5 1 0
`

func TestParse(t *testing.T) {
	d, err := instance.Parse(strings.NewReader(trapText))
	require.NoError(t, err)
	require.Equal(t, 4, d.N())

	w, err := d.Weight(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)

	// Trailing blank lines and extra spacing are tolerated.
	d, err = instance.Parse(strings.NewReader("2\n  0\t3 \n3 0\n\n\n"))
	require.NoError(t, err)
	w, _ = d.Weight(0, 1)
	assert.Equal(t, 3.0, w)
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"bad count":     "four\n",
		"zero count":    "0\n",
		"missing rows":  "3\n0 1 2\n1 0 3\n",
		"short row":     "2\n0 1\n1\n",
		"long row":      "2\n0 1 2\n1 0\n",
		"not a number":  "2\n0 x\n1 0\n",
		"trailing data": "2\n0 1\n1 0\n7\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := instance.Parse(strings.NewReader(text))
			require.ErrorIs(t, err, instance.ErrParse)
		})
	}
}

func TestParse_LineNumberInError(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("2\n0 1\n1 zero\n"))
	require.ErrorIs(t, err, instance.ErrParse)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_ValidationErrorsPassThrough(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("2\n0 1\n2 0\n"))
	require.ErrorIs(t, err, tsp.ErrAsymmetry)

	_, err = instance.Parse(strings.NewReader("2\n0 -1\n-1 0\n"))
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}

func TestWrite_RoundTrip(t *testing.T) {
	d, err := instance.Parse(strings.NewReader(trapText))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, d, 2))
	assert.True(t, strings.HasPrefix(buf.String(), "4\n0.00 1.00 1.50 10.00\n"))

	again, err := instance.Parse(&buf)
	require.NoError(t, err)
	cost, err := again.TourCost([]int{0, 2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, cost)

	require.ErrorIs(t, instance.Write(&buf, nil, 2), tsp.ErrNilDistances)
}

func TestWriteSolution(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, instance.WriteSolution(&buf, []int{0, 2, 3, 1}, 5))
	assert.Equal(t, "1 3 4 2\n5\n", buf.String())

	buf.Reset()
	require.NoError(t, instance.WriteSolution(&buf, []int{1, 0}, 12.25))
	assert.Equal(t, "2 1\n12.25\n", buf.String())

	require.ErrorIs(t, instance.WriteSolution(&buf, nil, 0), instance.ErrNoTour)
}

func TestSolutionPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "tsp10_exact.out"), instance.SolutionPath(filepath.Join("data", "tsp10.in"), "exact"))
	assert.Equal(t, "plain_grasp.out", instance.SolutionPath("plain", "grasp"))
}

func TestLoadAndSaveSolution(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "trap.in")
	require.NoError(t, os.WriteFile(in, []byte(trapText), 0o644))

	d, err := instance.Load(in)
	require.NoError(t, err)
	require.Equal(t, 4, d.N())

	path, err := instance.SaveSolution(in, "exact", tsp.Result{Tour: []int{0, 1, 3, 2}, Cost: 5})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "trap_exact.out"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 2 4 3\n5\n", string(got))

	_, err = instance.SaveSolution(in, "grasp", tsp.Result{Status: tsp.StatusNoSolution})
	require.ErrorIs(t, err, instance.ErrNoTour)

	_, err = instance.Load(filepath.Join(dir, "missing.in"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

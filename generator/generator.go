// Package generator builds synthetic TSP instances: uniform random points,
// the two-ring "double circle" layout, and the 4-vertex greedy trap.
//
// Geometric instances use Euclidean distances rounded to two decimals, the
// precision the instance files are written with, so an instance survives a
// write/parse round trip unchanged.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tspsolve/tsp"
)

// ErrBadParameter signals a non-positive size or count.
var ErrBadParameter = errors.New("generator: bad parameter")

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Euclidean builds the symmetric distance matrix of points, each entry
// rounded to two decimals.
//
// Complexity: O(n²).
func Euclidean(points []Point) (*tsp.Distances, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("no points: %w", ErrBadParameter)
	}
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w := math.Round(math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)*100) / 100
			rows[i][j], rows[j][i] = w, w
		}
	}

	return tsp.FromRows(rows)
}

// RandomPoints draws n points uniformly from [0, size)².
// A nil rng uses a fixed seed.
func RandomPoints(n int, size float64, rng *rand.Rand) []Point {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: size * rng.Float64(), Y: size * rng.Float64()}
	}

	return pts
}

// RandomUniform is Euclidean(RandomPoints(n, size, rng)).
func RandomUniform(n int, size float64, rng *rand.Rand) (*tsp.Distances, error) {
	if n <= 0 || !(size > 0) {
		return nil, fmt.Errorf("n=%d size=%v: %w", n, size, ErrBadParameter)
	}

	return Euclidean(RandomPoints(n, size, rng))
}

// DoubleCirclePoints places k points evenly on a circle of radius r1 and k
// more at the same angles on a circle of radius r2, all centred at the origin.
// Vertices 0..k-1 are the inner ring.
func DoubleCirclePoints(k int, r1, r2 float64) []Point {
	pts := make([]Point, 0, 2*k)
	var i int
	for _, r := range []float64{r1, r2} {
		for i = 0; i < k; i++ {
			th := 2 * math.Pi * float64(i) / float64(k)
			pts = append(pts, Point{X: r * math.Cos(th), Y: r * math.Sin(th)})
		}
	}

	return pts
}

// DoubleCircle builds the two-ring instance, on which nearest neighbor
// finishes the inner ring before it ever steps outward.
func DoubleCircle(k int, r1, r2 float64) (*tsp.Distances, error) {
	if k <= 0 || !(r1 > 0) || !(r2 > 0) {
		return nil, fmt.Errorf("k=%d r1=%v r2=%v: %w", k, r1, r2, ErrBadParameter)
	}

	return Euclidean(DoubleCirclePoints(k, r1, r2))
}

// Trap4Rows is the 4-vertex instance where nearest neighbor from vertex 0
// walks the unit chain 0-1-2-3 and closes over the heavy edge (cost 13),
// while the optimum 0-2-3-1 costs 5.
func Trap4Rows() [][]float64 {
	return [][]float64{
		{0, 1, 1.5, 10},
		{1, 0, 1, 1.5},
		{1.5, 1, 0, 1},
		{10, 1.5, 1, 0},
	}
}

// Trap4 returns Trap4Rows as a validated oracle.
func Trap4() *tsp.Distances {
	d, err := tsp.FromRows(Trap4Rows())
	if err != nil {
		panic("generator: trap instance rejected: " + err.Error())
	}

	return d
}

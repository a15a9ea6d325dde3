// Package tsp - nearest-neighbor construction (deterministic and randomized).
//
// NearestNeighbor is used standalone, as the branch-and-bound upper-bound
// seed, and as the local-search starting tour. RandomizedNearestNeighbor is
// the GRASP construction phase: at every step it draws uniformly from a
// Restricted Candidate List (RCL) of near-closest unvisited vertices.
//
// Complexity: O(n²) time, O(n) space for both variants.
package tsp

import (
	"fmt"
	"math"
	"math/rand"
)

// NearestNeighbor builds the greedy tour starting at vertex 0.
// At each step it moves to the strictly closest unvisited vertex; ties go to
// the lowest index. The cycle closes back to vertex 0.
func NearestNeighbor(d *Distances) (Result, error) {
	return NearestNeighborFrom(d, 0)
}

// NearestNeighborFrom is NearestNeighbor with an explicit start vertex.
func NearestNeighborFrom(d *Distances, start int) (Result, error) {
	if d == nil {
		return Result{}, ErrNilDistances
	}
	if start < 0 || start >= d.n {
		return Result{}, fmt.Errorf("start %d: %w", start, ErrIndexOutOfRange)
	}
	tour, cost := d.nearestNeighborTour(start)

	return Result{Tour: tour, Cost: round1e9(cost), Status: StatusHeuristic}, nil
}

// nearestNeighborTour returns the greedy tour from start and its raw cost.
func (d *Distances) nearestNeighborTour(start int) ([]int, float64) {
	var (
		n       = d.n
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		cur     = start
		cost    float64
		step, u int
	)
	visited[cur] = true
	tour = append(tour, cur)

	for step = 1; step < n; step++ {
		next, best := -1, math.Inf(1)
		for u = 0; u < n; u++ {
			if !visited[u] && d.at(cur, u) < best {
				next, best = u, d.at(cur, u)
			}
		}
		if next < 0 {
			panic("tsp: nearest neighbor: no unvisited vertex left in a complete graph")
		}
		visited[next] = true
		tour = append(tour, next)
		cost += best
		cur = next
	}
	if n > 1 {
		cost += d.at(cur, start)
	}

	return tour, cost
}

// candidate is an unvisited vertex with its distance from the current one.
type candidate struct {
	v    int
	dist float64
}

// RandomizedNearestNeighbor builds a tour from a uniformly random start.
// At each step it computes the distances from the current vertex to all
// unvisited vertices, keeps every candidate with
//
//	dist ≤ min + alpha·(max − min)
//
// and picks one uniformly. alpha = 0 is pure greedy (ties still drawn at
// random), alpha = 1 is uniform over all unvisited vertices. When every
// distance is equal the threshold equals min and admits all candidates.
// A singleton RCL is taken without drawing from rng.
//
// If rng is nil the default deterministic stream is used.
//
// Errors: ErrNilDistances, ErrInvalidAlpha.
func RandomizedNearestNeighbor(d *Distances, alpha float64, rng *rand.Rand) (Result, error) {
	if d == nil {
		return Result{}, ErrNilDistances
	}
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return Result{}, fmt.Errorf("alpha=%v: %w", alpha, ErrInvalidAlpha)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var (
		n       = d.n
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		cands   = make([]candidate, 0, n)
		start   = rng.Intn(n)
		cur     = start
		cost    float64
		step, u int
	)
	visited[cur] = true
	tour = append(tour, cur)

	for step = 1; step < n; step++ {
		cands = cands[:0]
		lo, hi := math.Inf(1), math.Inf(-1)
		for u = 0; u < n; u++ {
			if visited[u] {
				continue
			}
			w := d.at(cur, u)
			cands = append(cands, candidate{v: u, dist: w})
			if w < lo {
				lo = w
			}
			if w > hi {
				hi = w
			}
		}

		// Filter in place: cands[:k] becomes the RCL.
		threshold := lo + alpha*(hi-lo)
		k := 0
		for _, c := range cands {
			if c.dist <= threshold {
				cands[k] = c
				k++
			}
		}
		if k == 0 {
			panic("tsp: randomized nearest neighbor: empty restricted candidate list")
		}

		pick := cands[0]
		if k > 1 {
			pick = cands[rng.Intn(k)]
		}
		visited[pick.v] = true
		tour = append(tour, pick.v)
		cost += pick.dist
		cur = pick.v
	}
	if n > 1 {
		cost += d.at(cur, start)
	}

	return Result{Tour: tour, Cost: round1e9(cost), Status: StatusHeuristic}, nil
}

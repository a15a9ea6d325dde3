package tsp

import (
	"fmt"
	"math"
)

// MSTCost returns the weight of a minimum spanning tree over exactly the
// vertices in subset, using Prim's algorithm seeded at subset[0].
//
// The graph is complete and dense, so the O(|S|²) array variant is used
// (no priority queue). Deterministic for a fixed subset order.
//
// Errors: ErrEmptySubset, ErrIndexOutOfRange, ErrInvalidTour on repeated vertices.
//
// Time:  O(|S|²).
// Space: O(|S|).
func MSTCost(d *Distances, subset []int) (float64, error) {
	if d == nil {
		return 0, ErrNilDistances
	}
	if len(subset) == 0 {
		return 0, ErrEmptySubset
	}
	seen := make(map[int]struct{}, len(subset))
	for _, v := range subset {
		if v < 0 || v >= d.n {
			return 0, fmt.Errorf("subset vertex %d: %w", v, ErrIndexOutOfRange)
		}
		if _, dup := seen[v]; dup {
			return 0, fmt.Errorf("subset vertex %d repeated: %w", v, ErrInvalidTour)
		}
		seen[v] = struct{}{}
	}

	var p prim
	p.grow(len(subset))

	return round1e9(p.cost(d, subset)), nil
}

// prim holds reusable scratch buffers so repeated MST evaluations
// (one per branch-and-bound node) do not allocate.
type prim struct {
	key    []float64 // cheapest edge from the tree to subset[k]
	inTree []bool
}

// grow ensures the scratch buffers hold at least k entries.
func (p *prim) grow(k int) {
	if cap(p.key) < k {
		p.key = make([]float64, k)
		p.inTree = make([]bool, k)
	}
}

// cost runs Prim over subset. Callers guarantee a non-empty, duplicate-free
// subset of valid vertices and a scratch capacity ≥ len(subset).
func (p *prim) cost(d *Distances, subset []int) float64 {
	var (
		k     = len(subset)
		key   = p.key[:k]
		in    = p.inTree[:k]
		inf   = math.Inf(1)
		total float64
		it    int
		a, b  int
		u     int
		best  float64
		w     float64
	)
	for a = 0; a < k; a++ {
		key[a] = inf
		in[a] = false
	}
	key[0] = 0

	for it = 0; it < k; it++ {
		// (a) cheapest vertex not yet in the tree
		u, best = -1, inf
		for a = 0; a < k; a++ {
			if !in[a] && key[a] < best {
				u, best = a, key[a]
			}
		}
		if u < 0 {
			panic("tsp: prim: no reachable vertex in a complete graph")
		}
		// (b) add it
		in[u] = true
		total += best
		// (c) relax the remaining keys
		for b = 0; b < k; b++ {
			if in[b] {
				continue
			}
			w = d.at(subset[u], subset[b])
			if w < key[b] {
				key[b] = w
			}
		}
	}

	return total
}

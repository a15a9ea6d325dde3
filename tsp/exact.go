package tsp

import (
	"fmt"
	"math"
	"time"
)

// MaxHeldKarpVertices bounds HeldKarp: the tables hold n·2ⁿ⁻¹ entries.
const MaxHeldKarpVertices = 16

// HeldKarp solves the instance exactly with the Held–Karp dynamic program.
//
// Subsets are bitmasks over vertices 1..n-1 (vertex 0 is the fixed start).
// dp[S][j] is the cheapest path that leaves 0, visits exactly S and ends at
// j ∈ S. The tour is closed by the cheapest return edge and rebuilt from the
// parent table.
//
// It serves as an independent optimum for cross-checking BranchAndBound on
// small instances.
//
// Errors: ErrNilDistances, ErrTooLarge (n > MaxHeldKarpVertices).
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp(d *Distances) (Result, error) {
	if d == nil {
		return Result{}, ErrNilDistances
	}
	n := d.n
	if n > MaxHeldKarpVertices {
		return Result{}, fmt.Errorf("n=%d > %d: %w", n, MaxHeldKarpVertices, ErrTooLarge)
	}
	began := time.Now()
	if n == 1 {
		return Result{Tour: []int{0}, Status: StatusOptimal, Optimal: true, Elapsed: time.Since(began)}, nil
	}

	// Vertex v ≥ 1 maps to bit v-1; column index j-1 for endpoint j.
	var (
		m      = n - 1
		full   = 1<<m - 1
		width  = m
		dp     = make([]float64, (full+1)*width)
		parent = make([]int8, (full+1)*width)
		mask   int
		j, k   int
	)
	for mask = 0; mask <= full; mask++ {
		for j = 0; j < width; j++ {
			dp[mask*width+j] = math.Inf(1)
			parent[mask*width+j] = -1
		}
	}
	for j = 0; j < m; j++ {
		dp[(1<<j)*width+j] = d.at(0, j+1)
	}

	for mask = 1; mask <= full; mask++ {
		for j = 0; j < m; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			if prev == 0 {
				continue // base case
			}
			best, from := math.Inf(1), -1
			for k = 0; k < m; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				if c := dp[prev*width+k] + d.at(k+1, j+1); c < best {
					best, from = c, k
				}
			}
			dp[mask*width+j] = best
			parent[mask*width+j] = int8(from)
		}
	}

	// Close the cycle back to 0.
	bestCost, last := math.Inf(1), -1
	for j = 0; j < m; j++ {
		if c := dp[full*width+j] + d.at(j+1, 0); c < bestCost {
			bestCost, last = c, j
		}
	}

	// Walk parents backwards.
	tour := make([]int, n)
	mask = full
	for pos := n - 1; pos >= 1; pos-- {
		tour[pos] = last + 1
		p := int(parent[mask*width+last])
		mask ^= 1 << last
		last = p
	}
	tour[0] = 0

	return Result{
		Tour:    tour,
		Cost:    round1e9(bestCost),
		Status:  StatusOptimal,
		Optimal: true,
		Elapsed: time.Since(began),
	}, nil
}

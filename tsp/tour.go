// Package tsp - tour utilities shared by exact/heuristic solvers.
//
// Tours are open permutations of 0..n-1 (length n) read as cycles.
// Provided helpers:
//   - ValidateTour: enforce the permutation invariant.
//   - RotateToStart: cyclic shift so the tour begins at a given vertex.
//   - CanonicalizeOrientationInPlace: canonical direction w.r.t. the start.
//   - SameCycle: equality under rotation and reflection.
//   - RandomTour: uniformly shuffled permutation.
//   - CopyTour, reverseSegment.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for every helper; in-place mutations avoid extra allocations.
package tsp

import (
	"fmt"
	"math/rand"
)

// ValidateTour checks that tour is a permutation of {0..n-1}.
//
// Errors: ErrIndexOutOfRange for a vertex outside [0, n); ErrInvalidTour for
// a wrong length or a repeated vertex.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return fmt.Errorf("len(tour)=%d, n=%d: %w", len(tour), n, ErrInvalidTour)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tour[%d]=%d: %w", i, v, ErrIndexOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("vertex %d repeated at position %d: %w", v, i, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a fresh copy of tour shifted so that out[0] == start.
// The cycle (and therefore its cost) is unchanged.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	var (
		n     = len(tour)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("start %d not in tour: %w", start, ErrIndexOutOfRange)
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// CanonicalizeOrientationInPlace fixes the tour direction under a fixed start.
// If the right neighbor tour[1] is greater than the left neighbor tour[n-1],
// the interior segment [1..n-1] is reversed in place.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) {
	n := len(tour)
	if n < 3 {
		return
	}
	if tour[1] > tour[n-1] {
		reverseSegment(tour, 1, n-1)
	}
}

// SameCycle reports whether a and b describe the same undirected cycle,
// i.e. b is a rotation of a or of its reflection.
//
// Complexity: O(n) time.
func SameCycle(a, b []int) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	var (
		p = -1
		i int
	)
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[((p-i)%n+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// RandomTour returns a uniformly shuffled permutation of 0..n-1.
// If rng is nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	p := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// reverseSegment reverses the inclusive segment tour[i..k] in place.
// This is the primitive used by 2-opt. Callers guarantee 0 ≤ i ≤ k < len(tour).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

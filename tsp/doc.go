// Package tsp solves the symmetric Travelling Salesman Problem on a dense
// distance matrix.
//
// Build the oracle once with NewDistances (or FromRows) and hand it to any
// engine:
//
//   - BranchAndBound: exact depth-first search with an MST lower bound and a
//     nearest-neighbor incumbent. Honors a wall-clock budget and returns the
//     best tour found so far, tagged StatusTimeLimit, when it runs out.
//   - HeldKarp: O(n²·2ⁿ) dynamic program for n ≤ MaxHeldKarpVertices.
//   - NearestNeighbor / NearestNeighborFrom: deterministic greedy tour, O(n²).
//   - TwoOpt: first-improvement 2-opt to a local optimum.
//   - GRASP: randomized greedy construction (RCL with parameter alpha)
//     followed by 2-opt, repeated under an iteration cap and a time budget.
//   - MSTCost: Prim over a vertex subset, the bound used by BranchAndBound.
//
// Solve dispatches on Options.Algo.
//
// Tours are permutations of 0..n-1 of length n, read as cycles: the last
// vertex connects back to the first. Reported costs are rounded to 1e-9.
//
// Errors are sentinels declared in types.go and matched with errors.Is.
// Options.Logger (github.com/charmbracelet/log) receives progress messages;
// a nil logger keeps every solver silent.
//
// Use this package for small-to-medium instances: exact search is practical
// up to a few dozen vertices, the heuristics scale to thousands.
package tsp

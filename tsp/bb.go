// Package tsp - Branch-and-Bound (exact search with an MST lower bound).
//
// BranchAndBound enumerates tours from vertex 0 by depth-first search.
//
// Search:
//  1. The incumbent (upper bound) is seeded with the nearest-neighbor tour,
//     so pruning works from the very first branch.
//  2. Every node checks the context first; once it is done (deadline from
//     Options.TimeLimit or caller cancellation) the search unwinds and the
//     incumbent is returned tagged StatusTimeLimit.
//  3. Prune when costSoFar ≥ UB.
//  4. Lower bound for a partial path ending at last, with unvisited set U:
//     LB = MST(U) + min_{u∈U} w(last,u) + min_{u∈U} w(u,start).
//     Any completion enters U once, spans U, and leaves U once, so LB is
//     admissible. Prune when costSoFar + LB ≥ UB.
//  5. Children are tried in ascending w(last→v) (index tiebreak), which
//     tightens UB early and keeps runs reproducible.
//  6. Visited membership lives in a single bit set with push/pop around
//     each child; the pop is deferred so every exit path restores it.
//
// Complexity:
//   - Worst case O(n!) nodes. Per node: O(|U|²) bound + O(|U| log |U|) ordering.
//   - Memory: O(n²) for per-depth candidate buffers, O(n) for the path.
package tsp

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yourbasic/bit"
)

// bbEngine holds all search data for one run.
type bbEngine struct {
	ctx    context.Context
	d      *Distances
	n      int
	start  int
	logger *log.Logger

	// Current search state
	visited *bit.Set // vertices on the current path
	path    []int    // path[0:depth], path[0] == start
	cands   [][]int  // per-depth unvisited buffers (children of that depth)
	mst     prim     // shared Prim scratch; never used re-entrantly

	// Incumbent (UB)
	bestTour []int
	bestCost float64

	nodes   int64
	aborted bool
}

// neighborOrder implements sort.Interface for candidates ordered by w(from→v).
type neighborOrder struct {
	from int
	row  []int
	d    *Distances
}

func (no neighborOrder) Len() int { return len(no.row) }
func (no neighborOrder) Less(i, j int) bool {
	vi, vj := no.row[i], no.row[j]
	wi, wj := no.d.at(no.from, vi), no.d.at(no.from, vj)
	if wi == wj {
		return vi < vj
	}

	return wi < wj
}
func (no neighborOrder) Swap(i, j int) { no.row[i], no.row[j] = no.row[j], no.row[i] }

// unvisited fills and returns the candidate buffer of the given depth.
func (e *bbEngine) unvisited(depth int) []int {
	buf := e.cands[depth][:0]
	var v int
	for v = 0; v < e.n; v++ {
		if !e.visited.Contains(v) {
			buf = append(buf, v)
		}
	}
	e.cands[depth] = buf

	return buf
}

// lowerBound returns MST(U) + min w(last,U) + min w(U,start).
func (e *bbEngine) lowerBound(last int, u []int) float64 {
	enter, leave := math.Inf(1), math.Inf(1)
	for _, v := range u {
		if w := e.d.at(last, v); w < enter {
			enter = w
		}
		if w := e.d.at(v, e.start); w < leave {
			leave = w
		}
	}

	return e.mst.cost(e.d, u) + enter + leave
}

// record commits a new incumbent.
func (e *bbEngine) record(total float64) {
	copy(e.bestTour, e.path)
	e.bestCost = total
	if e.logger != nil {
		e.logger.Debug("branch and bound: new incumbent", "cost", round1e9(total), "nodes", e.nodes)
	}
}

// descend pushes v onto the path, explores it, and pops it again.
func (e *bbEngine) descend(v, depth int, cost float64) {
	e.visited.Add(v)
	defer e.visited.Delete(v)
	e.path[depth] = v
	e.dfs(v, depth+1, cost)
}

// dfs explores the subtree below a path of length depth ending at last.
func (e *bbEngine) dfs(last int, depth int, cost float64) {
	e.nodes++
	if e.ctx.Err() != nil {
		e.aborted = true
		return
	}
	if cost >= e.bestCost {
		return
	}

	// All vertices placed: close the cycle at start.
	if depth == e.n {
		if total := cost + e.d.at(last, e.start); total < e.bestCost {
			e.record(total)
		}
		return
	}

	u := e.unvisited(depth)
	if len(u) == 0 {
		panic("tsp: branch and bound: incomplete path has no unvisited vertex")
	}
	if cost+e.lowerBound(last, u) >= e.bestCost {
		return
	}

	sort.Sort(neighborOrder{from: last, row: u, d: e.d})
	for _, v := range u {
		e.descend(v, depth, cost+e.d.at(last, v))
		if e.aborted {
			return
		}
	}
}

// BranchAndBound solves the instance exactly, or returns the best tour found
// before the budget ran out.
//
// The budget is opts.TimeLimit (0 = already spent, negative = none) combined
// with ctx. Reaching it is not an error: the result carries StatusTimeLimit
// and Optimal=false. With an exhausted budget the nearest-neighbor seed is
// returned, so the result always holds a complete tour.
//
// Errors: ErrNilDistances only.
func BranchAndBound(ctx context.Context, d *Distances, opts Options) (Result, error) {
	if d == nil {
		return Result{}, ErrNilDistances
	}
	began := time.Now()
	ctx, cancel := withBudget(ctx, opts.TimeLimit)
	defer cancel()

	if d.n == 1 {
		return Result{Tour: []int{0}, Status: StatusOptimal, Optimal: true, Elapsed: time.Since(began)}, nil
	}

	e := newBBEngine(ctx, d, opts.Logger)
	e.run()

	res := Result{
		Tour:    e.bestTour,
		Cost:    round1e9(e.bestCost),
		Status:  StatusOptimal,
		Optimal: true,
		Nodes:   e.nodes,
		Elapsed: time.Since(began),
	}
	if e.aborted {
		res.Status = StatusTimeLimit
		res.Optimal = false
		if e.logger != nil {
			e.logger.Info("branch and bound: time budget exhausted, returning best tour so far",
				"cost", res.Cost, "nodes", e.nodes, "elapsed", res.Elapsed.Round(time.Millisecond))
		}
	}

	return res, nil
}

// newBBEngine allocates the search buffers and seeds the incumbent with the
// nearest-neighbor tour. Requires n ≥ 2.
func newBBEngine(ctx context.Context, d *Distances, logger *log.Logger) *bbEngine {
	n := d.n
	e := &bbEngine{
		ctx:      ctx,
		d:        d,
		n:        n,
		start:    0,
		logger:   logger,
		visited:  new(bit.Set),
		path:     make([]int, n),
		cands:    make([][]int, n+1),
		bestTour: make([]int, n),
	}
	var i int
	for i = range e.cands {
		e.cands[i] = make([]int, 0, n)
	}
	e.mst.grow(n)

	seed, seedCost := d.nearestNeighborTour(e.start)
	copy(e.bestTour, seed)
	e.bestCost = seedCost

	return e
}

// run searches from the start vertex. On return the visited set holds
// only the start vertex again.
func (e *bbEngine) run() {
	e.path[0] = e.start
	e.visited.Add(e.start)
	e.dfs(e.start, 1, 0)
}

// withBudget derives a context bounded by tl. A negative tl adds no deadline;
// tl == 0 yields an already-expired context.
func withBudget(ctx context.Context, tl time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tl < 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, tl)
}

package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Sentinel errors. Callers match them with errors.Is; boundaries may wrap
// them with fmt.Errorf("ctx: %w", ...).
var (
	// ErrNilDistances is returned when a solver receives a nil *Distances.
	ErrNilDistances = errors.New("tsp: nil distances")

	// ErrNonSquare signals a distance matrix that is empty or not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonFiniteWeight signals a NaN or ±Inf weight.
	ErrNonFiniteWeight = errors.New("tsp: non-finite weight")

	// ErrNegativeWeight signals a negative weight.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrAsymmetry signals w(i,j) != w(j,i) beyond SymmetryTolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrIndexOutOfRange signals a vertex index outside [0, n).
	ErrIndexOutOfRange = errors.New("tsp: vertex index out of range")

	// ErrInvalidTour signals a tour that is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the vertices")

	// ErrEmptySubset is returned by MSTCost for an empty vertex subset.
	ErrEmptySubset = errors.New("tsp: empty vertex subset")

	// ErrInvalidAlpha signals an RCL alpha outside [0, 1].
	ErrInvalidAlpha = errors.New("tsp: alpha must be within [0, 1]")

	// ErrInvalidOptions signals an inconsistent Options value
	// (negative iterations, negative or NaN eps).
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTooLarge is returned by HeldKarp when n exceeds MaxHeldKarpVertices.
	ErrTooLarge = errors.New("tsp: instance too large for algorithm")

	// ErrNoSolution is returned together with a StatusNoSolution result when a
	// time- or iteration-bounded heuristic completed no iteration at all.
	ErrNoSolution = errors.New("tsp: no solution found")
)

// Status tags how a Result was obtained.
type Status int

const (
	// StatusOptimal marks a proven optimum (exhaustive search completed).
	StatusOptimal Status = iota

	// StatusTimeLimit marks the best tour found before the time budget
	// ran out. No optimality claim is made.
	StatusTimeLimit

	// StatusHeuristic marks a heuristic that ran to completion
	// (construction, local optimum, all GRASP iterations).
	StatusHeuristic

	// StatusNoSolution marks an empty result; Tour is nil.
	StatusNoSolution
)

// String returns the lower-case status name used in logs and reports.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeLimit:
		return "time_limit"
	case StatusHeuristic:
		return "heuristic"
	case StatusNoSolution:
		return "no_solution"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of a solver run.
type Result struct {
	// Tour is a permutation of 0..n-1 read as a cycle (the last vertex
	// connects back to the first). Nil when Status == StatusNoSolution.
	Tour []int

	// Cost is the total weight of the cycle, rounded to 1e-9.
	Cost float64

	// Status tells proven optima apart from budget-bounded or heuristic tours.
	Status Status

	// Optimal is true exactly when Status == StatusOptimal.
	Optimal bool

	// Nodes counts visited search-tree nodes (branch and bound only).
	Nodes int64

	// Moves counts accepted 2-opt moves (2-opt and local search only).
	Moves int

	// Iterations counts completed GRASP iterations.
	Iterations int

	// Elapsed is the wall time spent inside Solve.
	Elapsed time.Duration
}

// Algorithm selects the engine run by Solve.
type Algorithm int

const (
	// AlgoExact is depth-first branch and bound with an MST lower bound.
	AlgoExact Algorithm = iota

	// AlgoConstructive is the deterministic nearest-neighbor tour from vertex 0.
	AlgoConstructive

	// AlgoLocalSearch is nearest neighbor followed by first-improvement 2-opt.
	AlgoLocalSearch

	// AlgoGRASP is randomized greedy construction + 2-opt, repeated.
	AlgoGRASP

	// AlgoHeldKarp is the O(n²·2ⁿ) dynamic program (n ≤ MaxHeldKarpVertices).
	AlgoHeldKarp
)

var algoNames = [...]string{
	AlgoExact:        "exact",
	AlgoConstructive: "constructive",
	AlgoLocalSearch:  "local_search",
	AlgoGRASP:        "grasp",
	AlgoHeldKarp:     "held_karp",
}

// String returns the method name also used for solution file suffixes.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algoNames[a]
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoExact, AlgoConstructive, AlgoLocalSearch, AlgoGRASP, AlgoHeldKarp}
}

// ParseAlgorithm maps a name (case-insensitive, '-' or '_') to an Algorithm.
// Short aliases "bb", "nn", "ls", "2opt" and "hk" are accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch key {
	case "exact", "bb", "branch_and_bound":
		return AlgoExact, nil
	case "constructive", "nn", "nearest_neighbor":
		return AlgoConstructive, nil
	case "local_search", "ls", "2opt", "two_opt":
		return AlgoLocalSearch, nil
	case "grasp", "grasp_ls":
		return AlgoGRASP, nil
	case "held_karp", "hk":
		return AlgoHeldKarp, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
}

// Default knobs.
const (
	// DefaultEps is the 2-opt acceptance tolerance: a move is applied only
	// when its delta is below -DefaultEps.
	DefaultEps = 1e-9

	// DefaultExactTimeLimit is the branch-and-bound wall-clock budget.
	DefaultExactTimeLimit = 300 * time.Second

	// DefaultGRASPTimeLimit is the GRASP wall-clock budget.
	DefaultGRASPTimeLimit = 600 * time.Second

	// DefaultMaxIterations is the GRASP iteration cap.
	DefaultMaxIterations = 20

	// DefaultAlpha is the RCL greediness (0 = pure greedy, 1 = uniform).
	DefaultAlpha = 0.3

	// NoTimeLimit disables the wall-clock budget. Any negative TimeLimit
	// has the same effect.
	NoTimeLimit time.Duration = -1

	// SymmetryTolerance bounds |w(i,j) - w(j,i)| accepted by NewDistances.
	SymmetryTolerance = 1e-9
)

// Options configures the solvers. Fields irrelevant to an algorithm are ignored.
type Options struct {
	// Algo selects the engine for Solve.
	Algo Algorithm

	// TimeLimit is the wall-clock budget for branch and bound and GRASP.
	// Zero means the budget is already spent: branch and bound returns its
	// nearest-neighbor seed, GRASP returns no solution. Negative disables it.
	TimeLimit time.Duration

	// MaxIterations caps GRASP iterations.
	MaxIterations int

	// Alpha is the RCL parameter of the randomized construction, in [0, 1].
	Alpha float64

	// Seed feeds the GRASP RNG; 0 selects a fixed default seed.
	Seed int64

	// Eps is the 2-opt improvement tolerance (delta < -Eps is accepted).
	Eps float64

	// Logger receives progress messages; nil keeps solvers silent.
	Logger *log.Logger
}

// DefaultOptions returns the branch-and-bound defaults.
func DefaultOptions() Options {
	return Options{
		Algo:          AlgoExact,
		TimeLimit:     DefaultExactTimeLimit,
		MaxIterations: DefaultMaxIterations,
		Alpha:         DefaultAlpha,
		Eps:           DefaultEps,
	}
}

// DefaultExactOptions is DefaultOptions, named for symmetry with
// DefaultGRASPOptions.
func DefaultExactOptions() Options { return DefaultOptions() }

// DefaultGRASPOptions returns the GRASP defaults.
func DefaultGRASPOptions() Options {
	opts := DefaultOptions()
	opts.Algo = AlgoGRASP
	opts.TimeLimit = DefaultGRASPTimeLimit

	return opts
}

// Package bench runs solver algorithms over a set of instance files and
// collects timing and cost records.
//
// A Runner executes every (instance, algorithm) pair with a per-run timeout,
// instances in parallel through an errgroup. Records are written as CSV
// (WriteCSV / ReadCSV), summarized per algorithm with gonum/stat
// (Summarize), and charted with gonum/plot (SavePlots).
package bench

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status classifies one run.
type Status int

const (
	// StatusSuccess: the solver finished within the timeout.
	StatusSuccess Status = iota

	// StatusTimeout: the timeout cut the run. Cost is set when the solver
	// still returned a tour (branch and bound, GRASP with ≥1 iteration).
	StatusTimeout

	// StatusError: loading or solving failed.
	StatusError

	// StatusNoSolution: the solver ended without a tour for a reason other
	// than the timeout (e.g. zero GRASP iterations configured).
	StatusNoSolution
)

var statusNames = [...]string{
	StatusSuccess:    "Success",
	StatusTimeout:    "Timeout",
	StatusError:      "Error",
	StatusNoSolution: "NoSolution",
}

// ErrBadStatus is returned by ParseStatus for an unknown name.
var ErrBadStatus = errors.New("bench: unknown status")

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// ParseStatus is the inverse of Status.String (case-insensitive).
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if strings.EqualFold(name, s) {
			return Status(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrBadStatus)
}

// Record is the outcome of one (instance, algorithm) run.
type Record struct {
	RunID     uuid.UUID // benchmark invocation the record belongs to
	Instance  string    // file name of the instance
	Algorithm string
	Status    Status
	Time      time.Duration
	Cost      float64 // NaN when the run produced no tour
	Error     string
}

// HasCost reports whether the record carries a tour cost.
func (r Record) HasCost() bool { return !math.IsNaN(r.Cost) }

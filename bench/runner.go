package bench

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspsolve/instance"
	"github.com/katalvlaran/tspsolve/tsp"
)

// InstanceExt is the file extension Discover looks for.
const InstanceExt = ".in"

// Discover returns the instance files below dir, sorted by path. limit > 0
// keeps only the first limit files.
func Discover(dir string, limit int) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !e.IsDir() && strings.EqualFold(filepath.Ext(path), InstanceExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}

	return paths, nil
}

// Runner executes algorithms over instances.
type Runner struct {
	// Algorithms run on every instance, in order.
	Algorithms []tsp.Algorithm

	// Options returns the solver options for an algorithm. Nil uses
	// tsp.DefaultOptions with Algo set (and the GRASP time limit for GRASP).
	Options func(tsp.Algorithm) tsp.Options

	// Timeout bounds each run; ≤ 0 leaves runs bounded by their own
	// TimeLimit only.
	Timeout time.Duration

	// Workers is the number of instances processed concurrently (min 1).
	Workers int

	// Seed is the parent seed; every instance gets tsp.DeriveSeed(Seed, index).
	Seed int64

	// SaveSolutions writes {base}_{algo}.out next to each instance.
	SaveSolutions bool

	// Logger receives one line per run; nil is silent.
	Logger *log.Logger
}

// Report is the output of one Runner.Run call.
type Report struct {
	RunID   uuid.UUID
	Started time.Time
	Elapsed time.Duration
	Records []Record
}

// Run benchmarks paths. Records are ordered by instance then algorithm,
// independent of scheduling. Only cancellation of ctx aborts the run; solver
// failures become StatusError records.
func (r *Runner) Run(ctx context.Context, paths []string) (Report, error) {
	rep := Report{RunID: uuid.New(), Started: time.Now()}
	perInstance := make([][]Record, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			recs, err := r.runInstance(gctx, rep.RunID, i, path)
			perInstance[i] = recs
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	for _, recs := range perInstance {
		rep.Records = append(rep.Records, recs...)
	}
	rep.Elapsed = time.Since(rep.Started)

	return rep, nil
}

// runInstance runs every algorithm on one file.
func (r *Runner) runInstance(ctx context.Context, runID uuid.UUID, idx int, path string) ([]Record, error) {
	name := filepath.Base(path)
	recs := make([]Record, 0, len(r.Algorithms))

	d, loadErr := instance.Load(path)
	for _, algo := range r.Algorithms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec := Record{RunID: runID, Instance: name, Algorithm: algo.String(), Cost: math.NaN()}
		if loadErr != nil {
			rec.Status = StatusError
			rec.Error = loadErr.Error()
			recs = append(recs, rec)
			continue
		}

		res, err := r.runOne(ctx, d, algo, tsp.DeriveSeed(r.Seed, uint64(idx)), &rec)
		if err != nil {
			return nil, err
		}
		if r.SaveSolutions && res.Tour != nil {
			if _, err = instance.SaveSolution(path, algo.String(), res); err != nil {
				rec.Status = StatusError
				rec.Error = err.Error()
			}
		}
		r.logRecord(rec)
		recs = append(recs, rec)
	}

	return recs, nil
}

// runOne solves with the per-run timeout and classifies the outcome into
// rec. It returns an error only when the parent ctx was canceled.
func (r *Runner) runOne(ctx context.Context, d *tsp.Distances, algo tsp.Algorithm, seed int64, rec *Record) (tsp.Result, error) {
	opts := r.options(algo)
	opts.Seed = seed

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if r.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.Timeout)
	}
	defer cancel()

	began := time.Now()
	res, err := tsp.Solve(runCtx, d, opts)
	rec.Time = time.Since(began)

	if ctx.Err() != nil {
		return tsp.Result{}, ctx.Err()
	}
	timedOut := runCtx.Err() != nil
	switch {
	case err == nil && res.Status == tsp.StatusTimeLimit:
		rec.Status = StatusTimeout
		rec.Cost = res.Cost
	case err == nil:
		rec.Status = StatusSuccess
		rec.Cost = res.Cost
	case errors.Is(err, context.DeadlineExceeded) || (timedOut && errors.Is(err, tsp.ErrNoSolution)):
		rec.Status = StatusTimeout
	case errors.Is(err, tsp.ErrNoSolution):
		rec.Status = StatusNoSolution
		rec.Error = err.Error()
	default:
		rec.Status = StatusError
		rec.Error = err.Error()
	}

	return res, nil
}

func (r *Runner) options(algo tsp.Algorithm) tsp.Options {
	if r.Options != nil {
		opts := r.Options(algo)
		opts.Algo = algo
		return opts
	}
	opts := tsp.DefaultOptions()
	if algo == tsp.AlgoGRASP {
		opts = tsp.DefaultGRASPOptions()
	}
	opts.Algo = algo

	return opts
}

func (r *Runner) logRecord(rec Record) {
	if r.Logger == nil {
		return
	}
	kv := []any{
		"instance", rec.Instance,
		"algo", rec.Algorithm,
		"status", rec.Status,
		"time", rec.Time.Round(time.Millisecond),
	}
	if rec.HasCost() {
		kv = append(kv, "cost", rec.Cost)
	}
	if rec.Status == StatusError {
		r.Logger.Warn("run failed", append(kv, "err", rec.Error)...)
		return
	}
	r.Logger.Info("run finished", kv...)
}

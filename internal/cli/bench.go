package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsolve/bench"
	"github.com/katalvlaran/tspsolve/config"
	"github.com/katalvlaran/tspsolve/tsp"
)

// benchOpts holds flag values for the bench command.
type benchOpts struct {
	instances     string
	output        string
	timeout       time.Duration
	workers       int
	maxInstances  int
	algos         []string
	seed          int64
	saveSolutions bool
	plots         string
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var opts benchOpts

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark algorithms over a directory of instances",
		Long: `Bench runs every selected algorithm on every .in file below the
instances directory, each run bounded by --timeout, and writes one CSV row
per run: Instance,Algorithm,Status,Time,Cost,Error.

A run that hits its budget with a tour in hand is reported as Timeout with
that tour's cost.`,
		Example: `  tspsolve bench --instances Data --timeout 300s
  tspsolve bench -a constructive,local_search --workers 4 --plots plots`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, algos, err := opts.apply(c.cfg, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return c.runBench(cmd.Context(), cfg, algos, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.instances, "instances", "i", "Data", "directory containing .in files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "results CSV (default from config: results.csv)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "budget per run (default from config: 60s)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "instances processed concurrently")
	cmd.Flags().IntVarP(&opts.maxInstances, "max-instances", "n", 0, "benchmark only the first n instances")
	cmd.Flags().StringSliceVarP(&opts.algos, "algo", "a", nil, "algorithms to run (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "parent seed for per-instance GRASP seeds")
	cmd.Flags().BoolVar(&opts.saveSolutions, "save-solutions", false, "write {base}_{algo}.out next to each instance")
	cmd.Flags().StringVar(&opts.plots, "plots", "", "also render charts into this directory")

	return cmd
}

// apply overlays the flags the user set on cfg and resolves the algorithms.
func (o benchOpts) apply(cfg config.Config, changed func(string) bool) (config.Config, []tsp.Algorithm, error) {
	if changed("output") {
		cfg.Bench.Output = o.output
	}
	if changed("timeout") {
		cfg.Bench.Timeout = o.timeout
	}
	if changed("workers") {
		cfg.Bench.Workers = o.workers
	}
	if changed("max-instances") {
		cfg.Bench.MaxInstances = o.maxInstances
	}
	if changed("seed") {
		cfg.GRASP.Seed = o.seed
	}
	if changed("algo") {
		algos, err := parseAlgorithms(o.algos)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg.Bench.Algorithms = algorithmNames(algos)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	algos, err := cfg.BenchAlgorithms()
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, algos, nil
}

func (c *CLI) runBench(ctx context.Context, cfg config.Config, algos []tsp.Algorithm, opts benchOpts) error {
	logger := loggerFromContext(ctx)

	paths, err := bench.Discover(opts.instances, cfg.Bench.MaxInstances)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		c.printWarning("No %s files found in %s", bench.InstanceExt, opts.instances)
		return nil
	}

	sys := bench.CollectSysInfo()
	c.printInfo("Found %d instances, running %s", len(paths), strings.Join(algorithmNames(algos), ", "))
	c.printKeyValue("Platform", sys.Platform)
	c.printKeyValue("CPU", fmt.Sprintf("%s (%d cores)", sys.CPU, sys.Cores))
	c.printKeyValue("RAM", sys.RAM)
	c.printKeyValue("Timeout", cfg.Bench.Timeout.String())
	c.printNewline()

	prog := newProgress(logger)
	runner := &bench.Runner{
		Algorithms:    algos,
		Options:       cfg.Options,
		Timeout:       cfg.Bench.Timeout,
		Workers:       cfg.Bench.Workers,
		Seed:          cfg.GRASP.Seed,
		SaveSolutions: opts.saveSolutions,
		Logger:        logger,
	}
	rep, err := runner.Run(ctx, paths)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Benchmarked %d runs", len(rep.Records)))
	logger.Debug("benchmark finished", "run", rep.RunID, "elapsed", rep.Elapsed.Round(time.Millisecond))

	if err = writeResults(cfg.Bench.Output, rep.Records); err != nil {
		return err
	}

	c.printSummary(bench.Summarize(rep.Records))
	c.printSuccess("Results saved")
	c.printFile(cfg.Bench.Output)

	if opts.plots != "" {
		if err = c.savePlots(opts.plots, rep.Records); err != nil {
			return err
		}
	} else {
		c.printNewline()
		c.printNextStep("Plot the results", fmt.Sprintf("%s plot %s", appName, cfg.Bench.Output))
	}

	return nil
}

// writeResults writes recs to path as CSV, creating parent directories.
func writeResults(path string, recs []bench.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = bench.WriteCSV(f, recs); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// savePlots renders charts for recs into dir and lists the files.
func (c *CLI) savePlots(dir string, recs []bench.Record) error {
	files, err := bench.SavePlots(dir, recs)
	if errors.Is(err, bench.ErrNothingToPlot) {
		c.printWarning("Nothing to plot: no run produced a tour")
		return nil
	}
	if err != nil {
		return err
	}
	c.printSuccess("Rendered %d charts", len(files))
	for _, f := range files {
		c.printFile(f)
	}

	return nil
}

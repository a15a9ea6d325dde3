package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsolve/config"
	"github.com/katalvlaran/tspsolve/instance"
	"github.com/katalvlaran/tspsolve/tsp"
)

// maxTourDisplay is the longest tour printed in full; longer tours are elided.
const maxTourDisplay = 30

// solveOpts holds flag values for the solve command.
type solveOpts struct {
	algos      []string
	timeLimit  time.Duration
	iterations int
	alpha      float64
	seed       int64
	eps        float64
	noSave     bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <instance.in>...",
		Short: "Solve instance files and write {base}_{algo}.out solutions",
		Long: `Solve runs the selected algorithms on each instance file. Each solution
is written next to its input as {base}_{algo}.out: the tour as 1-based
vertex indices on the first line and the cost on the second.

Flags override the values of the --config file.`,
		Example: `  tspsolve solve Data/trap.in
  tspsolve solve -a exact,grasp --time-limit 30s Data/*.in
  tspsolve solve -a all --seed 7 --no-save Data/rand_12.in`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.apply(c.cfg, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), cfg, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.algos, "algo", "a", []string{"exact"},
		"algorithms: exact, constructive, local_search, grasp, held_karp or all")
	cmd.Flags().DurationVarP(&opts.timeLimit, "time-limit", "t", 0, "budget for exact and grasp (negative = none)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 0, "GRASP iterations")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 0, "GRASP candidate list greediness in [0, 1]")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "GRASP random seed")
	cmd.Flags().Float64Var(&opts.eps, "eps", 0, "2-opt improvement tolerance")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "do not write solution files")

	return cmd
}

// apply overlays the flags the user set on cfg.
func (o solveOpts) apply(cfg config.Config, changed func(string) bool) (config.Config, error) {
	if changed("time-limit") {
		cfg.Exact.TimeLimit = o.timeLimit
		cfg.GRASP.TimeLimit = o.timeLimit
	}
	if changed("iterations") {
		cfg.GRASP.MaxIterations = o.iterations
	}
	if changed("alpha") {
		cfg.GRASP.Alpha = o.alpha
	}
	if changed("seed") {
		cfg.GRASP.Seed = o.seed
	}
	if changed("eps") {
		cfg.LocalSearch.Eps = o.eps
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func (c *CLI) runSolve(ctx context.Context, cfg config.Config, opts solveOpts, paths []string) error {
	logger := loggerFromContext(ctx)

	algos, err := parseAlgorithms(opts.algos)
	if err != nil {
		return err
	}

	for i, path := range paths {
		prog := newProgress(logger)
		d, err := instance.Load(path)
		if err != nil {
			return err
		}
		logger.Debug("loaded instance", "path", path, "n", d.N())

		if i > 0 {
			c.printNewline()
		}
		c.println(StyleTitle.Render(filepath.Base(path)) + " " + StyleDim.Render(fmt.Sprintf("(%d vertices)", d.N())))

		for _, algo := range algos {
			o := cfg.Options(algo)
			o.Logger = logger

			res, err := tsp.Solve(ctx, d, o)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			switch {
			case errors.Is(err, tsp.ErrNoSolution):
				c.printWarning("%s: no solution within the budget", algo)
				continue
			case errors.Is(err, tsp.ErrTooLarge):
				c.printWarning("%s: skipped, %d vertices exceed the limit of %d", algo, d.N(), tsp.MaxHeldKarpVertices)
				continue
			case err != nil:
				c.printError("%s: %v", algo, err)
				return fmt.Errorf("%s on %s: %w", algo, path, err)
			}

			c.printResult(algo, res)
			if opts.noSave {
				continue
			}
			out, err := instance.SaveSolution(path, algo.String(), res)
			if err != nil {
				return fmt.Errorf("save %s solution: %w", algo, err)
			}
			c.printFile(out)
		}
		prog.done(fmt.Sprintf("Solved %s", filepath.Base(path)))
	}

	return nil
}

// printResult prints one solver outcome.
func (c *CLI) printResult(algo tsp.Algorithm, res tsp.Result) {
	c.printSuccess("%s %s", StyleValue.Render(algo.String()), statusStyle(res.Status).Render(res.Status.String()))
	c.printKeyValue("cost", StyleNumber.Render(instance.FormatCost(res.Cost)))
	c.printKeyValue("time", res.Elapsed.Round(time.Microsecond).String())
	switch {
	case res.Nodes > 0:
		c.printKeyValue("nodes", strconv.FormatInt(res.Nodes, 10))
	case res.Iterations > 0:
		c.printKeyValue("iterations", strconv.Itoa(res.Iterations))
	case res.Moves > 0:
		c.printKeyValue("moves", strconv.Itoa(res.Moves))
	}
	c.printKeyValue("tour", formatTour(res.Tour))
}

func statusStyle(s tsp.Status) lipgloss.Style {
	switch s {
	case tsp.StatusOptimal:
		return styleOptimal
	case tsp.StatusTimeLimit:
		return styleTimeLimit
	default:
		return styleHeuristic
	}
}

// formatTour renders a tour with 1-based indices, as in solution files.
func formatTour(tour []int) string {
	n := len(tour)
	shown := tour
	if n > maxTourDisplay {
		shown = tour[:maxTourDisplay]
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = strconv.Itoa(v + 1)
	}
	s := strings.Join(parts, " ")
	if n > maxTourDisplay {
		s += fmt.Sprintf(" … (%d more)", n-maxTourDisplay)
	}

	return s
}

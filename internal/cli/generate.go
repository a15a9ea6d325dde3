package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsolve/generator"
	"github.com/katalvlaran/tspsolve/instance"
	"github.com/katalvlaran/tspsolve/tsp"
)

// generateOpts holds flags shared by the generate subcommands.
type generateOpts struct {
	output    string
	precision int
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic instance files",
		Long: `Generate writes instances in the distance-matrix format: the vertex
count on the first line, then one row of weights per line. Without --output
the instance goes to stdout.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "instance file to write (default stdout)")
	cmd.PersistentFlags().IntVar(&opts.precision, "precision", 2, "decimals per weight")

	cmd.AddCommand(c.generateRandomCommand(&opts))
	cmd.AddCommand(c.generateCircleCommand(&opts))
	cmd.AddCommand(c.generateTrapCommand(&opts))

	return cmd
}

// generateRandomCommand creates the "generate random" subcommand.
func (c *CLI) generateRandomCommand(opts *generateOpts) *cobra.Command {
	var (
		n    int
		size float64
		seed int64
	)
	cmd := &cobra.Command{
		Use:     "random",
		Short:   "Uniform random points in a square, Euclidean distances",
		Example: `  tspsolve generate random -n 12 --seed 3 -o Data/rand_12.in`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := generator.RandomUniform(n, size, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			return c.writeInstance(cmd.Context(), d, *opts, fmt.Sprintf("random n=%d seed=%d", n, seed))
		},
	}
	cmd.Flags().IntVarP(&n, "vertices", "n", 10, "number of vertices")
	cmd.Flags().Float64Var(&size, "size", 100, "side of the square")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// generateCircleCommand creates the "generate circle" subcommand.
func (c *CLI) generateCircleCommand(opts *generateOpts) *cobra.Command {
	var (
		k      int
		r1, r2 float64
	)
	cmd := &cobra.Command{
		Use:     "circle",
		Short:   "Two concentric rings of k points each",
		Example: `  tspsolve generate circle -k 8 --r1 10 --r2 12 -o Data/circle_16.in`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := generator.DoubleCircle(k, r1, r2)
			if err != nil {
				return err
			}
			return c.writeInstance(cmd.Context(), d, *opts, fmt.Sprintf("double circle k=%d", k))
		},
	}
	cmd.Flags().IntVarP(&k, "points", "k", 8, "points per ring")
	cmd.Flags().Float64Var(&r1, "r1", 10, "inner radius")
	cmd.Flags().Float64Var(&r2, "r2", 20, "outer radius")

	return cmd
}

// generateTrapCommand creates the "generate trap" subcommand.
func (c *CLI) generateTrapCommand(opts *generateOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "trap",
		Short: "The 4-vertex instance where nearest neighbor costs 13 and the optimum 5",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.writeInstance(cmd.Context(), generator.Trap4(), *opts, "trap")
		},
	}
}

// writeInstance writes d to opts.output, or to the command output if unset.
func (c *CLI) writeInstance(ctx context.Context, d *tsp.Distances, opts generateOpts, label string) error {
	logger := loggerFromContext(ctx)
	if opts.output == "" {
		return instance.Write(c.out, d, opts.precision)
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err = instance.Write(f, d, opts.precision); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Debug("wrote instance", "path", opts.output, "n", d.N())

	c.printSuccess("Generated %s (%d vertices)", label, d.N())
	c.printFile(opts.output)
	c.printNextStep("Solve it", fmt.Sprintf("%s solve %s", appName, opts.output))

	return nil
}

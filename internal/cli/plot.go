package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsolve/bench"
)

// plotCommand creates the plot command.
func (c *CLI) plotCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plot [results.csv]",
		Short: "Render benchmark charts from a results CSV",
		Long: `Plot reads a results CSV written by bench and renders, as PNG:
  performance_{algo}.png   cost and time per instance for one algorithm
  instance_{name}.png      cost and time per algorithm for one instance
  cost_comparison.png      costs of every algorithm across instances
  time_comparison.png      times of every algorithm across instances`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfg.Bench.Output
			if len(args) == 1 {
				path = args[0]
			}
			return c.runPlot(cmd.Context(), path, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "plots", "directory to save charts")

	return cmd
}

func (c *CLI) runPlot(ctx context.Context, path, dir string) error {
	logger := loggerFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	recs, err := bench.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("read results", "path", path, "records", len(recs))

	prog := newProgress(logger)
	if err = c.savePlots(dir, recs); err != nil {
		return err
	}
	prog.done("Rendered charts")

	return nil
}

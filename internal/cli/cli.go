package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsolve/config"
	"github.com/katalvlaran/tspsolve/tsp"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help text and suggested commands.
const appName = "tspsolve"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer     // styled command output
	configPath string        // --config
	cfg        config.Config // defaults overlaid with the config file
}

// New creates a CLI that logs to w at level and prints results to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (not logs) to w.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "tspsolve solves symmetric travelling salesman instances",
		Long: `tspsolve solves the symmetric travelling salesman problem on complete
weighted graphs read from distance-matrix files, with an exact branch and
bound, a nearest-neighbor construction, 2-opt local search and GRASP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML settings file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.plotCommand())

	return root
}

// loadConfig replaces the defaults with the --config file, if one is given.
func (c *CLI) loadConfig() error {
	if c.configPath == "" {
		c.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", c.configPath)

	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseAlgorithms resolves algorithm names; "all" expands to every
// algorithm except the ones that only serve as test oracles.
func parseAlgorithms(names []string) ([]tsp.Algorithm, error) {
	var out []tsp.Algorithm
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.EqualFold(part, "all") {
				out = append(out, tsp.AlgoExact, tsp.AlgoConstructive, tsp.AlgoLocalSearch, tsp.AlgoGRASP)
				continue
			}
			a, err := tsp.ParseAlgorithm(part)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no algorithm selected: %w", tsp.ErrUnsupportedAlgorithm)
	}

	return out, nil
}

func algorithmNames(algos []tsp.Algorithm) []string {
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.String()
	}
	return names
}

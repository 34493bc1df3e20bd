// Package cli wires the glyphroute pipeline to the command line. Library
// packages stay silent; everything human-readable (counts, travel
// statistics, malformed-chunk dumps) goes to stderr so the optimized
// command stream on stdout can be piped straight to the device feeder.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the glyphroute root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "glyphroute",
		Short: "Reorder recorded plotter strokes to cut pen-up travel",
		Long: `glyphroute post-processes a recorded polargraph command stream:
it groups commands into strokes, drops duplicate strokes, and reorders the
rest with a greedy nearest-neighbor heuristic so the carriage spends less
time travelling with the pen lifted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics (per-probe results)")

	cmd.AddCommand(NewOptimizeCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

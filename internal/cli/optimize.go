package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plotterkit/glyphroute/route"
	"github.com/plotterkit/glyphroute/stream"
)

// OptimizeOptions holds flags for the optimize command.
type OptimizeOptions struct {
	*RootOptions
	Output  string
	Config  string
	Probes  int
	Workers int
}

// NewOptimizeCommand creates the optimize command: the full pipeline from
// recorded stream to reordered stream.
func NewOptimizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptimizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "optimize [input]",
		Short: "Emit the input stream reordered for minimal pen-up travel",
		Long: `Read a recorded command stream from a file (or stdin when the argument
is "-" or omitted), drop duplicate strokes, evaluate greedy reorderings from
several probe starts, and emit the best ordering as a replayable command
stream. The stream always opens with a C14,END pen-up so the device starts
lifted.

Example:
  glyphroute optimize recording.txt > optimized.txt
  cat recording.txt | glyphroute optimize --probes 8 --workers 4 -o optimized.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "output file for the command stream (\"-\" for stdout)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "YAML config file with probe settings")
	cmd.Flags().IntVar(&opts.Probes, "probes", 0, "number of evenly spaced greedy probe starts")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "goroutines evaluating probes concurrently")

	return cmd
}

func runOptimize(opts *OptimizeOptions, cmd *cobra.Command, args []string) error {
	log := newLogger(cmd, opts.Verbose)

	var cfg Config
	if opts.Config != "" {
		var err error
		if cfg, err = LoadConfig(opts.Config); err != nil {
			return err
		}
	}
	ropts := resolveOptions(cfg,
		opts.Probes, opts.Workers,
		cmd.Flags().Changed("probes"), cmd.Flags().Changed("workers"))

	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	glyphs, err := loadGlyphs(in, log)
	if err != nil {
		return err
	}
	log.Info("segmented", "glyphs", len(glyphs))

	initial, err := route.Evaluate(glyphs)
	if err != nil {
		return fmt.Errorf("evaluate recorded order: %w", err)
	}
	log.Info("initial order", "penup", initial.PenUp, "total", initial.Total)

	deduped := route.Dedupe(glyphs)
	dstats, err := route.Evaluate(deduped)
	if err != nil {
		return fmt.Errorf("evaluate deduped order: %w", err)
	}
	log.Info("deduped order", "glyphs", len(deduped), "penup", dstats.PenUp, "total", dstats.Total)

	sstats, err := route.Evaluate(route.SortByStart(deduped))
	if err != nil {
		return fmt.Errorf("evaluate sorted order: %w", err)
	}
	log.Info("sorted order", "penup", sstats.PenUp, "total", sstats.Total)

	res, err := route.Optimize(deduped, ropts)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	for _, p := range res.Probes {
		log.Debug("greedy probe", "start", p.Start, "penup", p.PenUp, "total", p.Total)
	}
	log.Info("greedy order", "start", res.Best.Start, "penup", res.Best.PenUp, "total", res.Best.Total)

	out := cmd.OutOrStdout()
	if opts.Output != "" && opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return stream.Write(out, res.Ordering)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotterkit/glyphroute/route"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Config  string
	Probes  int
	Workers int
}

// NewStatsCommand creates the stats command: evaluate every candidate
// ordering without emitting a command stream.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Report travel statistics for each candidate ordering",
		Long: `Read a recorded command stream and report pen-up and total travel for
the unmodified order, the deduplicated order, the sorted-by-start baseline,
and every greedy probe. Emits no command stream.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "YAML config file with probe settings")
	cmd.Flags().IntVar(&opts.Probes, "probes", 0, "number of evenly spaced greedy probe starts")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "goroutines evaluating probes concurrently")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "total glyphs: %d\n", len(glyphs))

	initial, err := route.Evaluate(glyphs)
	if err != nil {
		return fmt.Errorf("evaluate recorded order: %w", err)
	}
	fmt.Fprintf(out, "initial: penup=%d total=%d\n", initial.PenUp, initial.Total)

	deduped := route.Dedupe(glyphs)
	dstats, err := route.Evaluate(deduped)
	if err != nil {
		return fmt.Errorf("evaluate deduped order: %w", err)
	}
	fmt.Fprintf(out, "deduped: glyphs=%d penup=%d total=%d\n", len(deduped), dstats.PenUp, dstats.Total)

	sorted := route.SortByStart(deduped)
	sstats, err := route.Evaluate(sorted)
	if err != nil {
		return fmt.Errorf("evaluate sorted order: %w", err)
	}
	fmt.Fprintf(out, "sorted:  penup=%d total=%d\n", sstats.PenUp, sstats.Total)

	res, err := route.Optimize(deduped, ropts)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	for _, p := range res.Probes {
		fmt.Fprintf(out, "greedy:  start=%d penup=%d total=%d\n", p.Start, p.PenUp, p.Total)
	}
	fmt.Fprintf(out, "best:    start=%d penup=%d total=%d\n", res.Best.Start, res.Best.PenUp, res.Best.Total)

	return nil
}

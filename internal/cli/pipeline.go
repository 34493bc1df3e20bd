package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/plotterkit/glyphroute/plot"
	"github.com/plotterkit/glyphroute/stream"
)

// newLogger builds the stderr diagnostics logger. Verbose lowers the level
// to Debug, which enables the per-probe table.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// openInput resolves the input argument: a path, or stdin for "-" or no
// argument at all.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// loadGlyphs reads and segments the whole input stream, reporting every
// malformed chunk (the run closed but an endpoint could not be resolved)
// the way the original tool dumped them: one line per instruction.
func loadGlyphs(r io.Reader, log *slog.Logger) ([]plot.Glyph, error) {
	insts, err := stream.Read(r)
	if err != nil {
		return nil, fmt.Errorf("read command stream: %w", err)
	}

	glyphs, malformed := plot.Segment(insts)
	for _, g := range malformed {
		log.Warn("problem with instruction set", "instructions", len(g.Instructions))
		for _, inst := range g.Instructions {
			log.Warn("  "+inst.Raw, "kind", inst.Kind.String())
		}
	}

	return glyphs, nil
}

package route

import (
	"errors"

	"github.com/plotterkit/glyphroute/plot"
)

var (
	// ErrNoGlyphs indicates a reorder was requested over an empty glyph set.
	ErrNoGlyphs = errors.New("route: no glyphs to reorder")
	// ErrStartOutOfRange indicates the requested start index is not a valid
	// position in the glyph set.
	ErrStartOutOfRange = errors.New("route: start index out of range")
	// ErrBadOptions indicates an Options combination that cannot be run
	// (non-positive probe count or negative worker count).
	ErrBadOptions = errors.New("route: invalid options")
)

// Options configures multi-probe greedy optimization.
//
// The original behavior probed greedy starts spaced n/15 apart but stopped
// after evaluating the first one. Here the probe count is explicit
// configuration and the documented choice is: run every probe and select
// the ordering with minimum pen-up travel (ties go to the lowest start
// index). See Optimize.
type Options struct {
	// Probes is the number of evenly spaced greedy start indices to
	// evaluate. The effective start set is {0, s, 2s, …} with
	// s = max(1, n/Probes), clipped to n. Must be ≥ 1.
	Probes int

	// Workers bounds the goroutines evaluating probes concurrently.
	// Probe runs share no state, so they fan out safely; 0 or 1 means
	// sequential. Selection is deterministic regardless of scheduling.
	Workers int
}

// DefaultOptions mirrors the original probe spacing: up to 15 starts,
// evaluated sequentially.
func DefaultOptions() Options {
	return Options{Probes: 15, Workers: 1}
}

// Stats holds the two travel statistics of one ordering. Both are
// diagnostic evaluators; neither feeds back into the optimizer.
type Stats struct {
	// PenUp is the summed Chebyshev distance between consecutive glyphs'
	// end and start points — pure transit cost while the pen is lifted.
	PenUp int

	// Total additionally includes in-stroke drawing distance: the summed
	// distance between every consecutive pair of move instructions across
	// the whole flattened ordering.
	Total int
}

// ProbeStats is the outcome of one greedy probe.
type ProbeStats struct {
	// Start is the index in the input glyph set the probe began from.
	Start int

	Stats
}

// Result is the outcome of Optimize.
type Result struct {
	// Ordering is the winning greedy permutation of the input.
	Ordering []plot.Glyph

	// Best identifies the winning probe and its statistics.
	Best ProbeStats

	// Probes lists every evaluated probe in ascending start order.
	Probes []ProbeStats
}

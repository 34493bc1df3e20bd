// Package route - multi-probe dispatcher for the greedy heuristic.
//
// A single greedy run is hostage to its starting glyph: begin somewhere
// pathological and the tour pays for it everywhere. Optimize therefore
// evaluates several evenly spaced start indices and keeps the best
// ordering. Probe runs share no state, so they fan out across workers
// safely; selection stays deterministic regardless of scheduling.
package route

import (
	"sync"

	"github.com/plotterkit/glyphroute/plot"
)

// probeStarts returns the evenly spaced start indices {0, s, 2s, …} with
// s = max(1, n/probes), clipped to n. For n == 0 it returns nil.
//
// Complexity: O(min(n, probes)).
func probeStarts(n, probes int) []int {
	if n == 0 {
		return nil
	}
	stride := n / probes
	if stride < 1 {
		stride = 1
	}
	starts := make([]int, 0, n/stride+1)
	var i int
	for i = 0; i < n; i += stride {
		starts = append(starts, i)
	}

	return starts
}

// Optimize runs the greedy heuristic from every probe start and returns
// the ordering with minimum pen-up travel. Ties between probes break
// toward the lowest start index.
//
// Contract:
//   - gs is the glyph set to route, normally the deduplicated segmenter
//     output; it is never mutated.
//   - opts.Probes ≥ 1 and opts.Workers ≥ 0, else ErrBadOptions.
//   - An empty gs is not an error: the pipeline completes with an empty
//     ordering and zero statistics.
//
// Complexity: O(p·n²) for p probes, fanned across min(p, Workers)
// goroutines when Workers > 1.
func Optimize(gs []plot.Glyph, opts Options) (Result, error) {
	if opts.Probes < 1 || opts.Workers < 0 {
		return Result{}, ErrBadOptions
	}
	if len(gs) == 0 {
		return Result{}, nil
	}

	starts := probeStarts(len(gs), opts.Probes)

	// Each probe writes only its own slot; no shared state between runs.
	type probeRun struct {
		ordering []plot.Glyph
		stats    ProbeStats
		err      error
	}
	runs := make([]probeRun, len(starts))

	runProbe := func(p int) {
		var r probeRun
		r.stats.Start = starts[p]
		r.ordering, r.err = ReorderGreedy(gs, starts[p])
		if r.err == nil {
			r.stats.Stats, r.err = Evaluate(r.ordering)
		}
		runs[p] = r
	}

	workers := opts.Workers
	if workers <= 1 || len(starts) == 1 {
		for p := range starts {
			runProbe(p)
		}
	} else {
		if workers > len(starts) {
			workers = len(starts)
		}
		jobs := make(chan int, len(starts))
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for p := range jobs {
					runProbe(p)
				}
			}()
		}
		for p := range starts {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
	}

	// Deterministic selection: scan in ascending start order, strict <
	// keeps the earliest probe on ties.
	res := Result{Probes: make([]ProbeStats, len(starts))}
	bestIdx := 0
	for p, r := range runs {
		if r.err != nil {
			return Result{}, r.err
		}
		res.Probes[p] = r.stats
		if r.stats.PenUp < runs[bestIdx].stats.PenUp {
			bestIdx = p
		}
	}
	res.Ordering = runs[bestIdx].ordering
	res.Best = runs[bestIdx].stats

	return res, nil
}

// Package route - greedy nearest-neighbor reordering.
//
// The heuristic always moves next to whichever unvisited glyph starts
// closest to the current pen position, without backtracking. Each step
// depends on the previous step's outcome, so this is inherently O(n²)
// point comparisons over a fully materialized candidate set — it cannot be
// collapsed into a sort or run over a single-pass stream.
package route

import "github.com/plotterkit/glyphroute/plot"

// ReorderGreedy returns a permutation of gs that approximately minimizes
// pen-up travel, built by nearest-neighbor selection from the glyph at
// start.
//
// Contract:
//   - gs must be non-empty (ErrNoGlyphs) and start ∈ [0..len(gs)-1]
//     (ErrStartOutOfRange).
//   - Every glyph must have resolvable endpoints; a malformed glyph
//     surfaces plot.ErrMissingCoords instead of a wrong distance.
//   - result[0] is the glyph originally at start; the result holds the
//     same multiset of glyphs as gs, length preserved.
//   - Ties select the first minimizing candidate in the remaining set's
//     current order — stable and deterministic, no secondary metric.
//
// The input slice is never mutated.
//
// Complexity: O(n²) point comparisons, O(n) removals.
func ReorderGreedy(gs []plot.Glyph, start int) ([]plot.Glyph, error) {
	n := len(gs)
	if n == 0 {
		return nil, ErrNoGlyphs
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	// Materialize the remaining-candidate set; every step scans it fully.
	remaining := make([]plot.Glyph, n)
	copy(remaining, gs)

	ordered := make([]plot.Glyph, 0, n)
	ordered = append(ordered, remaining[start])
	remaining = append(remaining[:start], remaining[start+1:]...)

	var (
		current = ordered[0] // pen position is current's end point
		nearest int          // index of the best candidate this step
		best    int          // its distance
		d       int
		i       int
		err     error
	)
	for len(remaining) > 0 {
		nearest = 0
		best, err = PenUpDistance(current, remaining[0])
		if err != nil {
			return nil, err
		}
		for i = 1; i < len(remaining); i++ {
			d, err = PenUpDistance(current, remaining[i])
			if err != nil {
				return nil, err
			}
			// Strict < keeps the first minimizing candidate on ties.
			if d < best {
				best = d
				nearest = i
			}
		}

		current = remaining[nearest]
		ordered = append(ordered, current)
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}

	return ordered, nil
}

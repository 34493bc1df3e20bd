package route

import (
	"sort"

	"github.com/plotterkit/glyphroute/plot"
)

// SortByStart returns a fresh slice ordered lexicographically by the
// glyphs' start points (x first, then y). It is the O(n log n) baseline
// used to sanity-check the greedy heuristic's benefit, never the
// production ordering.
//
// The sort is stable; glyphs without a resolvable start keep their
// relative order at the end of the result.
//
// Complexity: O(n log n).
func SortByStart(gs []plot.Glyph) []plot.Glyph {
	out := make([]plot.Glyph, len(gs))
	copy(out, gs)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Start, out[j].Start
		// Missing starts sort last.
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		if a.X != b.X {
			return a.X < b.X
		}

		return a.Y < b.Y
	})

	return out
}

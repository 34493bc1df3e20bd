package route

import "github.com/plotterkit/glyphroute/plot"

// Dedupe removes structurally identical glyphs, keeping the first
// occurrence and preserving order. The input is never mutated; the result
// is a fresh slice.
//
// Two glyphs are duplicates iff their raw-line sequences are identical.
// The fingerprint is only the fast filter: every fingerprint hit is
// confirmed with full-content comparison, so a digest collision can never
// silently drop a distinct glyph.
//
// Complexity: O(n) amortized fingerprint lookups; content comparison only
// on fingerprint hits.
func Dedupe(gs []plot.Glyph) []plot.Glyph {
	out := make([]plot.Glyph, 0, len(gs))
	// seen maps a fingerprint to the indices in out that carry it.
	seen := make(map[plot.Fingerprint][]int, len(gs))

	var (
		i, j      int
		duplicate bool
	)
	for i = 0; i < len(gs); i++ {
		duplicate = false
		for _, j = range seen[gs[i].ID] {
			if out[j].ContentEqual(gs[i]) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		seen[gs[i].ID] = append(seen[gs[i].ID], len(out))
		out = append(out, gs[i])
	}

	return out
}

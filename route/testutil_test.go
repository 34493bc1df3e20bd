// Package route_test shared fixtures.
//
// Glyph fixtures are built from real command lines through the public plot
// API so tests exercise the same construction path as production.
package route_test

import (
	"fmt"

	"github.com/plotterkit/glyphroute/plot"
)

// glyphAt builds a minimal one-stroke glyph whose start and end both sit at
// (x, y): pen-down, a single move, closing pen-up.
func glyphAt(x, y int) plot.Glyph {
	return plot.NewGlyph(plot.ParseInstructions([]string{
		fmt.Sprintf("C13,%d,%d,END", x, y),
		fmt.Sprintf("C17,%d,%d,END", x, y),
		fmt.Sprintf("C14,%d,%d,END", x, y),
	}))
}

// glyphSegment builds a glyph drawing a straight stroke from (x0, y0) to
// (x1, y1): start and end differ.
func glyphSegment(x0, y0, x1, y1 int) plot.Glyph {
	return plot.NewGlyph(plot.ParseInstructions([]string{
		fmt.Sprintf("C13,%d,%d,END", x0, y0),
		fmt.Sprintf("C17,%d,%d,END", x0, y0),
		fmt.Sprintf("C17,%d,%d,END", x1, y1),
		fmt.Sprintf("C14,%d,%d,END", x1, y1),
	}))
}

// malformedGlyph builds a closed run whose endpoints cannot be resolved.
func malformedGlyph() plot.Glyph {
	return plot.NewGlyph(plot.ParseInstructions([]string{
		"C05,marker",
		"C14,END",
	}))
}

// sameGlyphMultiset reports whether a and b hold the same glyphs, ignoring
// order. Fingerprints identify glyphs; duplicates are counted.
func sameGlyphMultiset(a, b []plot.Glyph) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[plot.Fingerprint]int, len(a))
	for _, g := range a {
		counts[g.ID]++
	}
	for _, g := range b {
		counts[g.ID]--
		if counts[g.ID] < 0 {
			return false
		}
	}

	return true
}

// Package route - travel accounting shared by the optimizer and diagnostics.
//
// Both statistics are pure functions of (ordering, glyph contents); they
// never mutate their input. A malformed glyph reaching either of them is a
// hard precondition violation surfaced as plot.ErrMissingCoords — wrong
// numbers must not propagate silently.
package route

import "github.com/plotterkit/glyphroute/plot"

// PenUpDistance returns the transit cost from a's last drawn position to
// b's first position. Not symmetric in its arguments: it measures the move
// a→b, proportional to the time the device needs while the pen is lifted.
//
// Complexity: O(1).
func PenUpDistance(a, b plot.Glyph) (int, error) {
	return plot.Distance(a.End, b.Start)
}

// PenUpTravel sums PenUpDistance over each consecutive pair in the
// ordering. A single glyph has no pairs, so the sum is 0; so is an empty
// ordering's.
//
// Complexity: O(n).
func PenUpTravel(ordering []plot.Glyph) (int, error) {
	var (
		sum int // accumulated transit cost
		d   int // distance of the current pair
		err error
		i   int
	)
	for i = 1; i < len(ordering); i++ {
		d, err = PenUpDistance(ordering[i-1], ordering[i])
		if err != nil {
			return 0, err
		}
		sum += d
	}

	return sum, nil
}

// TotalTravel flattens every glyph's instructions in ordering order down to
// the move instructions and sums the distance between each consecutive pair
// of move coordinates across the entire flattened stream. Unlike
// PenUpTravel it therefore also captures in-stroke drawing distance.
//
// With zero or one move instructions the result is 0.
//
// Complexity: O(total instruction count).
func TotalTravel(ordering []plot.Glyph) (int, error) {
	var (
		sum  int
		d    int
		prev *plot.Point // coords of the previous move instruction
		seen bool        // whether any move instruction precedes the current one
		err  error
	)
	for _, g := range ordering {
		for _, inst := range g.Instructions {
			if inst.Kind != plot.KindMove {
				continue
			}
			if seen {
				// Fails fast on a move whose coordinates did not parse.
				d, err = plot.Distance(prev, inst.Coords)
				if err != nil {
					return 0, err
				}
				sum += d
			}
			prev = inst.Coords
			seen = true
		}
	}

	return sum, nil
}

// Evaluate computes both statistics of an ordering in one call.
//
// Complexity: O(total instruction count).
func Evaluate(ordering []plot.Glyph) (Stats, error) {
	penup, err := PenUpTravel(ordering)
	if err != nil {
		return Stats{}, err
	}
	total, err := TotalTravel(ordering)
	if err != nil {
		return Stats{}, err
	}

	return Stats{PenUp: penup, Total: total}, nil
}

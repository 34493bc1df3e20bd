package plot

// Chebyshev returns the max-norm distance max(|dx|, |dy|) between p and q.
//
// The polargraph drives its two axes concurrently at equal speed, so the
// time to travel between two points is bounded by whichever axis has to
// move farther, not by the Euclidean distance.
//
// Symmetric: Chebyshev(p, q) == Chebyshev(q, p). Chebyshev(p, p) == 0.
//
// Complexity: O(1).
func Chebyshev(p, q Point) int {
	dx := q.X - p.X
	if dx < 0 {
		dx = -dx
	}
	dy := q.Y - p.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}

	return dy
}

// Distance is the fail-fast boundary of the metric: it rejects absent
// coordinates with ErrMissingCoords instead of silently returning a wrong
// number.
//
// Complexity: O(1).
func Distance(p, q *Point) (int, error) {
	if p == nil || q == nil {
		return 0, ErrMissingCoords
	}

	return Chebyshev(*p, *q), nil
}

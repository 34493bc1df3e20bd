package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotterkit/glyphroute/plot"
	"github.com/plotterkit/glyphroute/route"
)

// grid builds n glyphs laid out on a wandering path so that probe starts
// genuinely differ in pen-up travel.
func grid(n int) []plot.Glyph {
	gs := make([]plot.Glyph, 0, n)
	for i := 0; i < n; i++ {
		// Alternate far ends of the bed to make the recorded order costly.
		x := (i % 7) * 40
		y := (i * 13) % 100
		gs = append(gs, glyphAt(x, y))
	}

	return gs
}

func TestOptimize_SelectsMinimumPenUpProbe(t *testing.T) {
	gs := grid(20)

	res, err := route.Optimize(gs, route.Options{Probes: 5, Workers: 1})
	require.NoError(t, err)
	require.Len(t, res.Ordering, len(gs))
	require.True(t, sameGlyphMultiset(gs, res.Ordering))

	// Best must hold the minimum pen-up travel among all probes, and on
	// ties the lowest start index.
	for _, p := range res.Probes {
		require.GreaterOrEqual(t, p.PenUp, res.Best.PenUp)
		if p.PenUp == res.Best.PenUp {
			require.GreaterOrEqual(t, p.Start, res.Best.Start)
		}
	}
}

func TestOptimize_ProbeStartsAreEvenlySpaced(t *testing.T) {
	gs := grid(30)

	res, err := route.Optimize(gs, route.Options{Probes: 15, Workers: 1})
	require.NoError(t, err)

	// stride = 30/15 = 2 → starts 0, 2, 4, …, 28.
	require.Len(t, res.Probes, 15)
	for i, p := range res.Probes {
		require.Equal(t, i*2, p.Start)
	}
}

func TestOptimize_MoreProbesThanGlyphs(t *testing.T) {
	gs := grid(4)

	// stride clamps to 1: every glyph becomes a start.
	res, err := route.Optimize(gs, route.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Probes, 4)
}

func TestOptimize_ParallelMatchesSequential(t *testing.T) {
	gs := grid(25)

	seq, err := route.Optimize(gs, route.Options{Probes: 10, Workers: 1})
	require.NoError(t, err)
	par, err := route.Optimize(gs, route.Options{Probes: 10, Workers: 4})
	require.NoError(t, err)

	// Probe fan-out must not change any outcome.
	require.Equal(t, seq.Best, par.Best)
	require.Equal(t, seq.Probes, par.Probes)
	require.Len(t, par.Ordering, len(seq.Ordering))
	for i := range seq.Ordering {
		require.Equal(t, seq.Ordering[i].ID, par.Ordering[i].ID)
	}
}

func TestOptimize_EmptyInputCompletes(t *testing.T) {
	res, err := route.Optimize(nil, route.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res.Ordering)
	require.Empty(t, res.Probes)
	require.Equal(t, route.ProbeStats{}, res.Best)
}

func TestOptimize_BadOptions(t *testing.T) {
	gs := grid(3)

	_, err := route.Optimize(gs, route.Options{Probes: 0, Workers: 1})
	require.ErrorIs(t, err, route.ErrBadOptions)

	_, err = route.Optimize(gs, route.Options{Probes: 5, Workers: -1})
	require.ErrorIs(t, err, route.ErrBadOptions)
}

func TestOptimize_NeverWorseThanRecordedOrderOnScenario(t *testing.T) {
	// G1(0,0), G2(10,0), G3(5,5): recorded order costs 15. With every
	// glyph probed, the greedy tours cost 10 (start 0), 10 (start 1) and
	// 15 (start 2); the winner is start 0 at 10.
	gs := []plot.Glyph{glyphAt(0, 0), glyphAt(10, 0), glyphAt(5, 5)}

	recorded, err := route.PenUpTravel(gs)
	require.NoError(t, err)
	require.Equal(t, 15, recorded)

	res, err := route.Optimize(gs, route.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 10, res.Best.PenUp)
	require.Equal(t, 0, res.Best.Start)
	require.LessOrEqual(t, res.Best.PenUp, recorded)
}

// Package glyphroute turns a recorded polargraph command stream into one
// the device can replay faster, by cutting the distance the carriage
// travels with the pen lifted.
//
// 🚀 What does glyphroute do?
//
//	A small, deterministic batch pipeline:
//		• Parse: one typed Instruction per raw command line (C13/C14/C17)
//		• Segment: group instructions into glyphs at pen-up boundaries
//		• Dedupe: drop strokes recorded twice, first occurrence wins
//		• Route: greedy nearest-neighbor reordering under the Chebyshev metric
//		• Emit: the chosen ordering, verbatim lines, led by a C14,END pen-up
//
// ✨ Why Chebyshev?
//
//	The plotter drives both axes concurrently at equal speed, so travel time
//	between two points is governed by whichever axis moves farther — the
//	max norm, not the Euclidean distance.
//
// Everything is organized under four subpackages and a CLI:
//
//	plot/   — instructions, glyphs, segmentation & the distance metric
//	route/  — dedupe, travel accounting, greedy reordering, probe dispatch
//	stream/ — reading raw lines, emitting the replayable command stream
//	cmd/glyphroute — the optimize/stats command-line front end
//
// The reordering is an explicit heuristic: it reliably beats the recorded
// order, but makes no claim of global minimality.
package glyphroute

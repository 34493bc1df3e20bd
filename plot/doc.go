// Package plot provides the leaf domain types of the glyphroute pipeline:
// typed plotter instructions, glyphs (pen-down…pen-up strokes), the
// Chebyshev distance metric, and the segmenter that groups an instruction
// stream into glyphs.
//
// It supports:
//
//   - Parsing one raw command line into an immutable Instruction
//   - Chebyshev (max-norm) distance between integer points
//   - Single-pass segmentation of an instruction stream at pen-up boundaries
//   - Content fingerprints over a glyph's raw lines for deduplication
//
// The package performs no I/O and no logging; malformed data is represented
// (absent coordinates, malformed glyphs) or surfaced as sentinel errors,
// never panicked on.
package plot

// Package route reorders deduplicated glyphs to shorten the pen-up travel a
// plotter spends moving between strokes.
//
// It provides the composable stages that follow segmentation:
//
//   - Dedupe        — drop structurally identical glyphs, first occurrence wins
//   - PenUpTravel   — inter-glyph transit cost of an ordering
//   - TotalTravel   — full travel including in-stroke drawing distance
//   - SortByStart   — O(n log n) baseline ordering, comparison only
//   - ReorderGreedy — O(n²) nearest-neighbor heuristic from one start glyph
//   - Optimize      — evaluate several greedy probe starts, keep the best
//
// Every stage is deterministic and side-effect free: inputs are never
// mutated, ties break toward the earliest candidate in the current order,
// and no randomness is involved anywhere. The heuristic makes no optimality
// guarantee; it only has to beat the recorded order in practice.
package route

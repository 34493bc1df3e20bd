package plot

import "crypto/sha256"

// NewGlyph builds an immutable Glyph from a finished chunk of instructions.
// The chunk is copied; callers may reuse their slice.
//
// Endpoints:
//   - Start — coords of the first instruction.
//   - End   — coords of the second-to-last instruction (the position drawn
//     immediately before the closing pen-up, which may omit its own coords).
//
// A chunk shorter than two instructions, or one whose endpoints are absent,
// yields a malformed glyph (Glyph.Malformed() == true); construction itself
// never fails so the caller can report the offending chunk diagnostically.
//
// Complexity: O(len(chunk) + total line bytes) for the copy and fingerprint.
func NewGlyph(chunk []Instruction) Glyph {
	insts := make([]Instruction, len(chunk))
	copy(insts, chunk)

	g := Glyph{Instructions: insts, ID: fingerprint(insts)}
	if len(insts) >= 2 {
		g.Start = insts[0].Coords
		g.End = insts[len(insts)-2].Coords
	}

	return g
}

// fingerprint digests the newline-joined raw lines of the run.
// SHA-256 keeps accidental collisions out of reach, but deduplication still
// confirms every fingerprint match with ContentEqual.
func fingerprint(insts []Instruction) Fingerprint {
	h := sha256.New()
	var i int
	for i = 0; i < len(insts); i++ {
		if i > 0 {
			_, _ = h.Write([]byte{'\n'})
		}
		_, _ = h.Write([]byte(insts[i].Raw))
	}

	var id Fingerprint
	copy(id[:], h.Sum(nil))

	return id
}

// Segment groups an ordered instruction stream into glyphs, one per
// non-trivial pen-down…pen-up run, in recorded order.
//
// The stream is consumed once, left to right, accumulating a chunk:
//   - every instruction joins the current chunk;
//   - a pen-up closes the chunk into a glyph when the chunk holds more than
//     the pen-up itself, and discards it otherwise (a lone pen-up is not a
//     drawable stroke);
//   - a trailing chunk with no closing pen-up is discarded.
//
// Glyphs whose endpoints cannot be resolved are returned separately in
// malformed so the caller can report them; they never reach routing.
//
// Complexity: O(n) over the instruction count.
func Segment(insts []Instruction) (glyphs, malformed []Glyph) {
	var chunk []Instruction

	var i int
	for i = 0; i < len(insts); i++ {
		chunk = append(chunk, insts[i])
		if insts[i].Kind != KindPenUp {
			continue
		}
		if len(chunk) > 1 {
			g := NewGlyph(chunk)
			if g.Malformed() {
				malformed = append(malformed, g)
			} else {
				glyphs = append(glyphs, g)
			}
		}
		chunk = chunk[:0]
	}

	return glyphs, malformed
}

package plot

import (
	"crypto/sha256"
	"errors"
)

// ErrMissingCoords indicates a distance computation touched an instruction
// or glyph endpoint whose coordinates are absent. Absent coordinates are a
// legal parse result (markers, terminators), but feeding them into the
// distance metric is a hard precondition violation: the caller must fail
// fast rather than propagate a wrong numeric result.
var ErrMissingCoords = errors.New("plot: coordinates absent")

// Kind classifies an instruction by its effect on the pen.
type Kind int

const (
	// KindOther marks every typecode outside the fixed table below.
	KindOther Kind = iota

	// KindPenDown lowers the pen onto the medium (typecode C13).
	KindPenDown

	// KindPenUp lifts the pen; glyph boundary (typecode C14).
	KindPenUp

	// KindMove drives the carriage to an absolute position (typecode C17).
	KindMove
)

// String returns a short lower-case name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPenDown:
		return "pendown"
	case KindPenUp:
		return "penup"
	case KindMove:
		return "move"
	default:
		return "other"
	}
}

// Point is an absolute carriage position in device units.
type Point struct {
	X int
	Y int
}

// Instruction is one parsed command line. Instances are created once by
// ParseInstruction and never mutated afterwards.
//
// Raw preserves the original line (minus trailing whitespace) byte-for-byte
// so the pipeline can re-emit commands it does not understand.
type Instruction struct {
	// Typecode is the first comma-separated field, verbatim.
	Typecode string

	// Kind is Typecode mapped through the fixed typecode table.
	Kind Kind

	// Coords holds the integer (x, y) arguments when fields 1 and 2 parse
	// as integers; nil otherwise. nil is not an error condition.
	Coords *Point

	// Raw is the original line trimmed of trailing whitespace.
	Raw string
}

// FingerprintSize is the byte length of a glyph content fingerprint.
const FingerprintSize = sha256.Size

// Fingerprint is a content digest over a glyph's ordered raw lines.
// Equality of fingerprints is a fast filter only; correctness-sensitive
// deduplication must confirm with Glyph.ContentEqual.
type Fingerprint [FingerprintSize]byte

// Glyph is one contiguous run of instructions ending at a pen-up boundary
// (inclusive of the closing pen-up). Glyphs are built once by the segmenter
// and never mutated; reordering moves whole Glyph values around.
type Glyph struct {
	// Instructions is the ordered run, length ≥ 2 for well-formed glyphs.
	Instructions []Instruction

	// Start is the coordinates of the first instruction; nil if absent.
	Start *Point

	// End is the coordinates of the instruction immediately preceding the
	// closing pen-up — the last drawn position. nil if absent.
	End *Point

	// ID is the content fingerprint over all raw lines in order.
	ID Fingerprint
}

// Malformed reports whether either endpoint is unresolvable. Malformed
// glyphs are excluded from routing; any distance computation involving one
// returns ErrMissingCoords.
func (g Glyph) Malformed() bool {
	return g.Start == nil || g.End == nil
}

// ContentEqual reports whether g and other carry identical raw-line
// sequences. This is the collision-safe equality backing deduplication:
// fingerprint equality alone must never decide that two glyphs are the same.
//
// Complexity: O(total line bytes).
func (g Glyph) ContentEqual(other Glyph) bool {
	if len(g.Instructions) != len(other.Instructions) {
		return false
	}
	var i int
	for i = 0; i < len(g.Instructions); i++ {
		if g.Instructions[i].Raw != other.Instructions[i].Raw {
			return false
		}
	}

	return true
}

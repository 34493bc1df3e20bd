// Package stream is the I/O boundary of the glyphroute pipeline: it reads
// raw command lines into instructions and re-emits a chosen glyph ordering
// as a command stream the device can replay.
//
// Emission is verbatim: every instruction's original raw line is written
// untouched, so commands the pipeline does not understand survive a round
// trip byte-for-byte (minus trailing whitespace).
package stream

import (
	"bufio"
	"io"

	"github.com/plotterkit/glyphroute/plot"
)

// PenUpSentinel is the line forced at the top of every emitted stream. It
// guarantees the device starts from a known lifted state regardless of
// where the previous job left the pen.
const PenUpSentinel = "C14,END"

// Read parses every line of r into an Instruction, in order. Blank lines
// are kept: they parse to kind-other instructions with an empty raw line,
// preserving the stream verbatim.
//
// Complexity: O(input bytes).
func Read(r io.Reader) ([]plot.Instruction, error) {
	var insts []plot.Instruction

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		insts = append(insts, plot.ParseInstruction(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return insts, nil
}

// Write emits the command stream for an ordering: the pen-up sentinel
// first, then every instruction of every glyph as its original raw line,
// in-glyph order preserved. An empty ordering emits just the sentinel.
//
// Complexity: O(output bytes).
func Write(w io.Writer, ordering []plot.Glyph) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(PenUpSentinel + "\n"); err != nil {
		return err
	}
	for _, g := range ordering {
		for _, inst := range g.Instructions {
			if _, err := bw.WriteString(inst.Raw + "\n"); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

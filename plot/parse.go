package plot

import (
	"strconv"
	"strings"
)

// kindByTypecode is the fixed typecode→kind table. Unlisted typecodes map
// to KindOther and pass through the pipeline untouched.
var kindByTypecode = map[string]Kind{
	"C13": KindPenDown,
	"C14": KindPenUp,
	"C17": KindMove,
}

// ParseInstruction turns one raw command line into an Instruction.
//
// The line is trimmed of trailing whitespace and split on commas. Field 0
// is the typecode; fields 1 and 2 form the coordinates when both parse as
// integers. A failed coordinate parse is not an error — sentinel and marker
// lines legitimately lack coordinates — so no error is ever returned.
//
// Complexity: O(len(line)).
func ParseInstruction(line string) Instruction {
	raw := strings.TrimRight(line, " \t\r\n")
	fields := strings.Split(raw, ",")

	inst := Instruction{
		Typecode: fields[0],
		Kind:     kindByTypecode[fields[0]],
		Raw:      raw,
	}

	// Best-effort coordinate extraction; absence is represented, not thrown.
	if len(fields) >= 3 {
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX == nil && errY == nil {
			inst.Coords = &Point{X: x, Y: y}
		}
	}

	return inst
}

// ParseInstructions applies ParseInstruction to every line in order.
//
// Complexity: O(total input bytes).
func ParseInstructions(lines []string) []Instruction {
	out := make([]Instruction, len(lines))
	var i int
	for i = 0; i < len(lines); i++ {
		out[i] = ParseInstruction(lines[i])
	}

	return out
}

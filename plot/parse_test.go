package plot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotterkit/glyphroute/plot"
)

func TestParseInstruction_KnownTypecodes(t *testing.T) {
	cases := []struct {
		line string
		kind plot.Kind
	}{
		{"C13,100,200,END", plot.KindPenDown},
		{"C14,100,200,END", plot.KindPenUp},
		{"C17,100,200,END", plot.KindMove},
		{"C09,300,END", plot.KindOther},
		{"START", plot.KindOther},
	}
	for _, tc := range cases {
		got := plot.ParseInstruction(tc.line)
		if got.Kind != tc.kind {
			t.Fatalf("ParseInstruction(%q).Kind = %v, want %v", tc.line, got.Kind, tc.kind)
		}
	}
}

func TestParseInstruction_Coords(t *testing.T) {
	inst := plot.ParseInstruction("C17,120,-45,END")
	require.NotNil(t, inst.Coords)
	require.Equal(t, plot.Point{X: 120, Y: -45}, *inst.Coords)
}

func TestParseInstruction_AbsentCoordsAreRepresented(t *testing.T) {
	// Sentinel and marker lines legitimately lack integer arguments;
	// parsing must represent that, not fail.
	for _, line := range []string{"C14,END", "C17,abc,12", "C17,12", "C13", ""} {
		inst := plot.ParseInstruction(line)
		if inst.Coords != nil {
			t.Fatalf("ParseInstruction(%q).Coords = %v, want nil", line, *inst.Coords)
		}
	}
}

func TestParseInstruction_RawTrimsTrailingWhitespaceOnly(t *testing.T) {
	inst := plot.ParseInstruction("C17,10,20,END\r\n")
	require.Equal(t, "C17,10,20,END", inst.Raw)

	// Leading content is preserved verbatim; only the tail is trimmed.
	inst = plot.ParseInstruction("  C17,10,20  ")
	require.Equal(t, "  C17,10,20", inst.Raw)
}

func TestParseInstruction_TypecodeVerbatim(t *testing.T) {
	inst := plot.ParseInstruction("C99,whatever,args")
	require.Equal(t, "C99", inst.Typecode)
	require.Equal(t, plot.KindOther, inst.Kind)
}

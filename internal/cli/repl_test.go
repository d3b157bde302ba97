package cli

import (
	"bytes"
	"testing"

	"github.com/zbalkan/fc/pkg/fc"
)

func TestREPLRunOnce_WrongPathCountDoesNotPanic(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	r := &REPL{
		Out:    NewOutput(&stdout, &stderr),
		Base:   fc.Config{Mode: fc.TextASCII, ResyncLines: fc.DefaultResyncLines},
		FSComp: fc.Compare,
	}

	// A bare "/I" is a valid ParseArgs input (zero paths allowed alongside
	// Interactive) but runOnce still needs exactly two paths to compare;
	// it must report an error instead of indexing parsed.Paths out of range.
	r.runOnce([]string{"/I"})

	if stderr.Len() == 0 {
		t.Error("expected a diagnostic on stderr for a path-less REPL line")
	}
}

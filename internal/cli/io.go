package cli

import (
	"fmt"
	"io"
)

// Output wraps the two streams a comparison report is written to.
type Output struct {
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates an Output writing to out and errOut.
func NewOutput(out, errOut io.Writer) *Output {
	return &Output{out: out, errOut: errOut}
}

// Println writes to stdout.
func (o *Output) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *Output) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *Output) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

package report

import (
	"FileCompare/internal/compare"
	"fmt"
	"io"
)

// Printer writes the human-readable outcome of a comparison. A silent
// Printer writes nothing.
type Printer struct {
	Out    io.Writer
	Err    io.Writer
	Silent bool
}

// Result prints the outcome message for a comparison of pathA and pathB.
func (p Printer) Result(pathA, pathB string, res compare.Result) {
	if p.Silent {
		return
	}
	switch res.Kind {
	case compare.Identical:
		fmt.Fprintln(p.Out, "Files are identical")
	case compare.LengthMismatch:
		fmt.Fprintf(p.Out, "cmp: EOF on %s\n", res.ShorterName)
	case compare.ContentMismatch:
		fmt.Fprintf(p.Out, "%s %s %d differ: %o %o\n", pathA, pathB, res.Position(), res.ByteA, res.ByteB)
	}
}

// Error prints an I/O failure to the diagnostic stream.
func (p Printer) Error(err error) {
	if p.Silent || err == nil {
		return
	}
	fmt.Fprintf(p.Err, "Error: %v\n", err)
}

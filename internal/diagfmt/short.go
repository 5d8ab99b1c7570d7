package diagfmt

import (
	"fmt"
	"io"

	"wireweave/internal/diag"
	"wireweave/internal/source"
)

// Short печатает по одной строке на диагностику:
// <path>:<line>:<col>: <severity> <CODE>: <message>
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		f := fileOf(fs, d.Primary)
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", d.Severity.Label(), d.Code.ID(), d.Message)
			continue
		}
		pos := f.Position(d.Primary.Start)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", displayPath(f, fs, mode), pos.Line, pos.Col, d.Severity.Label(), d.Code.ID(), d.Message)
	}
}

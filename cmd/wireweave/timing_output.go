package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"wireweave/internal/observ"
)

// printTimings writes the phase report; asJSON keeps stderr machine-readable
// when diagnostics go out as JSON.
func printTimings(out io.Writer, timer *observ.Timer, asJSON bool) {
	if out == nil || timer == nil {
		return
	}
	if asJSON {
		data, err := json.Marshal(timer.Report())
		if err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
			panic(err)
		}
		return
	}
	if _, err := io.WriteString(out, timer.Summary()); err != nil {
		panic(err)
	}
}

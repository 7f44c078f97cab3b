// Package render turns style runs into terminal output. It is stateless:
// rendering the same line twice yields byte-identical output.
package render

import (
	"fmt"
	"strings"

	"github.com/adversing/ccat/internal/highlight"
)

// Options control the per-line output shape.
type Options struct {
	// LineNumbers prepends a right-aligned, space-padded number of minimum
	// width 4 followed by " | ". Wider numbers widen the field.
	LineNumbers bool

	// Reset appends an SGR reset after each line. Off by default: the
	// baseline output leaves the last color active and never touches the
	// background.
	Reset bool
}

const resetSeq = "\x1b[0m"

// Line renders one line of style runs. Each run is wrapped in a truecolor
// foreground escape derived from its resolved style; runs concatenate with
// no separator and keep their original line-ending characters verbatim.
func Line(number int, runs []highlight.Run, opts Options) string {
	var sb strings.Builder

	if opts.LineNumbers {
		fmt.Fprintf(&sb, "%4d | ", number)
	}

	for _, run := range runs {
		if run.Style.Colour.IsSet() {
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", run.Style.Colour.Red(), run.Style.Colour.Green(), run.Style.Colour.Blue())
		}
		sb.WriteString(run.Text)
	}

	if opts.Reset {
		sb.WriteString(resetSeq)
	}

	return sb.String()
}

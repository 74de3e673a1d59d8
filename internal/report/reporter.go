// Package report writes conformance results to the console.
package report

import (
	"fmt"
	"io"

	"github.com/andyballingall/fmtcheck/internal/conformance"
)

// Message is the diagnostic text shared by every non-conforming line.
const Message = "format is not conforming to the current style"

// UnlocalizedMessage is reported when replacements could not be mapped to a line.
const UnlocalizedMessage = Message + ", but the script failed to point the line (BUG)"

// Reporter writes a Result to w.
type Reporter interface {
	Write(w io.Writer, r *conformance.Result) error
}

// New returns the Reporter for the given output format.
func New(format string, useColour bool) (Reporter, error) {
	switch format {
	case "", "text":
		return &TextReporter{UseColour: useColour}, nil
	case "json":
		return &JSONReporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

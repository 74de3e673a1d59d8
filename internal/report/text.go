package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/andyballingall/fmtcheck/internal/conformance"
)

// TextReporter writes compiler-style diagnostics, one line per affected line.
type TextReporter struct {
	// UseColour highlights the error label. Terminal detection follows the
	// process stdout (color.NoColor), not the writer passed to Write.
	UseColour bool
}

var errorLabel = color.New(color.FgRed, color.Bold)

func (tr *TextReporter) label() string {
	if !tr.UseColour || color.NoColor {
		return "error:"
	}
	return errorLabel.Sprint("error:")
}

func (tr *TextReporter) Write(w io.Writer, r *conformance.Result) error {
	for _, d := range r.Diagnostics {
		if _, err := fmt.Fprintf(w, "%s:%d: %s %s\n", d.Path, d.Line, tr.label(), Message); err != nil {
			return err
		}
	}
	if r.Unlocalized {
		if _, err := fmt.Fprintf(w, "%s:1: %s %s\n", r.Path, tr.label(), UnlocalizedMessage); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"encoding/json"
	"io"

	"github.com/andyballingall/fmtcheck/internal/conformance"
)

// JSONReporter writes the Result as a single JSON document.
type JSONReporter struct{}

type jsonDiagnostic struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type jsonOutput struct {
	Path         string           `json:"path"`
	Conforming   bool             `json:"conforming"`
	Replacements int              `json:"replacements"`
	Exhausted    bool             `json:"exhausted"`
	Unlocalized  bool             `json:"unlocalized"`
	Diagnostics  []jsonDiagnostic `json:"diagnostics"`
}

func (jr *JSONReporter) Write(w io.Writer, r *conformance.Result) error {
	out := jsonOutput{
		Path:         r.Path,
		Conforming:   r.Conforming(),
		Replacements: r.Replacements,
		Exhausted:    r.Exhausted,
		Unlocalized:  r.Unlocalized,
		Diagnostics:  make([]jsonDiagnostic, 0, len(r.Diagnostics)),
	}
	for _, d := range r.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{Line: d.Line, Message: Message})
	}
	if r.Unlocalized {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{Line: 1, Message: UnlocalizedMessage})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

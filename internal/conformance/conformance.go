// Package conformance maps formatter replacements back onto the lines of the
// file they apply to.
package conformance

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/andyballingall/fmtcheck/internal/replacement"
)

// Diagnostic names a line whose byte span holds at least one replacement.
type Diagnostic struct {
	Path string
	Line int
}

// Result is the outcome of a single localization pass over a file.
type Result struct {
	Path         string
	Replacements int
	Diagnostics  []Diagnostic

	// Exhausted is set when the last replacement was consumed mid-scan.
	// The scan stops at that point and no later line is examined.
	Exhausted bool

	// Unlocalized is set when replacements exist but none fell inside any
	// line span, e.g. when offsets point past the end of the file.
	Unlocalized bool
}

// Conforming reports whether the formatter proposed no edits at all.
func (r *Result) Conforming() bool {
	return r.Replacements == 0
}

// scan carries the per-pass state. cursor only moves forward.
type scan struct {
	reps   []replacement.Replacement
	cursor int
}

func (s *scan) current() replacement.Replacement {
	return s.reps[s.cursor]
}

// advance moves to the next replacement and reports whether one is left.
func (s *scan) advance() bool {
	s.cursor++
	return s.cursor < len(s.reps)
}

// Check walks r line by line and records one Diagnostic per line whose
// half-open span [start, start+len(line)) contains the offset of the current
// replacement. reps must be in ascending offset order.
func Check(r io.Reader, path string, reps []replacement.Replacement) (*Result, error) {
	res := &Result{Path: path, Replacements: len(reps)}
	if len(reps) == 0 {
		return res, nil
	}

	s := &scan{reps: reps}
	br := bufio.NewReader(r)
	var currentOffset int64
	currentLine := 1

	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if len(line) == 0 {
			break
		}

		nextOffset := currentOffset + int64(len(line))
		warned := false
		for off := s.current().Offset; off >= currentOffset && off < nextOffset; off = s.current().Offset {
			if !warned {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{Path: path, Line: currentLine})
				warned = true
			}
			if !s.advance() {
				res.Exhausted = true
				return res, nil
			}
		}

		currentLine++
		currentOffset = nextOffset
		if err != nil {
			break
		}
	}

	res.Unlocalized = len(res.Diagnostics) == 0
	return res, nil
}

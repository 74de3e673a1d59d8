package app

import (
	"errors"
	"fmt"
)

// ErrNotConforming is returned when the formatter proposed at least one
// replacement. The diagnostics have already been written to stdout, so Run
// does not print it.
var ErrNotConforming = errors.New("file is not conforming to the current style")

type MissingInputError struct {
	Path    string
	Wrapped error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %s cannot be read: %v", e.Path, e.Wrapped)
}

func (e *MissingInputError) Unwrap() error {
	return e.Wrapped
}

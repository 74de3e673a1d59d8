package formatter

import (
	"fmt"
)

// StartError reports a formatter binary that could not be executed.
type StartError struct {
	Binary  string
	Wrapped error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to run formatter %s: %v", e.Binary, e.Wrapped)
}

func (e *StartError) Unwrap() error {
	return e.Wrapped
}

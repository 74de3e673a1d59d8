package replacement

import (
	"fmt"
)

// ParseError reports formatter output that violates the replacement list contract.
type ParseError struct {
	Reason  string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("formatter output is not a valid replacement list: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("formatter output is not a valid replacement list: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

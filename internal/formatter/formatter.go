// Package formatter runs the external formatting tool.
package formatter

import (
	"context"
)

// DefaultStyle asks clang-format to look up the nearest .clang-format file.
const DefaultStyle = "file"

// Formatter defines how the replacement list for a file is obtained.
type Formatter interface {
	// Replacements runs the tool against file without modifying it and
	// returns its captured standard output.
	Replacements(ctx context.Context, file string) ([]byte, error)
}

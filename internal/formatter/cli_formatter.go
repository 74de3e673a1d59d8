package formatter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Ensure the interface is satisfied.
var _ Formatter = (*CLIFormatter)(nil)

// CLIFormatter invokes a clang-format compatible binary.
type CLIFormatter struct {
	Binary    string
	Style     string
	ExtraArgs []string
	logger    *slog.Logger
}

// NewCLIFormatter creates a CLIFormatter for the given binary and style.
// An empty style falls back to DefaultStyle.
func NewCLIFormatter(logger *slog.Logger, binary, style string, extraArgs []string) *CLIFormatter {
	if style == "" {
		style = DefaultStyle
	}
	return &CLIFormatter{
		Binary:    binary,
		Style:     style,
		ExtraArgs: extraArgs,
		logger:    logger.With("component", "formatter"),
	}
}

// Args returns the command line passed to the binary for file.
func (f *CLIFormatter) Args(file string) []string {
	args := make([]string, 0, len(f.ExtraArgs)+3)
	args = append(args, "-style="+f.Style)
	args = append(args, f.ExtraArgs...)
	return append(args, "--output-replacements-xml", file)
}

// Replacements runs the binary to completion and returns its stdout.
// A non-zero exit status is logged but does not fail the call: only the
// captured output decides conformance.
func (f *CLIFormatter) Replacements(ctx context.Context, file string) ([]byte, error) {
	args := f.Args(file)
	f.logger.Debug("running formatter", "binary", f.Binary, "args", strings.Join(args, " "))

	//nolint:gosec // the binary is chosen by the caller on purpose
	cmd := exec.CommandContext(ctx, f.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &StartError{Binary: f.Binary, Wrapped: err}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("formatter interrupted: %w", ctxErr)
		}
		f.logger.Warn("formatter exited with non-zero status",
			"status", exitErr.ExitCode(), "stderr", strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

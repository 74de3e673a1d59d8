package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/andyballingall/fmtcheck/internal/conformance"
	"github.com/andyballingall/fmtcheck/internal/formatter"
	"github.com/andyballingall/fmtcheck/internal/replacement"
	"github.com/andyballingall/fmtcheck/internal/report"
)

// Checker defines the conformance check of a single file.
type Checker interface {
	// CheckFile writes diagnostics for file and returns ErrNotConforming
	// when the formatter proposed any replacement.
	CheckFile(ctx context.Context, file string) error
	// Close releases resources held by the checker.
	Close() error
}

// Ensure the interface is satisfied.
var _ Checker = (*LazyChecker)(nil)

// LazyChecker acts as a placeholder for a real Checker, allowing its
// dependencies to be built once the flags are parsed.
type LazyChecker struct {
	inner Checker
}

func (l *LazyChecker) SetInner(c Checker) {
	l.inner = c
}

// HasInner returns true if the inner checker has been set.
func (l *LazyChecker) HasInner() bool {
	return l.inner != nil
}

func (l *LazyChecker) CheckFile(ctx context.Context, file string) error {
	if l.inner == nil {
		panic("LazyChecker accessed before initialization; check command wiring.")
	}
	return l.inner.CheckFile(ctx, file)
}

// Close is a no-op until the inner checker is set.
func (l *LazyChecker) Close() error {
	if l.inner == nil {
		return nil
	}
	return l.inner.Close()
}

// Ensure the interface is satisfied.
var _ Checker = (*CLIChecker)(nil)

// CLIChecker runs the formatter and reports through a report.Reporter.
type CLIChecker struct {
	logger    *slog.Logger
	formatter formatter.Formatter
	reporter  report.Reporter
	stdout    io.Writer
	closer    io.Closer
}

func NewCLIChecker(
	l *slog.Logger,
	f formatter.Formatter,
	r report.Reporter,
	stdout io.Writer,
	closer io.Closer,
) *CLIChecker {
	return &CLIChecker{
		logger:    l,
		formatter: f,
		reporter:  r,
		stdout:    stdout,
		closer:    closer,
	}
}

func (c *CLIChecker) CheckFile(ctx context.Context, file string) error {
	out, err := c.formatter.Replacements(ctx, file)
	if err != nil {
		return err
	}

	if !replacement.HasReplacements(out) {
		c.logger.Debug("no replacements proposed", "file", file)
		return nil
	}

	list, err := replacement.Parse(out)
	if err != nil {
		return err
	}
	if len(list.Replacements) == 0 {
		return &replacement.ParseError{Reason: "replacement marker present without any replacement element"}
	}
	if list.Incomplete {
		c.logger.Debug("formatter reported incomplete formatting", "file", file)
	}

	f, err := os.Open(file)
	if err != nil {
		return &MissingInputError{Path: file, Wrapped: err}
	}
	defer f.Close()

	res, err := conformance.Check(f, file, list.Replacements)
	if err != nil {
		return err
	}

	c.logger.Debug("localized replacements",
		"file", file,
		"replacements", res.Replacements,
		"lines", len(res.Diagnostics),
		"exhausted", res.Exhausted,
		"unlocalized", res.Unlocalized)

	if err = c.reporter.Write(c.stdout, res); err != nil {
		return err
	}
	if res.Conforming() {
		return nil
	}
	return ErrNotConforming
}

// Close closes the log file, if any.
func (c *CLIChecker) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}

package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// PathResolver provides path resolution operations.
type PathResolver interface {
	// CanonicalPath returns the canonical, absolute path by resolving symlinks.
	CanonicalPath(path string) (string, error)
	// FindUp searches dir and its ancestors for a regular file called name.
	// It returns "" when no such file exists.
	FindUp(dir, name string) (string, error)
}

// StandardPathResolver is the default implementation using standard library functions.
type StandardPathResolver struct{}

var _ PathResolver = (*StandardPathResolver)(nil)

// NewPathResolver creates a new StandardPathResolver.
func NewPathResolver() *StandardPathResolver {
	return &StandardPathResolver{}
}

// CanonicalPath returns the canonical, absolute path by resolving symlinks.
func (r *StandardPathResolver) CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// FindUp searches dir and its ancestors for a regular file called name.
func (r *StandardPathResolver) FindUp(dir, name string) (string, error) {
	current, err := r.CanonicalPath(dir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(current, name)
		info, sErr := os.Stat(candidate)
		switch {
		case sErr == nil && info.Mode().IsRegular():
			return candidate, nil
		case sErr != nil && !errors.Is(sErr, os.ErrNotExist):
			return "", sErr
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

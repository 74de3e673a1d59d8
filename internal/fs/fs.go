package fs

// defaultResolver is used by the package-level FindUp.
var defaultResolver = NewPathResolver()

// FindUp searches dir and its ancestors for a regular file called name.
// This is a convenience function that uses the default StandardPathResolver.
func FindUp(dir, name string) (string, error) {
	return defaultResolver.FindUp(dir, name)
}

package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// noReplacements is what clang-format prints for a conforming file.
const noReplacements = `<?xml version='1.0'?>
<replacements xml:space='preserve' incomplete_format='false'>
</replacements>
`

// oneReplacement proposes a single edit at byte 4, the start of line 2 of "abc\ndef\n".
const oneReplacement = `<?xml version='1.0'?>
<replacements xml:space='preserve' incomplete_format='false'>
<replacement offset='4' length='1'>d</replacement>
</replacements>
`

type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) CheckFile(ctx context.Context, file string) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockChecker) Close() error {
	args := m.Called()
	return args.Error(0)
}

// mockEnvProvider is a test implementation of fs.EnvProvider.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	if m.values == nil {
		return ""
	}
	return m.values[key]
}

// fakeFormatter is a test implementation of formatter.Formatter.
type fakeFormatter struct {
	out   string
	err   error
	files []string
}

func (f *fakeFormatter) Replacements(_ context.Context, file string) ([]byte, error) {
	f.files = append(f.files, file)
	return []byte(f.out), f.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// writeFormatterScript creates an executable standing in for clang-format
// that prints output regardless of its arguments.
func writeFormatterScript(t *testing.T, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	dir := t.TempDir()
	data := writeFile(t, dir, "output.xml", output)
	path := filepath.Join(dir, "clang-format")
	script := "#!/bin/sh\ncat '" + data + "'\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755)) //nolint:gosec // must be executable
	return path
}

func mkdir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

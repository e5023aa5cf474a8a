package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/toke/pkg/tokefile"
	"github.com/stretchr/testify/require"
)

// MustDocument parses and decodes an inline TOML tokefile.
func MustDocument(t *testing.T, src string) *tokefile.Document {
	t.Helper()

	raw, err := tokefile.Parse([]byte(src), tokefile.FormatTOML)
	require.NoError(t, err)

	doc, err := tokefile.Decode(raw)
	require.NoError(t, err)
	return doc
}

// SetupTokefile writes content to a file called name inside a fresh temp
// directory and returns the directory.
func SetupTokefile(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	return dir
}

// Chdir switches the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

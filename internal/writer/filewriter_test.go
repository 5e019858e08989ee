package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteFile_CreatesAndReplaces tests fresh writes and in-place
// replacement.
func TestWriteFile_CreatesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	require.NoError(t, WriteFile(path, []byte("one")))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(got))

	require.NoError(t, WriteFile(path, []byte("two")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}

// TestWriteFile_LeavesNoTempFiles tests that the swap cleans up after
// itself.
func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "a.png"), []byte{1, 2, 3}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.png", entries[0].Name())
}

// TestWriteFile_MissingDir tests the error path for a nonexistent
// destination directory.
func TestWriteFile_MissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "a.bin"), []byte("x"))
	assert.Error(t, err)
}

package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Creating an existing directory is a no-op.
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestEnsureParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "file.csv")

	require.NoError(t, EnsureParentDirectory(path))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "out.csv")

	file, err := CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.True(t, FileExists(path))

	// Creating again truncates rather than failing.
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))
	file, err = CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

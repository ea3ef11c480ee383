package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.MkdirAll("/repo/bar/default/waybar", 0755))
	require.NoError(t, fs.WriteFile("/repo/bar/default/waybar/config", []byte("bar"), 0644))

	data, err := fs.ReadFile("/repo/bar/default/waybar/config")
	require.NoError(t, err)
	assert.Equal(t, "bar", string(data))

	entries, err := fs.ReadDir("/repo/bar/default")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "waybar", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	info, err := fs.Stat("/repo/bar/default/waybar/config")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	require.NoError(t, fs.Remove("/repo/bar/default/waybar/config"))
	_, err = fs.ReadFile("/repo/bar/default/waybar/config")
	assert.Error(t, err)
}

func TestMemoryFSReadFileOnDir(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/some/dir", 0755))

	_, err := fs.ReadFile("/some/dir")
	assert.Error(t, err)
}

func TestOSFS(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()

	path := filepath.Join(dir, "nested", "file.txt")
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fs.WriteFile(path, []byte("hello"), 0644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, fs.RemoveAll(filepath.Join(dir, "nested")))
	_, err = fs.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

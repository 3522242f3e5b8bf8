package resume

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveAndRead(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	name, err := store.Save("resume.pdf", []byte("content"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-resume.pdf"))

	got, err := store.Read(name)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), got)

	// Fetch is idempotent: same arguments, byte-identical content.
	again, err := store.Read(name)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestDiskStore_ReadMissing(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	_, err := store.Read("nope.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStore_RemoveAndExists(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	name, err := store.Save("resume.pdf", []byte("content"))
	require.NoError(t, err)
	assert.True(t, store.Exists(name))

	require.NoError(t, store.Remove(name))
	assert.False(t, store.Exists(name))
	assert.ErrorIs(t, store.Remove(name), ErrNotFound)
}

func TestDiskStore_SanitizesOriginalName(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)

	name, err := store.Save("../../etc/passwd", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "-passwd"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "file must land inside the uploads directory")
	assert.Equal(t, filepath.Base(name), entries[0].Name())
}

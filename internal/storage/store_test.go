package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssetStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")

	_, err := NewAssetStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory
	_, err = NewAssetStore(root)
	assert.NoError(t, err)
}

func TestStore_WritesAndOpens(t *testing.T) {
	store, err := NewAssetStore(t.TempDir())
	require.NoError(t, err)

	payload := []byte("jpeg-bytes")
	filename, err := store.Store(payload, "indoor")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".jpg"))
	assert.Contains(t, filename, "indoor")

	r, err := store.Open(filename)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStore_UniqueFilenamesSameMillisecond(t *testing.T) {
	store, err := NewAssetStore(t.TempDir())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		filename, err := store.Store([]byte("x"), "indoor")
		require.NoError(t, err)
		assert.False(t, seen[filename], "filename %s generated twice", filename)
		seen[filename] = true
	}
}

func TestStore_SanitizesHint(t *testing.T) {
	store, err := NewAssetStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Store([]byte("x"), "foto unit 1")
	require.NoError(t, err)
	assert.NotContains(t, filename, " ")
	assert.Contains(t, filename, "foto-unit-1")
}

func TestOpen_UnknownFilename(t *testing.T) {
	store, err := NewAssetStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("missing.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPath_RejectsTraversal(t *testing.T) {
	store, err := NewAssetStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Path("../../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Path("")
	assert.ErrorIs(t, err, ErrNotFound)

	// Bare dot names resolve to directories, never stored files
	_, err = store.Path("..")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Path(".")
	assert.ErrorIs(t, err, ErrNotFound)
}

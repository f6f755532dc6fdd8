package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *UploadStore {
	t.Helper()
	store, err := NewUploadStore(t.TempDir(), []string{"png", "jpg", "jpeg", "pdf"})
	require.NoError(t, err)
	return store
}

func TestAllowedExtensions(t *testing.T) {
	store := newTestStore(t)

	assert.True(t, store.Allowed("photo.png"))
	assert.True(t, store.Allowed("scan.PDF"))
	assert.True(t, store.Allowed("kitchen.JPeG"))
	assert.False(t, store.Allowed("script.sh"))
	assert.False(t, store.Allowed("noextension"))
	assert.False(t, store.Allowed("archive.tar.gz"))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save("kitchen.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	second, err := store.Save("kitchen.png", strings.NewReader("other-bytes"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "_kitchen.png"))

	content, err := os.ReadFile(filepath.Join(store.Dir(), first))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestSaveSanitizesFilename(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save("my photo (1)!.png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, stored, " ")
	assert.NotContains(t, stored, "(")
	assert.True(t, strings.HasSuffix(stored, ".png"))
}

func TestRemoveMissingFileIsNoError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Remove("never-existed.png"))
}

func TestRemoveStripsDirectoryComponents(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save("kitchen.png", strings.NewReader("x"))
	require.NoError(t, err)

	// A traversal-looking name resolves to the bare file inside the store.
	require.NoError(t, store.Remove("../../"+stored))
	_, statErr := os.Stat(filepath.Join(store.Dir(), stored))
	assert.True(t, os.IsNotExist(statErr))
}

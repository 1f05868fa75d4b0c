package infra

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()
	store, err := NewImageStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	return store
}

func TestImageStore_SaveAndRemove(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save("photo.JPG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/products/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	name := strings.TrimPrefix(url, "http://localhost:8080/uploads/products/")
	onDisk := filepath.Join(store.BaseDir(), "products", name)
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestImageStore_GeneratedNamesNeverCollide(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Save("same.png", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save("same.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestImageStore_RejectsUnsupportedExtension(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"malware.exe", "doc.pdf", "noext", "script.js"} {
		_, err := store.Save(name, strings.NewReader("x"))
		assert.Error(t, err, "file %q", name)
	}
}

func TestImageStore_RemoveRejectsForeignAndTraversalURLs(t *testing.T) {
	store := newTestStore(t)

	assert.Error(t, store.Remove("http://evil.example/uploads/products/a.jpg"))
	assert.Error(t, store.Remove("http://localhost:8080/uploads/products/../../etc/passwd"))
	assert.Error(t, store.Remove("http://localhost:8080/uploads/products/"))
}

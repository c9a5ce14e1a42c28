package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir)
	require.NoError(t, err)

	t.Run("save prefixes a timestamp", func(t *testing.T) {
		name, err := store.Save("bike.jpg", strings.NewReader("fake image bytes"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, "-bike.jpg"))

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(data))
	})

	t.Run("save strips directory components", func(t *testing.T) {
		name, err := store.Save("../../etc/passwd", strings.NewReader("x"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, "-passwd"))
		assert.NotContains(t, name, "/")
	})

	t.Run("remove deletes the file", func(t *testing.T) {
		name, err := store.Save("tent.jpg", strings.NewReader("x"))
		require.NoError(t, err)

		require.NoError(t, store.Remove(name))
		_, err = os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("remove of missing file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Remove("never-existed.jpg"))
	})

	t.Run("remove of empty name is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Remove(""))
	})
}

func TestNewImageStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewImageStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

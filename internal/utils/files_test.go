package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates and replaces", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "save.json")

		require.NoError(t, WriteFileAtomic(path, []byte(`{"money":1}`)))
		require.NoError(t, WriteFileAtomic(path, []byte(`{"money":2}`)))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"money":2}`, string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files are cleaned up")
	})

	t.Run("missing directory", func(t *testing.T) {
		err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "save.json"), []byte("x"))
		assert.Error(t, err)
	})
}

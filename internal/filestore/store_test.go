package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/repository"
)

var _ repository.Saves = (*Store)(nil)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := New(filepath.Join(t.TempDir(), "saves"))
	require.NoError(t, err)

	ok, err := s.Exists(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Load(ctx, "slot")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)

	require.NoError(t, s.Save(ctx, "slot", []byte(`{"money":5}`)))
	data, err := s.Load(ctx, "slot")
	require.NoError(t, err)
	assert.JSONEq(t, `{"money":5}`, string(data))
	assert.FileExists(t, filepath.Join(s.Dir(), "slot.json"))

	require.NoError(t, s.Delete(ctx, "slot"))
	require.NoError(t, s.Delete(ctx, "slot"), "deleting a missing save is fine")
	ok, err = s.Exists(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", `a\b`, ".."} {
		err := s.Save(ctx, key, []byte("{}"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, key)
	}
}

func TestStore_LoadUnreadable(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	// a directory where the file should be
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "broken.json"), 0o755))

	_, err = s.Load(ctx, "broken")
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestStore_CheckHealth(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.CheckHealth(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file must be removed")

	require.NoError(t, os.RemoveAll(dir))
	assert.ErrorIs(t, s.CheckHealth(context.Background()), domain.ErrStorageFailure)
}

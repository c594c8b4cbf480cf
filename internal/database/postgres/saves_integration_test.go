package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/repository"
)

var _ repository.Saves = (*SaveRepository)(nil)

func TestSaveRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewSaveRepository(pool)
	key := "integration-" + t.Name()

	t.Run("health", func(t *testing.T) {
		assert.NoError(t, repo.CheckHealth(ctx))
	})

	t.Run("missing save", func(t *testing.T) {
		_, err := repo.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)

		ok, err := repo.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("save then overwrite", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, key, []byte(`{"money": 100, "plots": []}`)))
		require.NoError(t, repo.Save(ctx, key, []byte(`{"money": 250, "plots": []}`)))

		data, err := repo.Load(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"money": 250, "plots": []}`, string(data))

		ok, err := repo.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, key))
		require.NoError(t, repo.Delete(ctx, key))

		_, err := repo.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	})
}

func TestSaveRepository_RejectsInvalidJSON(t *testing.T) {
	pool := requireDB(t)
	repo := NewSaveRepository(pool)

	err := repo.Save(context.Background(), "broken", []byte("{not json"))
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

// SaveRepository implements repository.Saves for PostgreSQL. Documents are
// stored as JSONB, so key order and whitespace are not preserved.
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a new SaveRepository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

func (r *SaveRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow(ctx, queryLoadSave, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load save: %v", domain.ErrStorageFailure, err)
	}
	return data, nil
}

func (r *SaveRepository) Save(ctx context.Context, key string, data []byte) error {
	if _, err := r.db.Exec(ctx, queryUpsertSave, key, data); err != nil {
		return fmt.Errorf("%w: failed to write save: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

func (r *SaveRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, queryDeleteSave, key); err != nil {
		return fmt.Errorf("%w: failed to delete save: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

func (r *SaveRepository) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, queryExistsSave, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: failed to check save: %v", domain.ErrStorageFailure, err)
	}
	return exists, nil
}

// CheckHealth pings the database
func (r *SaveRepository) CheckHealth(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

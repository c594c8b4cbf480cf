package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PocketGarden_Go/internal/config"
	"github.com/osse101/PocketGarden_Go/internal/database"
	"github.com/osse101/PocketGarden_Go/internal/database/postgres"
	"github.com/osse101/PocketGarden_Go/internal/filestore"
	"github.com/osse101/PocketGarden_Go/internal/handler"
	"github.com/osse101/PocketGarden_Go/internal/repository"
)

// Storage is the selected save backend
type Storage struct {
	Saves  repository.Saves
	Health handler.HealthChecker
	close  func()
}

// Close releases backend resources such as the database pool
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// backend is what every save backend offers
type backend interface {
	repository.Saves
	handler.HealthChecker
}

// InitializeStorage opens the backend named by cfg.StorageBackend, applying
// migrations for postgres, and wraps it in the read cache when enabled.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var (
		b       backend
		closeFn func()
	)

	switch cfg.StorageBackend {
	case config.StorageBackendFile:
		fs, err := filestore.New(cfg.SavePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSaveDir, err)
		}
		b = fs
	case config.StorageBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
			database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		b = postgres.NewSaveRepository(pool)
		closeFn = pool.Close
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.StorageBackend)
	}

	s := &Storage{Saves: b, Health: b, close: closeFn}
	if cfg.SaveCacheSize > 0 {
		s.Saves = repository.NewCachedSaves(b, cfg.SaveCacheSize, cfg.SaveCacheTTL)
		slog.Info(LogMsgSaveCacheEnabled, "size", cfg.SaveCacheSize, "ttl", cfg.SaveCacheTTL)
	}

	slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend)
	return s, nil
}

package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/config"
	"github.com/osse101/PocketGarden_Go/internal/validation"
)

// LoadCatalog returns the built-in catalog, or the override file named by
// cfg.CatalogPath after schema and reference validation
func LoadCatalog(cfg *config.Config, schemas validation.SchemaValidator) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		cat := catalog.Default()
		slog.Info(LogMsgCatalogLoaded, "source", "built-in", "seeds", len(cat.Seeds()))
		return cat, nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath, schemas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "source", cfg.CatalogPath, "seeds", len(cat.Seeds()))
	return cat, nil
}

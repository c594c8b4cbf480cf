package garden

import (
	"context"
	"fmt"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/growth"
	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/store"
	"github.com/osse101/PocketGarden_Go/internal/utils"
)

// Service defines the interface for planting and harvesting
type Service interface {
	Plant(ctx context.Context, plotID, slotID int, seedID string) error
	// QuickPlant plants the selected seed in the first empty slot and returns that slot.
	QuickPlant(ctx context.Context, plotID int) (int, error)
	// PlantAll fills empty slots with seedID, limited by the seeds held, and returns the count.
	PlantAll(ctx context.Context, plotID int, seedID string) (int, error)
	Harvest(ctx context.Context, plotID, slotID int) (domain.HarvestResult, error)
	// HarvestAll harvests every slot that is ready right now.
	HarvestAll(ctx context.Context, plotID int) ([]domain.HarvestResult, error)
	SelectSeed(ctx context.Context, seedID string) error
	SelectPlot(ctx context.Context, index int) error

	IsReady(plotID, slotID int) bool
	TimeRemaining(plotID, slotID int) int64
	FormattedTimeRemaining(plotID, slotID int) string
	Progress(plotID, slotID int) int
	CountReady(plotID int) int
	CountEmpty(plotID int) int
	CountGrowing(plotID int) int
	PlotView(plotID int) (domain.PlotView, error)
}

type service struct {
	store   *store.Store
	catalog *catalog.Catalog
	rnd     utils.RandomSource
}

// NewService creates a new garden service
func NewService(st *store.Store, cat *catalog.Catalog, rnd utils.RandomSource) Service {
	return &service{
		store:   st,
		catalog: cat,
		rnd:     rnd,
	}
}

func (s *service) seed(seedID string) (domain.SeedDefinition, error) {
	seed, ok := s.catalog.Seed(seedID)
	if !ok {
		return domain.SeedDefinition{}, fmt.Errorf("%w: %s", domain.ErrUnknownSeed, seedID)
	}
	return seed, nil
}

func (s *service) Plant(ctx context.Context, plotID, slotID int, seedID string) error {
	log := logger.FromContext(ctx)
	log.Debug("Plant called", "plot", plotID, "slot", slotID, "seed", seedID)

	seed, err := s.seed(seedID)
	if err != nil {
		return err
	}
	return s.store.Transact(ctx, func(tx *store.Tx) error {
		return tx.PlantSeed(plotID, slotID, seedID, seed.GrowthTimeMs)
	})
}

func (s *service) QuickPlant(ctx context.Context, plotID int) (int, error) {
	state := s.store.State()
	if state.SelectedSeedID == nil {
		return -1, domain.ErrNoSeedSelected
	}
	seed, err := s.seed(*state.SelectedSeedID)
	if err != nil {
		return -1, err
	}

	slotID := -1
	err = s.store.Transact(ctx, func(tx *store.Tx) error {
		plot, err := tx.Plot(plotID)
		if err != nil {
			return err
		}
		for _, slot := range plot.Slots {
			if slot.Plant == nil {
				slotID = slot.ID
				return tx.PlantSeed(plotID, slot.ID, seed.ID, seed.GrowthTimeMs)
			}
		}
		return fmt.Errorf("%w: plot %d", domain.ErrNoEmptySlot, plotID)
	})
	if err != nil {
		return -1, err
	}
	return slotID, nil
}

func (s *service) PlantAll(ctx context.Context, plotID int, seedID string) (int, error) {
	log := logger.FromContext(ctx)
	log.Info("PlantAll called", "plot", plotID, "seed", seedID)

	seed, err := s.seed(seedID)
	if err != nil {
		return 0, err
	}

	planted := 0
	err = s.store.Transact(ctx, func(tx *store.Tx) error {
		plot, err := tx.Plot(plotID)
		if err != nil {
			return err
		}
		held := tx.ItemCount(seedID)
		if held == 0 {
			return fmt.Errorf("%w: %s", domain.ErrNoSeed, seedID)
		}
		for _, slot := range plot.Slots {
			if planted >= held {
				break
			}
			if slot.Plant != nil {
				continue
			}
			if err := tx.PlantSeed(plotID, slot.ID, seedID, seed.GrowthTimeMs); err != nil {
				return err
			}
			planted++
		}
		if planted == 0 {
			return fmt.Errorf("%w: plot %d", domain.ErrNoEmptySlot, plotID)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return planted, nil
}

// harvestSlot rolls the yield for one ready slot inside tx
func (s *service) harvestSlot(tx *store.Tx, plotID int, slot domain.PlotSlot) (domain.HarvestResult, error) {
	if slot.Plant == nil {
		return domain.HarvestResult{}, fmt.Errorf("%w: plot %d slot %d", domain.ErrSlotEmpty, plotID, slot.ID)
	}
	if !growth.IsReady(slot.Plant.PlantedAt, slot.Plant.GrowthTimeMs, tx.Now()) {
		remaining := growth.Remaining(slot.Plant.PlantedAt, slot.Plant.GrowthTimeMs, tx.Now())
		return domain.HarvestResult{}, fmt.Errorf("%w: %s left", domain.ErrNotReady, growth.FormatRemaining(remaining))
	}
	seed, err := s.seed(slot.Plant.SeedID)
	if err != nil {
		return domain.HarvestResult{}, err
	}

	yields := []domain.ItemStack{{
		ItemID:   seed.YieldItemID,
		Quantity: s.rnd.IntRange(seed.YieldMin, seed.YieldMax),
	}}
	if err := tx.HarvestPlant(plotID, slot.ID, yields); err != nil {
		return domain.HarvestResult{}, err
	}
	return domain.HarvestResult{PlotID: plotID, SlotID: slot.ID, Yields: yields}, nil
}

func (s *service) Harvest(ctx context.Context, plotID, slotID int) (domain.HarvestResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("Harvest called", "plot", plotID, "slot", slotID)

	var result domain.HarvestResult
	err := s.store.Transact(ctx, func(tx *store.Tx) error {
		plot, err := tx.Plot(plotID)
		if err != nil {
			return err
		}
		if slotID < 0 || slotID >= len(plot.Slots) {
			return fmt.Errorf("%w: plot %d slot %d", domain.ErrSlotNotFound, plotID, slotID)
		}
		result, err = s.harvestSlot(tx, plotID, plot.Slots[slotID])
		return err
	})
	if err != nil {
		return domain.HarvestResult{}, err
	}
	return result, nil
}

func (s *service) HarvestAll(ctx context.Context, plotID int) ([]domain.HarvestResult, error) {
	log := logger.FromContext(ctx)
	log.Info("HarvestAll called", "plot", plotID)

	var results []domain.HarvestResult
	err := s.store.Transact(ctx, func(tx *store.Tx) error {
		results = nil
		plot, err := tx.Plot(plotID)
		if err != nil {
			return err
		}
		for _, slot := range plot.Slots {
			if slot.Plant == nil || !growth.IsReady(slot.Plant.PlantedAt, slot.Plant.GrowthTimeMs, tx.Now()) {
				continue
			}
			res, err := s.harvestSlot(tx, plotID, slot)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) SelectSeed(ctx context.Context, seedID string) error {
	if seedID != "" {
		if _, err := s.seed(seedID); err != nil {
			return err
		}
	}
	return s.store.Transact(ctx, func(tx *store.Tx) error {
		tx.SelectSeed(seedID)
		return nil
	})
}

func (s *service) SelectPlot(ctx context.Context, index int) error {
	return s.store.Transact(ctx, func(tx *store.Tx) error {
		return tx.SetCurrentPlotIndex(index)
	})
}

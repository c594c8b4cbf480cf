package shop

import (
	"context"
	"fmt"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/store"
	"github.com/osse101/PocketGarden_Go/internal/utils"
)

// Service defines the interface for shop operations
type Service interface {
	// Restock stacks a random draw onto the current stock and restarts the restock timer.
	Restock(ctx context.Context) ([]domain.ShopStock, error)
	// InitializeShop adds zero-quantity entries for every seed not yet listed.
	InitializeShop(ctx context.Context) ([]domain.ShopStock, error)
	// EnsureStocked repopulates an empty shop without moving the restock phase.
	EnsureStocked(ctx context.Context) error
	AllSeedsWithStock() []domain.ShopStock
	Stock() []domain.ShopStock
	BuySeed(ctx context.Context, seedID string, quantity int) error
	BuyPlot(ctx context.Context) (int, error)
	NextPlotPrice() (int, bool)
	CanBuyMorePlots() bool
	CanAffordNextPlot() bool
	NeedsInitialStock() bool
	RestockDue() bool
	TimeUntilRestock() int64
}

type service struct {
	store   *store.Store
	catalog *catalog.Catalog
	rnd     utils.RandomSource
	config  domain.GameConfig
}

// NewService creates a new shop service
func NewService(st *store.Store, cat *catalog.Catalog, rnd utils.RandomSource, cfg domain.GameConfig) Service {
	return &service{
		store:   st,
		catalog: cat,
		rnd:     rnd,
		config:  cfg,
	}
}

func (s *service) Restock(ctx context.Context) ([]domain.ShopStock, error) {
	log := logger.FromContext(ctx)
	log.Debug("Restock called")

	var stock []domain.ShopStock
	err := s.store.Transact(ctx, func(tx *store.Tx) error {
		stock = s.draw(tx.ShopStock())
		tx.SetShopStock(stock)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restock shop: %w", err)
	}

	log.Info(LogMsgShopRestocked, "entries", len(stock))
	return stock, nil
}

// draw rolls every catalog seed once and stacks the results onto current.
// Existing entries take the current catalog price; at most MaxShopSeedTypes
// new entries are introduced per draw.
func (s *service) draw(current []domain.ShopStock) []domain.ShopStock {
	index := make(map[string]int, len(current))
	for i, e := range current {
		index[e.SeedID] = i
	}

	added := 0
	for _, seed := range s.catalog.Seeds() {
		if s.rnd.Float64() >= seed.ShopChance {
			continue
		}
		qty := s.rnd.IntRange(seed.ShopStockMin, seed.ShopStockMax)

		if i, ok := index[seed.ID]; ok {
			current[i].Quantity += qty
			current[i].Price = seed.BuyPrice
			continue
		}
		if s.config.MaxShopSeedTypes > 0 && added >= s.config.MaxShopSeedTypes {
			continue
		}
		index[seed.ID] = len(current)
		current = append(current, domain.ShopStock{SeedID: seed.ID, Quantity: qty, Price: seed.BuyPrice})
		added++
	}
	return current
}

// fill appends a zero-quantity entry for every catalog seed missing from stock
func (s *service) fill(stock []domain.ShopStock) []domain.ShopStock {
	listed := make(map[string]bool, len(stock))
	for _, e := range stock {
		listed[e.SeedID] = true
	}
	for _, seed := range s.catalog.Seeds() {
		if !listed[seed.ID] {
			stock = append(stock, domain.ShopStock{SeedID: seed.ID, Quantity: 0, Price: seed.BuyPrice})
		}
	}
	return stock
}

func (s *service) InitializeShop(ctx context.Context) ([]domain.ShopStock, error) {
	logger.FromContext(ctx).Debug("InitializeShop called")

	var stock []domain.ShopStock
	err := s.store.Transact(ctx, func(tx *store.Tx) error {
		stock = s.fill(tx.ShopStock())
		tx.SetShopStock(stock)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize shop: %w", err)
	}
	return stock, nil
}

func (s *service) EnsureStocked(ctx context.Context) error {
	if !s.NeedsInitialStock() {
		return nil
	}
	log := logger.FromContext(ctx)

	var stock []domain.ShopStock
	err := s.store.Transact(ctx, func(tx *store.Tx) error {
		if len(tx.ShopStock()) > 0 {
			stock = tx.ShopStock()
			return nil
		}
		stock = s.fill(s.draw(nil))
		tx.PutShopStock(stock)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to stock shop: %w", err)
	}
	log.Info(LogMsgShopRepopulated, "entries", len(stock))
	return nil
}

func (s *service) AllSeedsWithStock() []domain.ShopStock {
	return s.fill(s.Stock())
}

func (s *service) Stock() []domain.ShopStock {
	return s.store.State().ShopStock
}

func (s *service) BuySeed(ctx context.Context, seedID string, quantity int) error {
	log := logger.FromContext(ctx)
	log.Info("BuySeed called", "seed", seedID, "quantity", quantity)

	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if _, ok := s.catalog.Seed(seedID); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSeed, seedID)
	}

	if err := s.store.Transact(ctx, func(tx *store.Tx) error {
		return tx.BuyFromShop(seedID, quantity)
	}); err != nil {
		log.Debug("BuySeed rejected", "error", err)
		return err
	}
	return nil
}

func (s *service) BuyPlot(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	log.Info("BuyPlot called")

	plotID := -1
	err := s.store.Transact(ctx, func(tx *store.Tx) error {
		count := tx.PlotCount()
		if count >= s.catalog.MaxPlots() {
			return domain.ErrMaxPlotsReached
		}
		price, ok := s.catalog.PlotPrice(count + 1)
		if !ok {
			return domain.ErrMaxPlotsReached
		}
		if err := tx.SpendMoney(price, domain.ReasonBuyPlot); err != nil {
			return err
		}
		plotID = tx.AddPlot()
		return nil
	})
	if err != nil {
		log.Debug("BuyPlot rejected", "error", err)
		return -1, err
	}

	log.Info(LogMsgPlotPurchased, "plot_id", plotID)
	return plotID, nil
}

func (s *service) NextPlotPrice() (int, bool) {
	return s.catalog.PlotPrice(len(s.store.State().Plots) + 1)
}

func (s *service) CanBuyMorePlots() bool {
	return len(s.store.State().Plots) < s.catalog.MaxPlots()
}

func (s *service) CanAffordNextPlot() bool {
	price, ok := s.NextPlotPrice()
	if !ok {
		return false
	}
	return s.store.Money() >= price
}

func (s *service) NeedsInitialStock() bool {
	return len(s.store.State().ShopStock) == 0
}

func (s *service) RestockDue() bool {
	return s.config.ShopRestockInterval > 0 && s.TimeUntilRestock() == 0
}

func (s *service) TimeUntilRestock() int64 {
	interval := s.config.ShopRestockInterval.Milliseconds()
	if interval <= 0 {
		return 0
	}
	next := s.store.State().LastShopRestock + interval
	remaining := next - s.store.Now()
	if remaining < 0 {
		return 0
	}
	return remaining
}

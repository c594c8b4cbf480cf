// Package store holds the single game state aggregate. Every mutation runs as
// an all-or-nothing transaction under one lock; events raised by a
// transaction are published after it commits, outside the lock, so listeners
// are free to read the store.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/PocketGarden_Go/internal/clock"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/event"
	"github.com/osse101/PocketGarden_Go/internal/logger"
)

// Store owns the live GameState
type Store struct {
	mu           sync.Mutex
	state        domain.GameState
	clock        clock.Clock
	bus          event.Publisher
	slotsPerPlot int
	// version counts committed changes
	version      uint64
}

// InitialState builds a fresh game at now
func InitialState(now int64, slotsPerPlot int) domain.GameState {
	if slotsPerPlot <= 0 {
		slotsPerPlot = domain.DefaultSlotsPerPlot
	}
	return domain.GameState{
		Money:            domain.StartingMoney,
		Plots:            []domain.Plot{domain.NewPlot(0, slotsPerPlot)},
		CurrentPlotIndex: 0,
		Inventory:        domain.StartingInventory(),
		SelectedSeedID:   nil,
		ShopStock:        []domain.ShopStock{},
		LastShopRestock:  0,
		LastSaveTime:     now,
	}
}

// New creates a store holding a fresh game. bus may be nil.
func New(clk clock.Clock, bus event.Publisher, slotsPerPlot int) *Store {
	if slotsPerPlot <= 0 {
		slotsPerPlot = domain.DefaultSlotsPerPlot
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Store{
		state:        InitialState(clock.Millis(clk), slotsPerPlot),
		clock:        clk,
		bus:          bus,
		slotsPerPlot: slotsPerPlot,
	}
}

// Now reads the store's clock in epoch milliseconds
func (s *Store) Now() int64 { return clock.Millis(s.clock) }

// SlotsPerPlot is the size of newly created plots
func (s *Store) SlotsPerPlot() int { return s.slotsPerPlot }

// Transact runs fn against a working copy of the state. If fn returns an
// error (or panics) the live state is untouched and no events are published.
func (s *Store) Transact(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	tx := &Tx{
		state:        s.state.Clone(),
		now:          clock.Millis(s.clock),
		slotsPerPlot: s.slotsPerPlot,
	}
	if err := run(fn, tx); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = tx.state
	s.version++
	events := tx.events
	s.mu.Unlock()

	event.PublishDetached(ctx, s.bus, events...)
	return nil
}

func run(fn func(tx *Tx) error, tx *Tx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transaction panicked: %v", r)
		}
	}()
	return fn(tx)
}

// View runs fn against a consistent read-only copy of the state
func (s *Store) View(fn func(state domain.GameState, now int64)) {
	s.mu.Lock()
	st := s.state.Clone()
	now := clock.Millis(s.clock)
	s.mu.Unlock()
	fn(st, now)
}

// State returns a deep copy of the live state
func (s *Store) State() domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SerializableState returns a self-contained snapshot suitable for storage
func (s *Store) SerializableState() domain.GameState {
	st := s.State()
	st.Normalize()
	return st
}

// Snapshot returns SerializableState together with the version it reflects
func (s *Store) Snapshot() (domain.GameState, uint64) {
	s.mu.Lock()
	st := s.state.Clone()
	version := s.version
	s.mu.Unlock()
	st.Normalize()
	return st, version
}

// Version increases with every committed transaction and every LoadState
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *Store) do(ctx context.Context, op string, fn func(tx *Tx) error) bool {
	if err := s.Transact(ctx, fn); err != nil {
		logger.FromContext(ctx).Debug("Store operation rejected", "op", op, "error", err)
		return false
	}
	return true
}

// AddMoney credits amount; negative amounts are rejected
func (s *Store) AddMoney(ctx context.Context, amount int, reason string) bool {
	return s.do(ctx, "add_money", func(tx *Tx) error { return tx.AddMoney(amount, reason) })
}

// SpendMoney debits amount; fails without mutation when money < amount
func (s *Store) SpendMoney(ctx context.Context, amount int, reason string) bool {
	return s.do(ctx, "spend_money", func(tx *Tx) error { return tx.SpendMoney(amount, reason) })
}

// AddItem grants qty of itemID
func (s *Store) AddItem(ctx context.Context, itemID string, qty int) bool {
	return s.do(ctx, "add_item", func(tx *Tx) error { return tx.AddItem(itemID, qty) })
}

// RemoveItem takes qty of itemID; fails without mutation when not enough is held
func (s *Store) RemoveItem(ctx context.Context, itemID string, qty int) bool {
	return s.do(ctx, "remove_item", func(tx *Tx) error { return tx.RemoveItem(itemID, qty) })
}

// HasItem reports whether at least qty of itemID is held
func (s *Store) HasItem(itemID string, qty int) bool {
	return s.ItemCount(itemID) >= qty
}

// ItemCount returns the held quantity of itemID
func (s *Store) ItemCount(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Inventory[itemID]
}

// Money returns the current balance
func (s *Store) Money() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Money
}

// PlantSeed plants one held seed in an empty slot at the current time
func (s *Store) PlantSeed(ctx context.Context, plotID, slotID int, seedID string, growthTimeMs int64) bool {
	return s.do(ctx, "plant_seed", func(tx *Tx) error { return tx.PlantSeed(plotID, slotID, seedID, growthTimeMs) })
}

// HarvestPlant clears an occupied slot and grants yields. It does not check readiness.
func (s *Store) HarvestPlant(ctx context.Context, plotID, slotID int, yields []domain.ItemStack) bool {
	return s.do(ctx, "harvest_plant", func(tx *Tx) error { return tx.HarvestPlant(plotID, slotID, yields) })
}

// AddPlot appends an empty plot and returns its id
func (s *Store) AddPlot(ctx context.Context) int {
	id := -1
	s.do(ctx, "add_plot", func(tx *Tx) error {
		id = tx.AddPlot()
		return nil
	})
	return id
}

// SetShopStock replaces the stock and stamps lastShopRestock with now
func (s *Store) SetShopStock(ctx context.Context, stock []domain.ShopStock) bool {
	return s.do(ctx, "set_shop_stock", func(tx *Tx) error {
		tx.SetShopStock(stock)
		return nil
	})
}

// BuyFromShop buys qty of seedID; no partial purchase on failure
func (s *Store) BuyFromShop(ctx context.Context, seedID string, qty int) bool {
	return s.do(ctx, "buy_from_shop", func(tx *Tx) error { return tx.BuyFromShop(seedID, qty) })
}

// SelectSeed sets or, with an empty id, clears the selected seed
func (s *Store) SelectSeed(ctx context.Context, seedID string) bool {
	return s.do(ctx, "select_seed", func(tx *Tx) error {
		tx.SelectSeed(seedID)
		return nil
	})
}

// SetCurrentPlotIndex selects a plot; out-of-range indexes are ignored
func (s *Store) SetCurrentPlotIndex(ctx context.Context, index int) bool {
	return s.do(ctx, "set_plot_index", func(tx *Tx) error { return tx.SetCurrentPlotIndex(index) })
}

// LoadState replaces the whole aggregate. Documents with negative money or
// without any plot are rejected.
func (s *Store) LoadState(ctx context.Context, newState domain.GameState) bool {
	if newState.Money < 0 {
		logger.FromContext(ctx).Warn("Refusing to load state with negative money", "money", newState.Money)
		return false
	}
	if len(newState.Plots) == 0 {
		logger.FromContext(ctx).Warn("Refusing to load state without plots")
		return false
	}
	st := newState.Clone()
	st.Normalize()
	if st.CurrentPlotIndex < 0 || st.CurrentPlotIndex >= len(st.Plots) {
		st.CurrentPlotIndex = 0
	}

	s.mu.Lock()
	s.state = st
	s.version++
	snapshot := st.Clone()
	s.mu.Unlock()

	event.PublishDetached(ctx, s.bus, event.NewGameLoadedEvent(snapshot))
	return true
}

// ResetState installs a fresh game
func (s *Store) ResetState(ctx context.Context) {
	s.LoadState(ctx, InitialState(s.Now(), s.slotsPerPlot))
}

// UpdateLastSaveTime stamps lastSaveTime with now, never moving it backwards,
// and returns the stamped value.
func (s *Store) UpdateLastSaveTime() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := clock.Millis(s.clock)
	if now > s.state.LastSaveTime {
		s.state.LastSaveTime = now
	}
	return s.state.LastSaveTime
}

package store

import (
	"fmt"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/event"
)

// Tx is a working copy of the game state. Mutations are applied to the copy
// and become visible only when the enclosing Transact commits; events queued
// on the Tx are published after commit.
type Tx struct {
	state        domain.GameState
	now          int64
	slotsPerPlot int
	events       []event.Event
}

// Now is the clock reading taken when the transaction began
func (tx *Tx) Now() int64 { return tx.now }

// State returns a deep copy of the working state
func (tx *Tx) State() domain.GameState { return tx.state.Clone() }

func (tx *Tx) emit(e event.Event) { tx.events = append(tx.events, e) }

// Emit queues an event for publication once the transaction commits.
// Events from a rolled back transaction are discarded.
func (tx *Tx) Emit(e event.Event) { tx.emit(e) }

// Money returns the working balance
func (tx *Tx) Money() int { return tx.state.Money }

// AddMoney credits amount. Zero is a no-op.
func (tx *Tx) AddMoney(amount int, reason string) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if amount == 0 {
		return nil
	}
	tx.state.Money += amount
	tx.emit(event.NewMoneyChangedEvent(amount, reason))
	return nil
}

// SpendMoney debits amount if the balance covers it
func (tx *Tx) SpendMoney(amount int, reason string) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if tx.state.Money < amount {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, tx.state.Money)
	}
	if amount == 0 {
		return nil
	}
	tx.state.Money -= amount
	tx.emit(event.NewMoneyChangedEvent(-amount, reason))
	return nil
}

// ItemCount returns the held quantity of an item
func (tx *Tx) ItemCount(itemID string) int {
	return tx.state.Inventory[itemID]
}

// HasItem reports whether at least qty of itemID is held
func (tx *Tx) HasItem(itemID string, qty int) bool {
	return tx.ItemCount(itemID) >= qty
}

// AddItem grants qty of itemID
func (tx *Tx) AddItem(itemID string, qty int) error {
	if itemID == "" || qty <= 0 {
		return fmt.Errorf("%w: add %d of %q", domain.ErrInvalidAmount, qty, itemID)
	}
	if tx.state.Inventory == nil {
		tx.state.Inventory = map[string]int{}
	}
	tx.state.Inventory[itemID] += qty
	tx.emit(event.NewItemAddedEvent(itemID, qty))
	return nil
}

// RemoveItem takes qty of itemID; entries reaching zero are deleted
func (tx *Tx) RemoveItem(itemID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: remove %d of %q", domain.ErrInvalidAmount, qty, itemID)
	}
	have := tx.state.Inventory[itemID]
	if have < qty {
		return fmt.Errorf("%w: %s (have %d, need %d)", domain.ErrInsufficientQuantity, itemID, have, qty)
	}
	if have == qty {
		delete(tx.state.Inventory, itemID)
	} else {
		tx.state.Inventory[itemID] = have - qty
	}
	tx.emit(event.NewItemRemovedEvent(itemID, qty))
	return nil
}

func (tx *Tx) slot(plotID, slotID int) (*domain.PlotSlot, error) {
	if plotID < 0 || plotID >= len(tx.state.Plots) {
		return nil, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
	}
	plot := &tx.state.Plots[plotID]
	if slotID < 0 || slotID >= len(plot.Slots) {
		return nil, fmt.Errorf("%w: plot %d slot %d", domain.ErrSlotNotFound, plotID, slotID)
	}
	return &plot.Slots[slotID], nil
}

// PlantSeed consumes one seedID from the inventory and plants it at the
// transaction time. growthTimeMs is copied onto the plant.
func (tx *Tx) PlantSeed(plotID, slotID int, seedID string, growthTimeMs int64) error {
	slot, err := tx.slot(plotID, slotID)
	if err != nil {
		return err
	}
	if slot.Plant != nil {
		return fmt.Errorf("%w: plot %d slot %d", domain.ErrSlotOccupied, plotID, slotID)
	}
	if !tx.HasItem(seedID, 1) {
		return fmt.Errorf("%w: %s", domain.ErrNoSeed, seedID)
	}
	if err := tx.RemoveItem(seedID, 1); err != nil {
		return err
	}
	slot.Plant = &domain.Plant{SeedID: seedID, PlantedAt: tx.now, GrowthTimeMs: growthTimeMs}
	tx.emit(event.NewPlantAddedEvent(plotID, slotID, seedID, tx.now))
	return nil
}

// HarvestPlant clears an occupied slot and grants yields. Readiness is the caller's concern.
func (tx *Tx) HarvestPlant(plotID, slotID int, yields []domain.ItemStack) error {
	slot, err := tx.slot(plotID, slotID)
	if err != nil {
		return err
	}
	if slot.Plant == nil {
		return fmt.Errorf("%w: plot %d slot %d", domain.ErrSlotEmpty, plotID, slotID)
	}
	for _, y := range yields {
		if y.Quantity <= 0 {
			continue
		}
		if err := tx.AddItem(y.ItemID, y.Quantity); err != nil {
			return err
		}
	}
	slot.Plant = nil
	tx.emit(event.NewPlantHarvestedEvent(plotID, slotID, append([]domain.ItemStack(nil), yields...)))
	return nil
}

// Plot returns a copy of one plot
func (tx *Tx) Plot(plotID int) (domain.Plot, error) {
	if plotID < 0 || plotID >= len(tx.state.Plots) {
		return domain.Plot{}, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
	}
	c := domain.GameState{Plots: tx.state.Plots[plotID : plotID+1]}.Clone()
	return c.Plots[0], nil
}

// PlotCount returns the number of owned plots
func (tx *Tx) PlotCount() int { return len(tx.state.Plots) }

// AddPlot appends an empty plot and returns its id
func (tx *Tx) AddPlot() int {
	id := len(tx.state.Plots)
	tx.state.Plots = append(tx.state.Plots, domain.NewPlot(id, tx.slotsPerPlot))
	tx.emit(event.NewPlotPurchasedEvent(id))
	return id
}

// ShopStock returns a copy of the current stock
func (tx *Tx) ShopStock() []domain.ShopStock {
	return append([]domain.ShopStock(nil), tx.state.ShopStock...)
}

// LastShopRestock returns the restock phase timestamp
func (tx *Tx) LastShopRestock() int64 { return tx.state.LastShopRestock }

// SetShopStock replaces the stock and stamps lastShopRestock with the transaction time
func (tx *Tx) SetShopStock(stock []domain.ShopStock) {
	tx.PutShopStock(stock)
	tx.state.LastShopRestock = tx.now
}

// PutShopStock replaces the stock without moving the restock phase
func (tx *Tx) PutShopStock(stock []domain.ShopStock) {
	tx.state.ShopStock = append([]domain.ShopStock{}, stock...)
	tx.emit(event.NewShopRestockedEvent(tx.ShopStock()))
}

// BuyFromShop moves qty of seedID from the shop to the inventory and charges
// price*qty. Nothing changes unless every check passes.
func (tx *Tx) BuyFromShop(seedID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, qty)
	}
	idx := -1
	for i, s := range tx.state.ShopStock {
		if s.SeedID == seedID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotInStock, seedID)
	}
	entry := tx.state.ShopStock[idx]
	if entry.Quantity < qty {
		return fmt.Errorf("%w: %s (have %d, want %d)", domain.ErrInsufficientStock, seedID, entry.Quantity, qty)
	}
	if err := tx.SpendMoney(entry.Price*qty, domain.ReasonBuySeed); err != nil {
		return err
	}
	if err := tx.AddItem(seedID, qty); err != nil {
		return err
	}
	tx.state.ShopStock[idx].Quantity -= qty
	return nil
}

// SelectSeed sets the selected seed; an empty id clears it
func (tx *Tx) SelectSeed(seedID string) {
	if seedID == "" {
		tx.state.SelectedSeedID = nil
		return
	}
	tx.state.SelectedSeedID = &seedID
}

// SetCurrentPlotIndex selects a plot if the index is in range
func (tx *Tx) SetCurrentPlotIndex(index int) error {
	if index < 0 || index >= len(tx.state.Plots) {
		return fmt.Errorf("%w: %d", domain.ErrPlotNotFound, index)
	}
	tx.state.CurrentPlotIndex = index
	return nil
}

package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	PlantAdded     Type = domain.EventTypePlantAdded
	PlantHarvested Type = domain.EventTypePlantHarvested
	ItemAdded      Type = domain.EventTypeItemAdded
	ItemRemoved    Type = domain.EventTypeItemRemoved
	MoneyChanged   Type = domain.EventTypeMoneyChanged
	ShopRestocked  Type = domain.EventTypeShopRestocked
	RecipeCooked   Type = domain.EventTypeRecipeCooked
	ItemCrafted    Type = domain.EventTypeItemCrafted
	PlotPurchased  Type = domain.EventTypePlotPurchased
	GameTick       Type = domain.EventTypeGameTick
	GameLoaded     Type = domain.EventTypeGameLoaded
	GameSaved      Type = domain.EventTypeGameSaved
)

// AllTypes lists every game event type
var AllTypes = []Type{
	PlantAdded, PlantHarvested, ItemAdded, ItemRemoved, MoneyChanged, ShopRestocked,
	RecipeCooked, ItemCrafted, PlotPurchased, GameTick, GameLoaded, GameSaved,
}

// New wraps a payload in an Event of the current schema version
func New(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// Type-safe event constructors

func NewPlantAddedEvent(plotID, slotID int, seedID string, plantedAt int64) Event {
	return New(PlantAdded, domain.PlantAddedPayload{PlotID: plotID, SlotID: slotID, SeedID: seedID, PlantedAt: plantedAt})
}

func NewPlantHarvestedEvent(plotID, slotID int, yields []domain.ItemStack) Event {
	return New(PlantHarvested, domain.PlantHarvestedPayload{PlotID: plotID, SlotID: slotID, Yields: yields})
}

func NewItemAddedEvent(itemID string, qty int) Event {
	return New(ItemAdded, domain.ItemChangedPayload{ItemID: itemID, Quantity: qty})
}

func NewItemRemovedEvent(itemID string, qty int) Event {
	return New(ItemRemoved, domain.ItemChangedPayload{ItemID: itemID, Quantity: qty})
}

// NewMoneyChangedEvent carries a signed amount; spending is negative.
func NewMoneyChangedEvent(amount int, reason string) Event {
	return New(MoneyChanged, domain.MoneyChangedPayload{Amount: amount, Reason: reason})
}

func NewShopRestockedEvent(stock []domain.ShopStock) Event {
	return New(ShopRestocked, domain.ShopRestockedPayload{AvailableSeeds: stock})
}

// NewRecipeMadeEvent picks recipe:cooked or item:crafted from the recipe kind.
func NewRecipeMadeEvent(kind domain.RecipeKind, recipeID string, count int, output domain.ItemStack) Event {
	t := RecipeCooked
	if kind == domain.RecipeKindCrafting {
		t = ItemCrafted
	}
	return New(t, domain.RecipeMadePayload{RecipeID: recipeID, Count: count, Output: output})
}

func NewPlotPurchasedEvent(plotID int) Event {
	return New(PlotPurchased, domain.PlotPurchasedPayload{PlotID: plotID})
}

func NewGameTickEvent(ts int64) Event {
	return New(GameTick, domain.GameTickPayload{Timestamp: ts})
}

func NewGameLoadedEvent(state domain.GameState) Event {
	return New(GameLoaded, domain.GameLoadedPayload{State: state})
}

func NewGameSavedEvent(ts int64) Event {
	return New(GameSaved, domain.GameSavedPayload{Timestamp: ts})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the publishing half of Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Each handler runs in isolation: a panic or error in one handler is logged
// and collected, and the remaining handlers still run.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := invoke(ctx, handler, event); err != nil {
			logger.FromContext(ctx).Warn(LogMsgHandlerFailed, "event", event.Type, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

func invoke(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgHandlerPanicked, "event", event.Type, "panic", r)
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler(ctx, event)
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishDetached publishes with a bounded context and only logs failures.
// Emitters use it so listener errors never reach the caller.
func PublishDetached(ctx context.Context, p Publisher, events ...Event) {
	if p == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	for _, e := range events {
		if err := p.Publish(ctx, e); err != nil {
			logger.FromContext(ctx).Debug("Event listeners reported errors", "event", e.Type, "error", err)
		}
	}
}

const publishTimeout = 10 * time.Second

package metrics

import (
	"context"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/event"
	"github.com/osse101/PocketGarden_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event except ticks
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		if eventType == event.GameTick {
			continue
		}
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case domain.PlantAddedPayload:
		PlantsPlanted.WithLabelValues(p.SeedID).Inc()
	case domain.PlantHarvestedPayload:
		PlantsHarvested.Inc()
	case domain.ItemChangedPayload:
		if evt.Type == event.ItemAdded {
			ItemsGained.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		} else {
			ItemsConsumed.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		}
	case domain.MoneyChangedPayload:
		if p.Amount >= 0 {
			MoneyEarned.WithLabelValues(p.Reason).Add(float64(p.Amount))
		} else {
			MoneySpent.WithLabelValues(p.Reason).Add(float64(-p.Amount))
		}
	case domain.RecipeMadePayload:
		RecipesMade.WithLabelValues(string(evt.Type), p.RecipeID).Add(float64(p.Count))
	case domain.ShopRestockedPayload:
		ShopRestocks.Inc()
	case domain.PlotPurchasedPayload:
		PlotsPurchased.Inc()
	case domain.GameLoadedPayload, domain.GameSavedPayload:
	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

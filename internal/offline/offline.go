// Package offline reconciles a saved game with the time that passed while it
// was not running.
package offline

import (
	"fmt"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/growth"
)

// Summary reports what happened while the game was offline
type Summary struct {
	PlantsReadyToHarvest int   `json:"plantsReadyToHarvest"`
	ShopRestocksOccurred int   `json:"shopRestocksOccurred"`
	TimeOfflineMs        int64 `json:"timeOfflineMs"`
}

// Reconcile advances saved to resumeAt. It never touches plant records:
// readiness stays derived, and the plants that crossed their ready threshold
// during the gap are only counted. Whole missed restock intervals move
// lastShopRestock forward in interval steps and empty the shop so it is
// repopulated before display. A non-positive gap returns saved unchanged.
// restockIntervalMs <= 0 disables restock catch-up.
//
// The input is never mutated.
func Reconcile(saved domain.GameState, resumeAt, restockIntervalMs int64) (domain.GameState, Summary) {
	updated := saved.Clone()

	timeOffline := resumeAt - saved.LastSaveTime
	if timeOffline <= 0 {
		return updated, Summary{}
	}

	summary := Summary{TimeOfflineMs: timeOffline}

	for _, plot := range updated.Plots {
		for _, slot := range plot.Slots {
			if growth.BecameReadyWithin(slot.Plant, timeOffline, resumeAt) {
				summary.PlantsReadyToHarvest++
			}
		}
	}

	if restockIntervalMs > 0 {
		cycles := (resumeAt - updated.LastShopRestock) / restockIntervalMs
		if cycles > 0 {
			summary.ShopRestocksOccurred = int(cycles)
			updated.LastShopRestock += cycles * restockIntervalMs
			updated.ShopStock = []domain.ShopStock{}
		}
	}

	updated.LastSaveTime = resumeAt
	return updated, summary
}

// Welcome returns the user-facing lines for a summary, or nil when the gap
// was too short to mention.
func Welcome(s Summary) []string {
	if s.TimeOfflineMs <= WelcomeThresholdMs {
		return nil
	}
	lines := []string{"Welcome back! You were away for " + growth.FormatOffline(s.TimeOfflineMs)}
	if s.PlantsReadyToHarvest > 0 {
		lines = append(lines, pluralPlants(s.PlantsReadyToHarvest)+" ready to harvest!")
	}
	return lines
}

// WelcomeThresholdMs is the shortest gap that earns a welcome message
const WelcomeThresholdMs = 1000

func pluralPlants(n int) string {
	if n == 1 {
		return "1 plant is"
	}
	return fmt.Sprintf("%d plants are", n)
}

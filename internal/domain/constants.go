package domain

import "time"

// Starting values for a fresh game
const (
	StartingMoney = 100
)

// StartingInventory is the inventory granted to a new game
func StartingInventory() map[string]int {
	return map[string]int{
		"seed_tomato": 5,
		"seed_carrot": 3,
	}
}

// Reference tuning values
const (
	DefaultSlotsPerPlot        = 25
	DefaultShopRestockInterval = 5 * time.Minute
	DefaultAutoSaveInterval    = 30 * time.Second
	DefaultTickInterval        = time.Second
	DefaultMaxShopSeedTypes    = 6
)

// GameConfig holds the tunable values consumed by the game services
type GameConfig struct {
	SlotsPerPlot        int
	ShopRestockInterval time.Duration
	AutoSaveInterval    time.Duration
	TickInterval        time.Duration
	// MaxShopSeedTypes caps how many new distinct seed types one restock may add; 0 disables the cap.
	MaxShopSeedTypes int
}

// DefaultGameConfig returns the reference tuning
func DefaultGameConfig() GameConfig {
	return GameConfig{
		SlotsPerPlot:        DefaultSlotsPerPlot,
		ShopRestockInterval: DefaultShopRestockInterval,
		AutoSaveInterval:    DefaultAutoSaveInterval,
		TickInterval:        DefaultTickInterval,
		MaxShopSeedTypes:    DefaultMaxShopSeedTypes,
	}
}

// PlotPrice is one rung of the plot purchase ladder
type PlotPrice struct {
	PlotNumber int `json:"plotNumber" validate:"gte=2"`
	Price      int `json:"price" validate:"gte=0"`
}

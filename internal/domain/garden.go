package domain

// Plant is a crop instance in a slot. Readiness is never stored; it is
// derived from PlantedAt and GrowthTimeMs against the current clock.
type Plant struct {
	SeedID       string `json:"seedId"`
	PlantedAt    int64  `json:"plantedAt"`
	GrowthTimeMs int64  `json:"growthTimeMs"`
}

// PlotSlot is one planting position; a nil Plant means empty
type PlotSlot struct {
	ID    int    `json:"id"`
	Plant *Plant `json:"plant"`
}

// Plot is a fixed-size ordered grid of slots
type Plot struct {
	ID    int        `json:"id"`
	Slots []PlotSlot `json:"slots"`
}

// NewPlot creates an empty plot with the given number of slots
func NewPlot(id, slots int) Plot {
	p := Plot{ID: id, Slots: make([]PlotSlot, slots)}
	for i := range p.Slots {
		p.Slots[i].ID = i
	}
	return p
}

// SlotStatus is a read model of one slot at a given instant
type SlotStatus struct {
	SlotID      int    `json:"slotId"`
	SeedID      string `json:"seedId,omitempty"`
	Empty       bool   `json:"empty"`
	Ready       bool   `json:"ready"`
	Progress    int    `json:"progress"`
	RemainingMs int64  `json:"remainingMs"`
	Remaining   string `json:"remaining,omitempty"`
}

// PlotView is a read model of a whole plot at a given instant
type PlotView struct {
	PlotID  int          `json:"plotId"`
	Slots   []SlotStatus `json:"slots"`
	Ready   int          `json:"ready"`
	Empty   int          `json:"empty"`
	Growing int          `json:"growing"`
}

// HarvestResult describes one harvested slot
type HarvestResult struct {
	PlotID int         `json:"plotId"`
	SlotID int         `json:"slotId"`
	Yields []ItemStack `json:"yields"`
}

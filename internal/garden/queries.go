package garden

import (
	"fmt"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/growth"
)

// plant returns the plant in a slot and the current time, or nil when the
// slot is unknown or empty
func (s *service) plant(plotID, slotID int) (*domain.Plant, int64) {
	var (
		p   *domain.Plant
		now int64
	)
	s.store.View(func(state domain.GameState, t int64) {
		now = t
		if plotID < 0 || plotID >= len(state.Plots) {
			return
		}
		slots := state.Plots[plotID].Slots
		if slotID < 0 || slotID >= len(slots) {
			return
		}
		p = slots[slotID].Plant
	})
	return p, now
}

func (s *service) IsReady(plotID, slotID int) bool {
	p, now := s.plant(plotID, slotID)
	return p != nil && growth.IsReady(p.PlantedAt, p.GrowthTimeMs, now)
}

func (s *service) TimeRemaining(plotID, slotID int) int64 {
	p, now := s.plant(plotID, slotID)
	if p == nil {
		return 0
	}
	return growth.Remaining(p.PlantedAt, p.GrowthTimeMs, now)
}

func (s *service) FormattedTimeRemaining(plotID, slotID int) string {
	return growth.FormatRemaining(s.TimeRemaining(plotID, slotID))
}

func (s *service) Progress(plotID, slotID int) int {
	p, now := s.plant(plotID, slotID)
	if p == nil {
		return 0
	}
	return growth.ProgressPercent(p.PlantedAt, p.GrowthTimeMs, now)
}

func (s *service) CountReady(plotID int) int {
	v, err := s.PlotView(plotID)
	if err != nil {
		return 0
	}
	return v.Ready
}

func (s *service) CountEmpty(plotID int) int {
	v, err := s.PlotView(plotID)
	if err != nil {
		return 0
	}
	return v.Empty
}

func (s *service) CountGrowing(plotID int) int {
	v, err := s.PlotView(plotID)
	if err != nil {
		return 0
	}
	return v.Growing
}

// PlotView evaluates every slot of a plot at one instant
func (s *service) PlotView(plotID int) (domain.PlotView, error) {
	var (
		view domain.PlotView
		err  error
	)
	s.store.View(func(state domain.GameState, now int64) {
		if plotID < 0 || plotID >= len(state.Plots) {
			err = fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
			return
		}
		view = BuildPlotView(state.Plots[plotID], now)
	})
	return view, err
}

// BuildPlotView derives the slot statuses of plot at now
func BuildPlotView(plot domain.Plot, now int64) domain.PlotView {
	view := domain.PlotView{PlotID: plot.ID, Slots: make([]domain.SlotStatus, 0, len(plot.Slots))}
	for _, slot := range plot.Slots {
		st := domain.SlotStatus{SlotID: slot.ID}
		switch {
		case slot.Plant == nil:
			st.Empty = true
			view.Empty++
		default:
			g := growth.ForPlant(slot.Plant, now)
			st.SeedID = slot.Plant.SeedID
			st.Ready = g.Ready
			st.Progress = g.Progress
			st.RemainingMs = g.RemainingMs
			st.Remaining = growth.FormatRemaining(g.RemainingMs)
			if g.Ready {
				view.Ready++
			} else {
				view.Growing++
			}
		}
		view.Slots = append(view.Slots, st)
	}
	return view
}

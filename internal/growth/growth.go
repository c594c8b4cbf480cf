// Package growth derives plant readiness from planting time, growth duration
// and the current clock. All times are epoch milliseconds and every function
// is pure, so evaluating a past instant yields the historical answer.
package growth

import (
	"fmt"

	"github.com/osse101/PocketGarden_Go/internal/domain"
)

// ReadyLabel is shown in place of a countdown once a plant is ready
const ReadyLabel = "Ready!"

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining returns the milliseconds left until ready, never below zero.
func Remaining(plantedAt, growthTimeMs, now int64) int64 {
	r := growthTimeMs - (now - plantedAt)
	if r < 0 {
		return 0
	}
	return r
}

// IsReady reports whether the plant has finished growing at now.
func IsReady(plantedAt, growthTimeMs, now int64) bool {
	return Remaining(plantedAt, growthTimeMs, now) == 0
}

// ProgressPercent returns floor(100*elapsed/growth) clamped to [0, 100].
// A non-positive growth time counts as fully grown.
func ProgressPercent(plantedAt, growthTimeMs, now int64) int {
	if growthTimeMs <= 0 {
		return 100
	}
	elapsed := now - plantedAt
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= growthTimeMs {
		return 100
	}
	return int(elapsed * 100 / growthTimeMs)
}

// FormatRemaining renders a countdown as H:MM:SS or M:SS, or ReadyLabel when ms <= 0.
func FormatRemaining(ms int64) string {
	if ms <= 0 {
		return ReadyLabel
	}
	totalSeconds := ms / msPerSecond
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatOffline renders an away duration using its two largest units.
func FormatOffline(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	days := ms / msPerDay
	hours := (ms % msPerDay) / msPerHour
	minutes := (ms % msPerHour) / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// Status is the derived state of a plant at one instant
type Status struct {
	Ready       bool  `json:"ready"`
	RemainingMs int64 `json:"remainingMs"`
	Progress    int   `json:"progress"`
}

// ForPlant evaluates p at now. A nil plant reports the zero Status.
func ForPlant(p *domain.Plant, now int64) Status {
	if p == nil {
		return Status{}
	}
	return Status{
		Ready:       IsReady(p.PlantedAt, p.GrowthTimeMs, now),
		RemainingMs: Remaining(p.PlantedAt, p.GrowthTimeMs, now),
		Progress:    ProgressPercent(p.PlantedAt, p.GrowthTimeMs, now),
	}
}

// BecameReadyWithin reports whether p crossed its ready threshold during the
// window of length windowMs ending at now.
func BecameReadyWithin(p *domain.Plant, windowMs, now int64) bool {
	if p == nil || windowMs <= 0 {
		return false
	}
	elapsed := now - p.PlantedAt
	return elapsed-windowMs < p.GrowthTimeMs && p.GrowthTimeMs <= elapsed
}

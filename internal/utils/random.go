package utils

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource supplies the randomness used for shop restocks and harvest yields.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntRange returns a value in [min, max], or min when min > max.
	IntRange(min, max int) int
}

type pcgSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // Game logic randomness, not security critical
}

func (s *pcgSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *pcgSource) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(max-min+1) + min
}

// FixedSource replays scripted values; used by tests to pin outcomes.
// Once a script runs out its last value repeats.
type FixedSource struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
}

func (f *FixedSource) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[0]
	if len(f.Floats) > 1 {
		f.Floats = f.Floats[1:]
	}
	return v
}

// IntRange returns the next scripted int clamped into [min, max].
func (f *FixedSource) IntRange(min, max int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Ints) == 0 {
		return min
	}
	v := f.Ints[0]
	if len(f.Ints) > 1 {
		f.Ints = f.Ints[1:]
	}
	if v < min {
		return min
	}
	if max >= min && v > max {
		return max
	}
	return v
}

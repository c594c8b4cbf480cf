// Package clock abstracts wall-clock time so growth and restock timing can
// be driven deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock provides an abstraction for time operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// Millis returns the clock's current time as epoch milliseconds
func Millis(c Clock) int64 {
	return c.Now().UnixMilli()
}

// FromMillis converts epoch milliseconds to a time.Time
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// SimulatedClock allows time manipulation for testing
type SimulatedClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// NewSimulatedClockMillis creates a SimulatedClock at an epoch-millisecond instant
func NewSimulatedClockMillis(ms int64) *SimulatedClock {
	return NewSimulatedClock(FromMillis(ms))
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// AdvanceMillis moves the simulated time forward by ms milliseconds
func (c *SimulatedClock) AdvanceMillis(ms int64) {
	c.Advance(time.Duration(ms) * time.Millisecond)
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

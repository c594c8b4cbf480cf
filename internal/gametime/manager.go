// Package gametime drives the periodic game tick.
package gametime

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/event"
	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/scheduler"
	"github.com/osse101/PocketGarden_Go/internal/store"
	"github.com/osse101/PocketGarden_Go/internal/worker"
)

// Restocker is the part of the shop the tick depends on
type Restocker interface {
	RestockDue() bool
	Restock(ctx context.Context) ([]domain.ShopStock, error)
	EnsureStocked(ctx context.Context) error
}

// Manager emits game:tick at a fixed interval and restocks the shop when due.
// The tick never mutates state itself.
type Manager struct {
	store     *store.Store
	bus       event.Publisher
	shop      Restocker
	scheduler *scheduler.Scheduler
	interval  time.Duration

	lastTick atomic.Int64

	mu    sync.Mutex
	entry *scheduler.Entry
}

// NewManager creates a tick manager. interval <= 0 uses domain.DefaultTickInterval.
func NewManager(st *store.Store, bus event.Publisher, shop Restocker, sched *scheduler.Scheduler, interval time.Duration) *Manager {
	if interval <= 0 {
		interval = domain.DefaultTickInterval
	}
	m := &Manager{
		store:     st,
		bus:       bus,
		shop:      shop,
		scheduler: sched,
		interval:  interval,
	}
	m.lastTick.Store(st.Now())
	return m
}

// Start fills an empty shop and begins ticking. Calling it while running has no effect.
func (m *Manager) Start(ctx context.Context) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entry != nil {
		return
	}

	if err := m.shop.EnsureStocked(ctx); err != nil {
		log.Error("Failed to stock shop on start", "error", err)
	}
	m.entry = m.scheduler.Schedule(m.interval, worker.JobFunc(m.Tick))
	log.Info("Time manager started", "interval", m.interval)
}

// Stop halts ticking. Safe to call when not running.
func (m *Manager) Stop(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entry == nil {
		return
	}
	m.entry.Stop()
	m.entry = nil
	logger.FromContext(ctx).Info("Time manager stopped")
}

// Running reports whether the tick is scheduled
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entry != nil
}

// LastTick is the store time of the most recent tick
func (m *Manager) LastTick() int64 { return m.lastTick.Load() }

// Tick records the time, publishes game:tick and restocks when the interval elapsed
func (m *Manager) Tick(ctx context.Context) error {
	now := m.store.Now()
	m.lastTick.Store(now)
	event.PublishDetached(ctx, m.bus, event.NewGameTickEvent(now))

	if !m.shop.RestockDue() {
		return nil
	}
	if _, err := m.shop.Restock(ctx); err != nil {
		return err
	}
	return nil
}

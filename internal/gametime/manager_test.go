package gametime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/clock"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/event"
	"github.com/osse101/PocketGarden_Go/internal/scheduler"
	"github.com/osse101/PocketGarden_Go/internal/shop"
	"github.com/osse101/PocketGarden_Go/internal/store"
	"github.com/osse101/PocketGarden_Go/internal/testing/leaktest"
	"github.com/osse101/PocketGarden_Go/internal/utils"
	"github.com/osse101/PocketGarden_Go/internal/worker"
)

type fakeShop struct {
	due       bool
	restocked int
	ensured   int
	err       error
}

func (f *fakeShop) RestockDue() bool { return f.due }

func (f *fakeShop) Restock(ctx context.Context) ([]domain.ShopStock, error) {
	f.restocked++
	return nil, f.err
}

func (f *fakeShop) EnsureStocked(ctx context.Context) error {
	f.ensured++
	return nil
}

func TestTick_PublishesAndSkipsRestock(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSimulatedClockMillis(5_000)
	bus := event.NewMemoryBus()
	var ticks []int64
	bus.Subscribe(event.GameTick, func(_ context.Context, e event.Event) error {
		ticks = append(ticks, e.Payload.(domain.GameTickPayload).Timestamp)
		return nil
	})
	fs := &fakeShop{}
	m := NewManager(store.New(clk, bus, 4), bus, fs, nil, time.Second)

	clk.AdvanceMillis(1_000)
	require.NoError(t, m.Tick(ctx))

	assert.Equal(t, []int64{6_000}, ticks)
	assert.Equal(t, int64(6_000), m.LastTick())
	assert.Equal(t, 0, fs.restocked)
}

func TestTick_RestocksWhenDue(t *testing.T) {
	fs := &fakeShop{due: true}
	m := NewManager(store.New(clock.NewSimulatedClockMillis(0), nil, 4), nil, fs, nil, time.Second)

	require.NoError(t, m.Tick(context.Background()))
	assert.Equal(t, 1, fs.restocked)

	fs.err = errors.New("boom")
	assert.Error(t, m.Tick(context.Background()))
}

func TestTick_WithRealShop(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSimulatedClockMillis(1_000_000)
	st := store.New(clk, nil, 4)
	cfg := domain.DefaultGameConfig()
	svc := shop.NewService(st, catalog.Default(), &utils.FixedSource{Floats: []float64{0}, Ints: []int{5}}, cfg)
	_, err := svc.Restock(ctx)
	require.NoError(t, err)
	m := NewManager(st, nil, svc, nil, time.Second)

	clk.Advance(cfg.ShopRestockInterval - time.Millisecond)
	require.NoError(t, m.Tick(ctx))
	assert.Equal(t, int64(1_000_000), st.State().LastShopRestock, "not due yet")

	clk.AdvanceMillis(1)
	require.NoError(t, m.Tick(ctx))
	assert.Equal(t, clock.Millis(clk), st.State().LastShopRestock)
}

func TestStartStop(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		ctx := context.Background()
		pool := worker.NewPool(1, 4)
		pool.Start()
		sched := scheduler.New(pool)

		fs := &fakeShop{}
		m := NewManager(store.New(clock.NewSimulatedClockMillis(0), nil, 4), nil, fs, sched, time.Hour)

		m.Start(ctx)
		m.Start(ctx)
		assert.True(t, m.Running())
		assert.Equal(t, 1, fs.ensured, "second Start is a no-op")

		m.Stop(ctx)
		m.Stop(ctx)
		assert.False(t, m.Running())

		sched.Stop()
		pool.Stop()
	})
}

package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/PocketGarden_Go/internal/catalog"
	"github.com/osse101/PocketGarden_Go/internal/clock"
	"github.com/osse101/PocketGarden_Go/internal/config"
	"github.com/osse101/PocketGarden_Go/internal/crafting"
	"github.com/osse101/PocketGarden_Go/internal/event"
	"github.com/osse101/PocketGarden_Go/internal/garden"
	"github.com/osse101/PocketGarden_Go/internal/gametime"
	"github.com/osse101/PocketGarden_Go/internal/inventory"
	"github.com/osse101/PocketGarden_Go/internal/persistence"
	"github.com/osse101/PocketGarden_Go/internal/scheduler"
	"github.com/osse101/PocketGarden_Go/internal/server"
	"github.com/osse101/PocketGarden_Go/internal/shop"
	"github.com/osse101/PocketGarden_Go/internal/sse"
	"github.com/osse101/PocketGarden_Go/internal/store"
	"github.com/osse101/PocketGarden_Go/internal/utils"
	"github.com/osse101/PocketGarden_Go/internal/validation"
	"github.com/osse101/PocketGarden_Go/internal/worker"
)

// App holds the wired game and everything that must be shut down with it
type App struct {
	Catalog     *catalog.Catalog
	Store       *store.Store
	Bus         *event.MemoryBus
	Garden      garden.Service
	Shop        shop.Service
	Inventory   inventory.Service
	Kitchen     crafting.Station
	Workbench   crafting.Station
	Persistence *persistence.Manager
	Time        *gametime.Manager
	Events      *sse.Hub
	Server      *server.Server

	storage *Storage
	pool    *worker.Pool
	sched   *scheduler.Scheduler
}

// Build wires the game against the configured storage and clock. The saved
// game is not loaded until Start.
func Build(ctx context.Context, cfg *config.Config, clk clock.Clock) (*App, error) {
	schemas := validation.NewSchemaValidator()

	cat, err := LoadCatalog(cfg, schemas)
	if err != nil {
		return nil, err
	}

	storage, err := InitializeStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	game := cfg.Game()
	bus := InitializeEventSystem()
	st := store.New(clk, bus, game.SlotsPerPlot)
	rnd := utils.NewRandomSource(cfg.RandomSeed)

	pool := worker.NewPool(WorkerCount, WorkerQueueSize)
	sched := scheduler.New(pool)

	app := &App{
		Catalog:   cat,
		Store:     st,
		Bus:       bus,
		Garden:    garden.NewService(st, cat, rnd),
		Shop:      shop.NewService(st, cat, rnd, game),
		Inventory: inventory.NewService(st, cat),
		Kitchen:   crafting.NewKitchen(st, cat),
		Workbench: crafting.NewWorkbench(st, cat),
		storage:   storage,
		pool:      pool,
		sched:     sched,
	}
	app.Events = sse.NewHub(st.Now)
	sse.NewSubscriber(app.Events, bus).Subscribe()
	app.Time = gametime.NewManager(st, bus, app.Shop, sched, game.TickInterval)
	app.Persistence = persistence.NewManager(st, cat, storage.Saves, bus, schemas, sched, persistence.Options{
		Key:              cfg.SaveKey,
		AutoSaveInterval: game.AutoSaveInterval,
		RestockInterval:  game.ShopRestockInterval,
	})
	app.Server = server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Deps{
		State:     st,
		Garden:    app.Garden,
		Shop:      app.Shop,
		Inventory: app.Inventory,
		Kitchen:   app.Kitchen,
		Workbench: app.Workbench,
		Saves:     app.Persistence,
		Storage:   storage.Health,
		Now:       func() time.Time { return clock.FromMillis(st.Now()) },
		Events:    app.Events,
	})

	return app, nil
}

// Start loads the saved game and begins autosave and the game tick. It does
// not start the HTTP listener.
func (a *App) Start(ctx context.Context) persistence.LoadResult {
	a.pool.Start()
	a.Events.Start()

	res := a.Persistence.Init(ctx)
	a.Time.Start(ctx)

	slog.Info(LogMsgGameReady, "loaded", res.Success, "plots", len(a.Store.State().Plots))
	return res
}

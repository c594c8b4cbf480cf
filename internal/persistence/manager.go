// Package persistence moves the game state between the store and a save
// backend: load with offline catch-up, save, auto-save, export, import and reset.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/PocketGarden_Go/internal/clock"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/event"
	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/metrics"
	"github.com/osse101/PocketGarden_Go/internal/offline"
	"github.com/osse101/PocketGarden_Go/internal/repository"
	"github.com/osse101/PocketGarden_Go/internal/scheduler"
	"github.com/osse101/PocketGarden_Go/internal/store"
	"github.com/osse101/PocketGarden_Go/internal/utils"
	"github.com/osse101/PocketGarden_Go/internal/validation"
	"github.com/osse101/PocketGarden_Go/internal/worker"
)

// saveTriggers are the events after which the game is saved immediately
var saveTriggers = []event.Type{
	event.PlantHarvested,
	event.PlotPurchased,
	event.RecipeCooked,
	event.ItemCrafted,
}

// LoadResult reports the outcome of a load. Offline is set only on success.
type LoadResult struct {
	Success bool             `json:"success"`
	Offline *offline.Summary `json:"offline,omitempty"`
}

// Options configures a Manager
type Options struct {
	Key              string
	AutoSaveInterval time.Duration
	RestockInterval  time.Duration
}

// SeedCatalog resolves seed ids found in a loaded document
type SeedCatalog interface {
	Seed(id string) (domain.SeedDefinition, bool)
}

// Manager is the persistence gateway for one game
type Manager struct {
	store     *store.Store
	seeds     SeedCatalog
	saves     repository.Saves
	bus       event.Bus
	schemas   validation.SchemaValidator
	scheduler *scheduler.Scheduler
	opts      Options

	saveMu       sync.Mutex
	saved        bool
	savedVersion uint64

	mu          sync.Mutex
	autoSave    *scheduler.Entry
	subscribed  bool
	initialized bool
}

// NewManager creates a Manager. sched may be nil, in which case auto-save is unavailable.
func NewManager(st *store.Store, seeds SeedCatalog, saves repository.Saves, bus event.Bus, schemas validation.SchemaValidator, sched *scheduler.Scheduler, opts Options) *Manager {
	if opts.Key == "" {
		opts.Key = StorageKey
	}
	return &Manager{
		store:     st,
		seeds:     seeds,
		saves:     saves,
		bus:       bus,
		schemas:   schemas,
		scheduler: sched,
		opts:      opts,
	}
}

// Init loads the saved game, starts auto-save and subscribes the save triggers
func (m *Manager) Init(ctx context.Context) LoadResult {
	res := m.Load(ctx)
	m.StartAutoSave(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.subscribed && m.bus != nil {
		for _, t := range saveTriggers {
			m.bus.Subscribe(t, func(ctx context.Context, _ event.Event) error {
				return m.saveChanged(ctx)
			})
		}
		m.subscribed = true
	}
	m.initialized = true
	return res
}

// Save stamps lastSaveTime, writes the serialized state and emits game:saved
func (m *Manager) Save(ctx context.Context) error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	return m.save(ctx)
}

// saveChanged saves unless the last successful save already holds the
// current store version. One transaction raising several save triggers,
// such as a harvest-all, is written once.
func (m *Manager) saveChanged(ctx context.Context) error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.saved && m.store.Version() == m.savedVersion {
		return nil
	}
	return m.save(ctx)
}

func (m *Manager) save(ctx context.Context) (err error) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: save panicked: %v", domain.ErrStorageFailure, r)
		}
		if err != nil {
			metrics.SaveOperations.WithLabelValues(metrics.ResultFailure).Inc()
			log.Error(LogMsgSaveFailed, "error", err)
		}
	}()

	ts := m.store.UpdateLastSaveTime()
	state, version := m.store.Snapshot()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	if err := m.saves.Save(ctx, m.opts.Key, data); err != nil {
		return err
	}
	m.saved, m.savedVersion = true, version

	metrics.SaveOperations.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Debug(LogMsgGameSaved, "timestamp", ts, "bytes", len(data))
	event.PublishDetached(ctx, m.bus, event.NewGameSavedEvent(ts))
	return nil
}

// Load reads the stored game, applies offline catch-up and installs it.
// Any failure leaves the current state untouched and reports Success false.
func (m *Manager) Load(ctx context.Context) (res LoadResult) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgLoadFailed, "error", r)
			res = LoadResult{}
		}
	}()

	data, err := m.saves.Load(ctx, m.opts.Key)
	if errors.Is(err, domain.ErrSaveNotFound) {
		log.Info(LogMsgNoSaveFound)
		return LoadResult{}
	}
	if err != nil {
		log.Error(LogMsgLoadFailed, "error", err)
		return LoadResult{}
	}

	var saved domain.GameState
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Error(LogMsgLoadFailed, "error", fmt.Errorf("%w: %v", domain.ErrInvalidSave, err))
		return LoadResult{}
	}

	summary, err := m.install(ctx, saved)
	if err != nil {
		log.Error(LogMsgLoadFailed, "error", err)
		return LoadResult{}
	}

	log.Info(LogMsgGameLoaded, "offline_ms", summary.TimeOfflineMs,
		"plants_ready", summary.PlantsReadyToHarvest, "restocks", summary.ShopRestocksOccurred)
	for _, line := range offline.Welcome(summary) {
		log.Info(line)
	}
	return LoadResult{Success: true, Offline: &summary}
}

// install reconciles saved against now and loads it into the store
func (m *Manager) install(ctx context.Context, saved domain.GameState) (offline.Summary, error) {
	saved.Normalize()
	if err := m.sanitize(ctx, &saved); err != nil {
		return offline.Summary{}, err
	}
	updated, summary := offline.Reconcile(saved, m.store.Now(), m.opts.RestockInterval.Milliseconds())
	if !m.store.LoadState(ctx, updated) {
		return offline.Summary{}, fmt.Errorf("%w: state rejected by store", domain.ErrInvalidSave)
	}
	return summary, nil
}

// sanitize enforces the document invariants that depend on the seed catalog.
// Plants of unknown seeds and empty plot lists reject the document; unknown
// shop entries and an unknown selected seed are dropped.
func (m *Manager) sanitize(ctx context.Context, st *domain.GameState) error {
	if len(st.Plots) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSave, ErrMsgNoPlots)
	}
	if m.seeds == nil {
		return nil
	}
	log := logger.FromContext(ctx)

	for _, p := range st.Plots {
		for _, slot := range p.Slots {
			if slot.Plant == nil {
				continue
			}
			if _, ok := m.seeds.Seed(slot.Plant.SeedID); !ok {
				return fmt.Errorf("%w: plot %d slot %d: %w: %s",
					domain.ErrInvalidSave, p.ID, slot.ID, domain.ErrUnknownSeed, slot.Plant.SeedID)
			}
		}
	}

	stock := make([]domain.ShopStock, 0, len(st.ShopStock))
	for _, e := range st.ShopStock {
		if _, ok := m.seeds.Seed(e.SeedID); !ok {
			log.Warn(LogMsgDroppedShopEntry, "seed", e.SeedID)
			continue
		}
		stock = append(stock, e)
	}
	st.ShopStock = stock

	if st.SelectedSeedID != nil {
		if _, ok := m.seeds.Seed(*st.SelectedSeedID); !ok {
			log.Warn(LogMsgClearedSelectedSeed, "seed", *st.SelectedSeedID)
			st.SelectedSeedID = nil
		}
	}
	return nil
}

// ExportTo saves, then writes the current state to w as indented JSON
func (m *Manager) ExportTo(ctx context.Context, w io.Writer) error {
	if err := m.Save(ctx); err != nil {
		logger.FromContext(ctx).Warn("Export continuing after failed save", "error", err)
	}
	data, err := json.MarshalIndent(m.store.SerializableState(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

// ExportFileName is the dated file name used when exporting into a directory
func ExportFileName(t time.Time) string {
	return ExportFilePrefix + t.UTC().Format(ExportDateLayout) + ".json"
}

// ExportFile exports to path. When path is a directory the dated export file
// name is used inside it. It returns the path written.
func (m *Manager) ExportFile(ctx context.Context, path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ExportFileName(clock.FromMillis(m.store.Now())))
	}
	var buf bytes.Buffer
	if err := m.ExportTo(ctx, &buf); err != nil {
		return "", err
	}
	if err := utils.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return path, nil
}

// Import validates a document, applies offline catch-up, installs it and saves.
// A rejected document leaves the current state untouched.
func (m *Manager) Import(ctx context.Context, r io.Reader) (offline.Summary, error) {
	log := logger.FromContext(ctx)

	data, err := io.ReadAll(io.LimitReader(r, MaxImportBytes+1))
	if err != nil {
		return offline.Summary{}, fmt.Errorf("%w: failed to read save: %v", domain.ErrInvalidSave, err)
	}
	if len(data) > MaxImportBytes {
		return offline.Summary{}, fmt.Errorf("%w: save exceeds %d bytes", domain.ErrInvalidSave, MaxImportBytes)
	}

	if err := m.schemas.ValidateBytes(data, validation.SchemaSave); err != nil {
		log.Warn(LogMsgImportRejected, "error", err)
		return offline.Summary{}, fmt.Errorf("%w: %v", domain.ErrInvalidSave, err)
	}

	var saved domain.GameState
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn(LogMsgImportRejected, "error", err)
		return offline.Summary{}, fmt.Errorf("%w: failed to parse save: %v", domain.ErrInvalidSave, err)
	}

	summary, err := m.install(ctx, saved)
	if err != nil {
		log.Warn(LogMsgImportRejected, "error", err)
		return offline.Summary{}, err
	}
	if err := m.Save(ctx); err != nil {
		return summary, err
	}
	return summary, nil
}

// ImportFile imports the document stored at path
func (m *Manager) ImportFile(ctx context.Context, path string) (offline.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return offline.Summary{}, fmt.Errorf("%w: failed to open %s: %v", domain.ErrInvalidSave, path, err)
	}
	defer f.Close()
	return m.Import(ctx, f)
}

// Reset deletes the stored game and installs a fresh one
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.saves.Delete(ctx, m.opts.Key); err != nil {
		logger.FromContext(ctx).Error("Failed to delete save", "error", err)
		return err
	}
	m.store.ResetState(ctx)
	logger.FromContext(ctx).Info(LogMsgGameReset)
	return nil
}

// HasSave reports whether a stored game exists. Backend errors count as no save.
func (m *Manager) HasSave(ctx context.Context) bool {
	ok, err := m.saves.Exists(ctx, m.opts.Key)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to check for save", "error", err)
		return false
	}
	return ok
}

// StartAutoSave schedules periodic saves. Calling it while running has no effect.
func (m *Manager) StartAutoSave(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.autoSave != nil || m.scheduler == nil || m.opts.AutoSaveInterval <= 0 {
		return
	}
	m.autoSave = m.scheduler.Schedule(m.opts.AutoSaveInterval, worker.JobFunc(m.Save))
	logger.FromContext(ctx).Info(LogMsgAutoSaveStarted, "interval", m.opts.AutoSaveInterval)
}

// StopAutoSave cancels periodic saves. Safe to call when not running.
func (m *Manager) StopAutoSave(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.autoSave == nil {
		return
	}
	m.autoSave.Stop()
	m.autoSave = nil
	logger.FromContext(ctx).Info(LogMsgAutoSaveStopped)
}

// Shutdown stops auto-save and attempts a final bounded save. Failure is only logged.
func (m *Manager) Shutdown(ctx context.Context) {
	m.StopAutoSave(ctx)

	m.mu.Lock()
	initialized := m.initialized
	m.mu.Unlock()
	if !initialized {
		logger.FromContext(ctx).Warn(LogMsgFinalSaveSkipped)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownSaveTimeout)
	defer cancel()
	if err := m.Save(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgFinalSaveFailed, "error", err)
	}
}

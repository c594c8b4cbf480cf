package bootstrap

import (
	"context"
	"log/slog"
)

// Shutdown stops the application in dependency order:
// 1. Event streams, then the HTTP server (stop accepting new requests)
// 2. Game tick (no further state changes from the clock)
// 3. Persistence (stop autosave, write the final save)
// 4. Scheduler and worker pool
// 5. Save storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func (a *App) Shutdown(ctx context.Context) {
	slog.Info(LogMsgShuttingDownServer)

	// Open event streams would otherwise hold the server shutdown until timeout
	a.Events.Stop()

	if a.Server != nil {
		if err := a.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		} else {
			slog.Info(LogMsgServerStopped)
		}
	}

	a.Time.Stop(ctx)

	a.Persistence.Shutdown(ctx)

	a.sched.Stop()
	a.pool.Stop()
	slog.Info(LogMsgWorkersStopped)

	a.storage.Close()
	slog.Info(LogMsgStorageClosed)
}

package persistence

import "time"

// StorageKey is the key the game document is stored under
const StorageKey = "pocket-garden-save"

// ExportFilePrefix and ExportDateLayout name exported files, e.g.
// pocket-garden-save-2024-05-01.json
const (
	ExportFilePrefix = "pocket-garden-save-"
	ExportDateLayout = "2006-01-02"
)

const (
	// MaxImportBytes bounds the size of an imported document
	MaxImportBytes = 10 << 20

	// ShutdownSaveTimeout bounds the final save
	ShutdownSaveTimeout = 5 * time.Second
)

// Log messages
const (
	LogMsgGameSaved        = "Game saved"
	LogMsgSaveFailed       = "Failed to save game"
	LogMsgLoadFailed       = "Failed to load game"
	LogMsgNoSaveFound      = "No save found, starting a new game"
	LogMsgGameLoaded       = "Game loaded"
	LogMsgImportRejected   = "Rejected imported save"
	LogMsgGameReset        = "Game reset"
	LogMsgAutoSaveStarted  = "Auto-save started"
	LogMsgAutoSaveStopped  = "Auto-save stopped"
	LogMsgFinalSaveFailed  = "Final save on shutdown failed"
	LogMsgFinalSaveSkipped = "Final save skipped, manager not initialized"

	LogMsgDroppedShopEntry    = "Dropped shop entry for unknown seed"
	LogMsgClearedSelectedSeed = "Cleared unknown selected seed"
)

// ErrMsgNoPlots rejects documents without any plot
const ErrMsgNoPlots = "save has no plots"

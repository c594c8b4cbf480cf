package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a session starts
	LogFileRetentionCount = 9

	// ServiceName is attached to every log record
	ServiceName = "pocket-garden"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingPocketGarden = "Starting Pocket Garden"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgFailedCreateLogsDir  = "failed to create logs directory"
	LogMsgFailedOpenLogFile    = "failed to open log file"
	LogMsgFailedDeleteOldLog   = "Failed to delete old log file"
)

// =============================================================================
// Storage Configuration
// =============================================================================

const (
	LogMsgStorageInitialized = "Save storage initialized"
	LogMsgSaveCacheEnabled   = "Save cache enabled"
	ErrMsgFailedOpenSaveDir  = "failed to open save directory"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	ErrMsgUnknownStorage     = "unknown storage backend"
	ErrMsgFailedLoadCatalog  = "failed to load catalog"
	LogMsgCatalogLoaded      = "Catalog loaded"
	LogMsgMetricsRegistered  = "Metrics collector registered"
	LogMsgGameReady          = "Game ready"
)

// =============================================================================
// Worker Configuration
// =============================================================================

const (
	// WorkerCount is the number of goroutines running scheduled jobs
	WorkerCount = 2

	// WorkerQueueSize bounds pending scheduled jobs
	WorkerQueueSize = 16
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStorageClosed        = "Save storage closed"
	LogMsgWorkersStopped       = "Scheduled jobs stopped"

	// ShutdownTimeout bounds the whole graceful shutdown
	ShutdownTimeout = 15 * time.Second
)

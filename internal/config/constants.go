package config

import "time"

// Storage backends
const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
)

// Defaults
const (
	DefaultEnvironment   = "dev"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultPort          = 8080
	DefaultSavePath      = "data/saves"
	DefaultSaveKey       = "pocket-garden-save"
	DefaultSaveCacheSize = 8
	DefaultSaveCacheTTL  = 10 * time.Minute
	DefaultDBPort        = 5432
	DefaultDBName        = "pocketgarden"
	DefaultDBMaxConns    = 4
)

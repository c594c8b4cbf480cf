package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/PocketGarden_Go/internal/database"
	"github.com/osse101/PocketGarden_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	Port        int `validate:"gte=0,lte=65535"`

	// APIKey guards the /api routes; empty leaves them open
	APIKey         string
	TrustedProxies []string `validate:"dive,ip"`

	StorageBackend string        `validate:"oneof=file postgres"`
	SavePath       string        `validate:"required_if=StorageBackend file"`
	SaveKey        string        `validate:"required,excludesall=/\\"`
	SaveCacheSize  int           `validate:"gte=0"`
	SaveCacheTTL   time.Duration `validate:"gte=0"`

	DBUser     string `validate:"required_if=StorageBackend postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=StorageBackend postgres"`
	DBPort     int    `validate:"gte=0,lte=65535"`
	DBName     string `validate:"required_if=StorageBackend postgres"`
	DBMaxConns int    `validate:"gte=1"`

	SlotsPerPlot        int           `validate:"gte=1"`
	ShopRestockInterval time.Duration `validate:"gte=0"`
	AutoSaveInterval    time.Duration `validate:"gte=0"`
	TickInterval        time.Duration `validate:"gt=0"`
	MaxShopSeedTypes    int           `validate:"gte=0"`

	CatalogPath string
	RandomSeed  uint64
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendFile)),
		SavePath:       getEnv("SAVE_PATH", DefaultSavePath),
		SaveKey:        getEnv("SAVE_KEY", DefaultSaveKey),
		SaveCacheSize:  getEnvAsInt("SAVE_CACHE_SIZE", DefaultSaveCacheSize),
		SaveCacheTTL:   getEnvAsDuration("SAVE_CACHE_TTL", DefaultSaveCacheTTL),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvAsInt("DB_PORT", DefaultDBPort),
		DBName:     getEnv("DB_NAME", DefaultDBName),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		SlotsPerPlot:        getEnvAsInt("SLOTS_PER_PLOT", domain.DefaultSlotsPerPlot),
		ShopRestockInterval: getEnvAsDuration("SHOP_RESTOCK_INTERVAL", domain.DefaultShopRestockInterval),
		AutoSaveInterval:    getEnvAsDuration("AUTOSAVE_INTERVAL", domain.DefaultAutoSaveInterval),
		TickInterval:        getEnvAsDuration("TICK_INTERVAL", domain.DefaultTickInterval),
		MaxShopSeedTypes:    getEnvAsInt("MAX_SHOP_SEED_TYPES", domain.DefaultMaxShopSeedTypes),

		CatalogPath: getEnv("CATALOG_PATH", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if s := getEnv("RANDOM_SEED", ""); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED value: %w", err)
		}
		cfg.RandomSeed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field in one error
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Game returns the game tuning derived from the configuration
func (c *Config) Game() domain.GameConfig {
	return domain.GameConfig{
		SlotsPerPlot:        c.SlotsPerPlot,
		ShopRestockInterval: c.ShopRestockInterval,
		AutoSaveInterval:    c.AutoSaveInterval,
		TickInterval:        c.TickInterval,
		MaxShopSeedTypes:    c.MaxShopSeedTypes,
	}
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

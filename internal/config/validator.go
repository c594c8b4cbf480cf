package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredPostgresEnvVars must be set when STORAGE_BACKEND is postgres
var RequiredPostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_NAME",
}

// ValidateEnv checks that the variables the selected storage backend needs are set
func ValidateEnv() error {
	if !strings.EqualFold(os.Getenv("STORAGE_BACKEND"), StorageBackendPostgres) {
		return nil
	}

	var missing []string
	for _, envVar := range RequiredPostgresEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("RANDOM_SEED") != "" && strings.EqualFold(os.Getenv("ENVIRONMENT"), "prod") {
		warnings = append(warnings, "RANDOM_SEED is set in production - shop draws and yields will be predictable")
	}

	return warnings, nil
}

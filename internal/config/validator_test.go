package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_FileBackendNeedsNothing(t *testing.T) {
	clearEnvVars(t)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_PostgresMissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DB_USER", "garden")

	err := ValidateEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DB_USER", "garden")
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "garden")

	warnings, err := ValidateEnvWithWarnings()

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
}

func TestValidateEnvWithWarnings_SeededProduction(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("RANDOM_SEED", "7")

	warnings, err := ValidateEnvWithWarnings()

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "RANDOM_SEED")
}

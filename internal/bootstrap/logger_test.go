package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PocketGarden_Go/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, "session_2026-01-01_00-00-00.log")
	assert.Contains(t, logs, "session_2026-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestCleanupLogs_FewFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session_a.log"), nil, 0o600))

	cleanupLogs(dir)

	assert.FileExists(t, filepath.Join(dir, "session_a.log"))
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{LogDir: dir, LogLevel: "info", LogFormat: "text", Environment: "test"}
	var console bytes.Buffer

	f, err := setupLogger(cfg, &console, time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, filepath.Join(dir, "session_2026-03-04_05-06-07.log"), f.Name())
	assert.Contains(t, console.String(), LogMsgLoggingInitialized)

	written, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(written), LogMsgStartingPocketGarden)
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvHome, EnvDB, EnvContent, EnvLogFile, EnvLogLvl} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, filepath.Join(home, "mountainflow.db"), cfg.DBPath)
	assert.Empty(t, cfg.ContentPath)
	assert.Empty(t, cfg.LogFile)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvDB, ":memory:")
	t.Setenv(EnvLogLvl, "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DBPath)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"),
		[]byte("MOUNTAINFLOW_CONTENT=/tmp/alps.yaml\nMOUNTAINFLOW_LOG_FILE=/tmp/flow.log\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvContent)
		os.Unsetenv(EnvLogFile)
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/alps.yaml", cfg.ContentPath)
	assert.Equal(t, "/tmp/flow.log", cfg.LogFile)
}

func TestLoad_ProcessEnvWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvContent, "/etc/mountainflow/content.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"),
		[]byte("MOUNTAINFLOW_CONTENT=/tmp/ignored.yaml\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/etc/mountainflow/content.yaml", cfg.ContentPath)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvLogLvl, "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvLogLvl)
}

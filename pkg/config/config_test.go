package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzgrid/interfere/pkg/table"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, table.DefaultMaxAtoms, cfg.MaxAtoms)
	assert.Equal(t, table.DefaultCharges(), cfg.Charges)
	assert.Equal(t, table.DefaultThreshold, cfg.Threshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestCacheFile(t *testing.T) {
	cfg := Config{CacheDir: "/tmp/cache"}
	assert.Equal(t, filepath.Join("/tmp/cache", "groups.db"), cfg.CacheFile())
	assert.Equal(t, filepath.Join("/tmp/cache", "labels.csv"), cfg.LabelFile())

	cfg.CachePath = "/elsewhere/my.db"
	assert.Equal(t, "/elsewhere/my.db", cfg.CacheFile())
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interfere.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"max_atoms: 4\ncharges: [1, 2, 3]\nthreshold: 0.5\nlog_level: debug\ncache_dir: /var/cache/interfere\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxAtoms)
	assert.Equal(t, []int{1, 2, 3}, cfg.Charges)
	assert.Equal(t, 0.5, cfg.Threshold)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/cache/interfere", cfg.CacheDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingSearchPathFallsBackToDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, table.DefaultMaxAtoms, cfg.MaxAtoms)
}

func TestEnvOverrides(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("INTERFERE_MAX_ATOMS", "5")
	t.Setenv("INTERFERE_THRESHOLD", "0.25")
	t.Setenv("INTERFERE_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxAtoms)
	assert.Equal(t, 0.25, cfg.Threshold)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfigureLogging(t *testing.T) {
	prev := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(prev) })

	require.NoError(t, ConfigureLogging("debug"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	assert.ErrorIs(t, ConfigureLogging("nope"), ErrBadLogLevel)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg := Load(t.TempDir())
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.5, cfg.Volume)
	assert.Equal(t, "peon", cfg.ActivePack)
}

func TestLoadCorruptReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("{not json"), 0o644))
	assert.Equal(t, Default(), Load(dir))
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte(`{"volume": 0.8}`), 0o644))

	cfg := Load(dir)
	assert.Equal(t, 0.8, cfg.Volume)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 3, cfg.AnnoyedThreshold)
	assert.Equal(t, 10, cfg.AnnoyedWindowSeconds)
}

func TestLoadDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte(`{"enabled": false}`), 0o644))
	assert.False(t, Load(dir).Enabled)
}

func TestLoadClampsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	doc := `{"volume": 7.5, "annoyed_threshold": -2, "annoyed_window_seconds": 0, "active_pack": ""}`
	require.NoError(t, os.WriteFile(Path(dir), []byte(doc), 0o644))

	cfg := Load(dir)
	assert.Equal(t, 1.0, cfg.Volume)
	assert.Equal(t, 3, cfg.AnnoyedThreshold)
	assert.Equal(t, 10, cfg.AnnoyedWindowSeconds)
	assert.Equal(t, "peon", cfg.ActivePack)
}

func TestCategoryEnabledDefaultsTrue(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.CategoryEnabled("task.complete"))

	cfg.Categories["task.complete"] = false
	assert.False(t, cfg.CategoryEnabled("task.complete"))
	assert.True(t, cfg.CategoryEnabled("session.start"))
}

func TestSeedCreatesDefaultConfigOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chime")
	require.NoError(t, Seed(dir))

	cfg := Load(dir)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "peon", cfg.ActivePack)
	assert.True(t, cfg.Categories["user.spam"])

	// A second seed must not clobber user edits.
	cfg.ActivePack = "custom"
	require.NoError(t, Save(dir, cfg))
	require.NoError(t, Seed(dir))
	assert.Equal(t, "custom", Load(dir).ActivePack)
}

func TestPausedMarker(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Paused(dir))

	require.NoError(t, SetPaused(dir, true))
	assert.True(t, Paused(dir))

	require.NoError(t, SetPaused(dir, false))
	assert.False(t, Paused(dir))

	// Resuming while already active is fine.
	require.NoError(t, SetPaused(dir, false))
}

func TestBaseDirEnvOverride(t *testing.T) {
	t.Setenv("CHIME_DIR", "/tmp/elsewhere")
	assert.Equal(t, "/tmp/elsewhere", BaseDir())
}

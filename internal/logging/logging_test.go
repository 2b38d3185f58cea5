package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForHookDisabledWritesNothing(t *testing.T) {
	dir := t.TempDir()
	log := ForHook(dir, false)
	log.Debug("dropped")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestForHookDebugWritesJSONRecords(t *testing.T) {
	dir := t.TempDir()
	log := ForHook(dir, true)
	log.Debug("event", "type", "task_complete")

	data, err := os.ReadFile(filepath.Join(dir, "chime.log"))
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "event", record["msg"])
	assert.Equal(t, "task_complete", record["type"])
	assert.Equal(t, "hook", record["component"])
}

func TestNewRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.log")
	log := New(Config{Level: slog.LevelWarn, FilePath: path})

	log.Info("below threshold")
	log.Warn("recorded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "below threshold")
	assert.Contains(t, string(data), "recorded")
}

func TestNewUnwritablePathDegradesToDiscard(t *testing.T) {
	log := New(Config{FilePath: string([]byte{0}) + "/nope/log"})
	assert.NotPanics(t, func() { log.Info("goes nowhere") })
}

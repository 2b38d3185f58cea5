package state

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingYieldsEmptyState(t *testing.T) {
	ls, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ls.Release()

	assert.NotNil(t, ls.State.LastPlayed)
	assert.Empty(t, ls.State.PromptTimestamps)
	assert.Empty(t, ls.State.AgentSessions)
}

func TestOpenCorruptYieldsEmptyState(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("]]garbage"), 0o644))

	ls, err := Open(dir)
	require.NoError(t, err)
	defer ls.Release()
	assert.Empty(t, ls.State.LastPlayed)
}

func TestCommitRoundtrip(t *testing.T) {
	dir := t.TempDir()

	ls, err := Open(dir)
	require.NoError(t, err)
	ls.State.LastPlayed["task.complete"] = "done1.wav"
	ls.State.PromptTimestamps = []float64{1700000000.5}
	ls.State.MarkAgent("sess-1")
	require.NoError(t, ls.Commit())

	ls, err = Open(dir)
	require.NoError(t, err)
	defer ls.Release()
	assert.Equal(t, "done1.wav", ls.State.LastPlayed["task.complete"])
	assert.Equal(t, []float64{1700000000.5}, ls.State.PromptTimestamps)
	assert.True(t, ls.State.IsAgent("sess-1"))
}

func TestReleaseDiscardsChanges(t *testing.T) {
	dir := t.TempDir()

	ls, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, ls.Commit())

	ls, err = Open(dir)
	require.NoError(t, err)
	ls.State.LastPlayed["x"] = "y.wav"
	ls.Release()

	ls, err = Open(dir)
	require.NoError(t, err)
	defer ls.Release()
	assert.Empty(t, ls.State.LastPlayed)
}

func TestMarkAgentIsIdempotent(t *testing.T) {
	var st State
	st.MarkAgent("a")
	st.MarkAgent("a")
	st.MarkAgent("b")
	st.MarkAgent("")

	assert.Equal(t, []string{"a", "b"}, st.AgentSessions)
	assert.True(t, st.IsAgent("a"))
	assert.False(t, st.IsAgent("c"))
}

func TestWriteBoardPrunesStaleSessions(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1700000000, 0)

	stale := Board{Sessions: map[string]BoardSession{
		"old": {Project: "old", State: "done", UpdatedAt: now.Add(-11 * time.Minute).Unix()},
		"hot": {Project: "hot", State: "working", UpdatedAt: now.Add(-1 * time.Minute).Unix()},
	}}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(BoardPath(dir), data, 0o644))

	WriteBoard(dir, "new", "myproj", "ready", "", now)

	data, err = os.ReadFile(BoardPath(dir))
	require.NoError(t, err)
	var board Board
	require.NoError(t, json.Unmarshal(data, &board))

	assert.NotContains(t, board.Sessions, "old")
	assert.Contains(t, board.Sessions, "hot")
	assert.Equal(t, "myproj", board.Sessions["new"].Project)
	assert.Equal(t, "ready", board.Sessions["new"].State)
}

func TestWriteBoardIgnoresEmptySession(t *testing.T) {
	dir := t.TempDir()
	WriteBoard(dir, "", "proj", "ready", "", time.Now())
	_, err := os.Stat(BoardPath(dir))
	assert.True(t, os.IsNotExist(err))
}

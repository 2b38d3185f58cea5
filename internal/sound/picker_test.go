package sound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chime/internal/pack"
	"chime/internal/state"
)

func TestChooseEmptyPool(t *testing.T) {
	_, ok := Choose(nil, "")
	assert.False(t, ok)
}

func TestChooseSingletonIgnoresRepeat(t *testing.T) {
	pool := []pack.Sound{{File: "a.wav"}}
	chosen, ok := Choose(pool, "a.wav")
	require.True(t, ok)
	assert.Equal(t, "a.wav", chosen.File)
}

func TestChooseAvoidsLastPlayed(t *testing.T) {
	pool := []pack.Sound{{File: "a.wav"}, {File: "b.wav"}}
	for i := 0; i < 25; i++ {
		chosen, ok := Choose(pool, "a.wav")
		require.True(t, ok)
		assert.Equal(t, "b.wav", chosen.File)
	}
}

func TestChooseAllCandidatesMatchLast(t *testing.T) {
	// Duplicate entries equal to the last pick must not empty the pool.
	pool := []pack.Sound{{File: "a.wav"}, {File: "a.wav"}}
	chosen, ok := Choose(pool, "a.wav")
	require.True(t, ok)
	assert.Equal(t, "a.wav", chosen.File)
}

func writeFixturePack(t *testing.T, baseDir string) {
	t.Helper()
	dir := pack.Dir(baseDir, "peon")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	manifest := `{
	  "name": "peon",
	  "categories": {
	    "task.complete": {"sounds": [{"file": "done1.wav"}, {"file": "done2.wav"}]},
	    "session.start": {"sounds": []}
	  }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, pack.ManifestName), []byte(manifest), 0o644))
}

func TestPickUpdatesLastPlayed(t *testing.T) {
	base := t.TempDir()
	writeFixturePack(t, base)
	st := &state.State{LastPlayed: map[string]string{}}

	path := Pick(base, "peon", "task.complete", st)
	require.NotEmpty(t, path)
	assert.Equal(t, pack.Dir(base, "peon"), filepath.Dir(path))
	assert.Equal(t, filepath.Base(path), st.LastPlayed["task.complete"])
}

func TestPickAlternatesBetweenTwoSounds(t *testing.T) {
	base := t.TempDir()
	writeFixturePack(t, base)
	st := &state.State{LastPlayed: map[string]string{}}

	prev := ""
	for i := 0; i < 10; i++ {
		path := Pick(base, "peon", "task.complete", st)
		require.NotEmpty(t, path)
		file := filepath.Base(path)
		if prev != "" {
			assert.NotEqual(t, prev, file)
		}
		prev = file
	}
}

func TestPickEmptyCategory(t *testing.T) {
	base := t.TempDir()
	writeFixturePack(t, base)
	st := &state.State{LastPlayed: map[string]string{}}

	assert.Empty(t, Pick(base, "peon", "session.start", st))
	assert.NotContains(t, st.LastPlayed, "session.start")
}

func TestPickUnknownCategory(t *testing.T) {
	base := t.TempDir()
	writeFixturePack(t, base)
	st := &state.State{LastPlayed: map[string]string{}}

	assert.Empty(t, Pick(base, "peon", "no.such.category", st))
	assert.Empty(t, st.LastPlayed)
}

func TestPickMissingPack(t *testing.T) {
	st := &state.State{LastPlayed: map[string]string{}}
	assert.Empty(t, Pick(t.TempDir(), "ghost", "task.complete", st))
}

// Package sound selects which sound file to play for a category,
// avoiding back-to-back repeats of the same file.
package sound

import (
	"math/rand"
	"path/filepath"

	"chime/internal/pack"
	"chime/internal/state"
)

// Choose picks a uniform-random sound from candidates, excluding the one
// matching last when the pool has more than one entry. A singleton pool is
// returned as-is (a repeat cannot be avoided). Returns false when there is
// nothing to choose from.
func Choose(candidates []pack.Sound, last string) (pack.Sound, bool) {
	if len(candidates) == 0 {
		return pack.Sound{}, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	pool := make([]pack.Sound, 0, len(candidates))
	for _, s := range candidates {
		if s.File != last {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		// Every candidate matches the last pick (duplicate entries).
		pool = candidates
	}
	return pool[rand.Intn(len(pool))], true
}

// Pick resolves a category to a concrete file path from the active pack
// and records the pick in state so the next call avoids repeating it.
// Returns "" when the pack or category has no playable sound.
func Pick(baseDir, packName, category string, st *state.State) string {
	m, err := pack.Load(baseDir, packName)
	if err != nil {
		return ""
	}
	cat, ok := m.Categories[category]
	if !ok {
		return ""
	}
	chosen, ok := Choose(cat.Sounds, st.LastPlayed[category])
	if !ok {
		return ""
	}
	st.LastPlayed[category] = chosen.File
	return filepath.Join(pack.Dir(baseDir, packName), chosen.File)
}

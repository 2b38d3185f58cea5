package hook

import (
	"time"

	"chime/internal/state"
)

// recordPrompt prunes timestamps that fell out of the sliding window,
// appends now, and reports whether the burst threshold is met. The window
// has no cooldown of its own: burst status drops as soon as enough
// entries age out.
func recordPrompt(st *state.State, now time.Time, threshold, windowSeconds int) bool {
	nowSec := float64(now.UnixMicro()) / 1e6
	cutoff := nowSec - float64(windowSeconds)

	kept := make([]float64, 0, len(st.PromptTimestamps)+1)
	for _, t := range st.PromptTimestamps {
		if t >= cutoff {
			kept = append(kept, t)
		}
	}
	kept = append(kept, nowSec)
	st.PromptTimestamps = kept

	return len(kept) >= threshold
}

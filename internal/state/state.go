// Package state persists the machine-written runtime state: the
// last-played sound per category, the rolling prompt-timestamp window, and
// the set of sessions flagged as automated. The document is guarded by an
// flock so overlapping hook invocations serialize their read-modify-write,
// while distinct events racing on separate fields remain last-write-wins.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// State represents .state.json.
type State struct {
	LastPlayed       map[string]string `json:"last_played"`
	PromptTimestamps []float64         `json:"prompt_timestamps"`
	AgentSessions    []string          `json:"agent_sessions,omitempty"`
}

// Path returns the state file path under dir.
func Path(dir string) string {
	return filepath.Join(dir, ".state.json")
}

// MarkAgent flags a session as automated. The set only grows; marking an
// already-flagged session is a no-op.
func (s *State) MarkAgent(sessionID string) {
	if sessionID == "" || s.IsAgent(sessionID) {
		return
	}
	s.AgentSessions = append(s.AgentSessions, sessionID)
}

// IsAgent reports whether a session has been flagged as automated.
func (s *State) IsAgent(sessionID string) bool {
	for _, id := range s.AgentSessions {
		if id == sessionID {
			return true
		}
	}
	return false
}

// Locked holds the state plus the open file handle backing the flock.
type Locked struct {
	State *State
	file  *os.File
	path  string
}

// Open reads .state.json under an exclusive flock. A missing or corrupt
// file yields an empty state. The caller must call Commit (or Release)
// when done.
func Open(dir string) (*Locked, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := Path(dir)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}

	var st State
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, &st)
	}
	if st.LastPlayed == nil {
		st.LastPlayed = make(map[string]string)
	}

	return &Locked{State: &st, file: f, path: path}, nil
}

// Commit writes the state back and releases the lock.
func (l *Locked) Commit() error {
	data, err := json.Marshal(l.State)
	if err != nil {
		l.Release()
		return err
	}
	err = os.WriteFile(l.path, data, 0o644)
	l.Release()
	return err
}

// Release drops the lock without writing.
func (l *Locked) Release() {
	if l.file == nil {
		return
	}
	_ = unlockFile(l.file)
	l.file.Close()
	l.file = nil
}

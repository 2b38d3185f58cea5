package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// boardTTL is how long a session entry survives without an update.
const boardTTL = 10 * time.Minute

// BoardSession is one live session on the board.
type BoardSession struct {
	Project   string `json:"project"`
	State     string `json:"state"` // "working", "done", "needs approval", "ready"
	Message   string `json:"message,omitempty"`
	UpdatedAt int64  `json:"updated_at"`
}

// Board holds the per-session status entries, keyed by session ID. It is a
// read-only side channel for external status displays; readers tolerate
// partial reads.
type Board struct {
	Sessions map[string]BoardSession `json:"sessions"`
}

// BoardPath returns the board file path under dir.
func BoardPath(dir string) string {
	return filepath.Join(dir, ".board.json")
}

// WriteBoard updates one session's entry and prunes stale ones.
// Best-effort: all failures are swallowed.
func WriteBoard(dir, sessionID, project, status, message string, now time.Time) {
	if sessionID == "" {
		return
	}
	path := BoardPath(dir)

	var board Board
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &board)
	}
	if board.Sessions == nil {
		board.Sessions = make(map[string]BoardSession)
	}

	for id, s := range board.Sessions {
		if now.Unix()-s.UpdatedAt > int64(boardTTL.Seconds()) {
			delete(board.Sessions, id)
		}
	}

	board.Sessions[sessionID] = BoardSession{
		Project:   project,
		State:     status,
		Message:   message,
		UpdatedAt: now.Unix(),
	}

	data, err := json.Marshal(board)
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}

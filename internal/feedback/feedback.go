// Package feedback delivers the user-visible side effects: sound playback
// and desktop notifications, plus the terminal focus check that gates
// notifications. Everything here is fire-and-forget; a missing player or
// notification facility degrades to silence, never an error.
package feedback

import (
	"io"
	"log/slog"
)

// Sink plays sounds and raises desktop notifications.
type Sink interface {
	// PlaySound starts playback of the file at the given volume (0.0-1.0)
	// and returns without waiting for completion.
	PlaySound(path string, volume float64)

	// Notify shows a desktop notification.
	Notify(title, message string)
}

// New returns the sink for the current operating system.
func New(log *slog.Logger) Sink {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &osSink{log: log}
}

type osSink struct {
	log *slog.Logger
}

// TerminalFocused reports whether a terminal window is in the foreground.
// Failures of the underlying query report false, which fails toward
// notifying the user.
func TerminalFocused() bool {
	return terminalFocused()
}

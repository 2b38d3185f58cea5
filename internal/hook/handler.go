// Package hook implements the event-handling pipeline: classify one
// incoming hook event, resolve it to a sound and terminal/notification
// side effects, and persist state. One invocation handles one event and
// carries no memory beyond the config and state documents.
package hook

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"chime/internal/config"
	"chime/internal/feedback"
	"chime/internal/logging"
	"chime/internal/sound"
	"chime/internal/state"
	"chime/internal/update"
)

// Handler handles hook events for one data directory. Zero-value fields
// are filled with production defaults on the first Handle call, so tests
// can inject a fake sink, clock, or focus check.
type Handler struct {
	BaseDir string
	Stdout  io.Writer
	Stderr  io.Writer
	Sink    feedback.Sink
	Focused func() bool
	Now     func() time.Time
	Log     *slog.Logger

	// CheckUpdate runs on session start; nil disables the check.
	CheckUpdate func(dir string)
}

// New returns a production handler for dir.
func New(dir string) *Handler {
	return &Handler{
		BaseDir:     dir,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Focused:     feedback.TerminalFocused,
		Now:         time.Now,
		CheckUpdate: update.Check,
	}
}

// Handle processes one raw hook payload. It never returns an error:
// every failure path degrades to doing less, because a crash here would
// be worse than a missed sound.
func (h *Handler) Handle(raw []byte) {
	h.fillDefaults()

	ev, ok := ParseEvent(raw)
	if !ok {
		return
	}

	cfg := config.Load(h.BaseDir)
	if !cfg.Enabled {
		return
	}
	log := h.logger(cfg)
	log.Debug("event", "type", ev.Type, "session", ev.SessionID)

	paused := config.Paused(h.BaseDir)

	ls, err := state.Open(h.BaseDir)
	if err != nil {
		log.Debug("state unavailable", "error", err)
		return
	}

	// Suppression comes before everything else: a delegate event flags
	// its session and is itself swallowed, and a previously flagged
	// session never produces feedback again.
	if ev.AgentMode {
		ls.State.MarkAgent(ev.SessionID)
		_ = ls.Commit()
		return
	}
	if ev.SessionID != "" && ls.State.IsAgent(ev.SessionID) {
		ls.Release()
		return
	}

	now := h.Now()
	project := Project(ev.CWD)

	if ev.Type == "session_start" {
		if h.CheckUpdate != nil {
			h.CheckUpdate(h.BaseDir)
		}
		update.ShowNotice(h.BaseDir, h.Stderr)
		if paused {
			fmt.Fprintln(h.Stderr, "chime: sounds paused -- run 'chime resume' or 'chime toggle' to unpause")
		}
	}

	r := Classify(ev, cfg, ls.State, now)

	var soundFile string
	if r.Category != "" && !paused {
		soundFile = sound.Pick(h.BaseDir, cfg.ActivePack, r.Category, ls.State)
	}

	if r.Status != "" {
		state.WriteBoard(h.BaseDir, ev.SessionID, project, r.Status, r.NotifyMsg, now)
	}

	// Single commit point: every state mutation of this invocation lands
	// in one write.
	_ = ls.Commit()

	title := r.Marker + project + ": " + r.Status
	if r.Status != "" {
		fmt.Fprintf(h.Stdout, "\033]0;%s\007", title)
	}

	if paused {
		return
	}

	if soundFile != "" && fileExists(soundFile) {
		log.Debug("play", "category", r.Category, "file", soundFile)
		h.Sink.PlaySound(soundFile, cfg.Volume)
	}
	if r.Notify && cfg.DesktopNotifications && !h.Focused() {
		log.Debug("notify", "message", r.NotifyMsg)
		h.Sink.Notify(title, r.NotifyMsg)
	}
}

func (h *Handler) fillDefaults() {
	if h.Stdout == nil {
		h.Stdout = os.Stdout
	}
	if h.Stderr == nil {
		h.Stderr = os.Stderr
	}
	if h.Focused == nil {
		h.Focused = feedback.TerminalFocused
	}
	if h.Now == nil {
		h.Now = time.Now
	}
	if h.Sink == nil {
		h.Sink = feedback.New(h.Log)
	}
}

func (h *Handler) logger(cfg config.Config) *slog.Logger {
	if h.Log != nil {
		return h.Log
	}
	return logging.ForHook(config.LogsDir(h.BaseDir), cfg.Debug)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

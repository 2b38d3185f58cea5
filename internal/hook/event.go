package hook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Event is the internal, harness-agnostic event model.
type Event struct {
	Type      string // "session_start", "prompt_submit", "task_complete", "permission_needed", "idle"
	CWD       string
	SessionID string
	AgentMode bool // session runs under a delegated/automated permission mode
}

// claudePayload is Claude Code's hook JSON input.
type claudePayload struct {
	HookEventName    string `json:"hook_event_name"`
	NotificationType string `json:"notification_type"`
	CWD              string `json:"cwd"`
	SessionID        string `json:"session_id"`
	PermissionMode   string `json:"permission_mode"`
}

// genericPayload is the fallback format any harness can send directly.
type genericPayload struct {
	Type      string `json:"type"`
	CWD       string `json:"cwd"`
	SessionID string `json:"session_id"`
	AgentMode bool   `json:"agent_mode"`
}

// ParseEvent decodes one hook payload, auto-detecting the harness from
// field presence. CHIME_HARNESS ("claude" or "generic") forces a format.
// ok is false for malformed input and for events the engine does not
// handle; both are silent no-ops for the caller.
func ParseEvent(raw []byte) (Event, bool) {
	switch os.Getenv("CHIME_HARNESS") {
	case "claude":
		return parseClaude(raw)
	case "generic":
		return parseGeneric(raw)
	}

	var probe struct {
		HookEventName string `json:"hook_event_name"`
	}
	_ = json.Unmarshal(raw, &probe)
	if probe.HookEventName != "" {
		return parseClaude(raw)
	}
	return parseGeneric(raw)
}

func parseClaude(raw []byte) (Event, bool) {
	var p claudePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Event{}, false
	}

	e := Event{
		CWD:       p.CWD,
		SessionID: p.SessionID,
		AgentMode: p.PermissionMode == "delegate",
	}

	switch p.HookEventName {
	case "SessionStart":
		e.Type = "session_start"
	case "UserPromptSubmit":
		e.Type = "prompt_submit"
	case "Stop":
		e.Type = "task_complete"
	case "Notification":
		switch p.NotificationType {
		case "permission_prompt":
			e.Type = "permission_needed"
		case "idle_prompt":
			e.Type = "idle"
		}
	}

	// A delegate event with no handled type still has to reach the
	// handler so the suppression set grows.
	if e.Type == "" && !e.AgentMode {
		return Event{}, false
	}
	return e, true
}

func parseGeneric(raw []byte) (Event, bool) {
	var p genericPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Event{}, false
	}
	e := Event{
		Type:      p.Type,
		CWD:       p.CWD,
		SessionID: p.SessionID,
		AgentMode: p.AgentMode,
	}
	if e.Type == "" && !e.AgentMode {
		return Event{}, false
	}
	return e, true
}

var projectSanitizer = regexp.MustCompile(`[^a-zA-Z0-9 ._-]`)

// Project derives a display name from the event's working directory.
func Project(cwd string) string {
	name := filepath.Base(cwd)
	if name == "" || name == "." || name == "/" {
		return "claude"
	}
	name = strings.TrimSpace(projectSanitizer.ReplaceAllString(name, ""))
	if name == "" {
		return "claude"
	}
	return name
}

//go:build darwin

package feedback

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// terminalApps are frontmost process names that count as a terminal.
var terminalApps = []string{
	"terminal", "iterm", "wezterm", "alacritty", "kitty", "hyper", "tabby",
}

// PlaySound plays a file via afplay. Fire-and-forget.
func (s *osSink) PlaySound(path string, volume float64) {
	cmd := exec.Command("afplay", "-v", fmt.Sprintf("%g", volume), path)
	if err := cmd.Start(); err != nil {
		s.log.Debug("afplay failed", "error", err)
	}
}

// Notify shows a notification via osascript. Fire-and-forget.
func (s *osSink) Notify(title, message string) {
	script := fmt.Sprintf("display notification %q with title %q", message, title)
	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Start(); err != nil {
		s.log.Debug("osascript notify failed", "error", err)
	}
}

// terminalFocused asks System Events for the frontmost application name.
// Bounded to two seconds so a hung query never blocks the handler.
func terminalFocused() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e",
		`tell application "System Events" to get name of first application process whose frontmost is true`).Output()
	if err != nil {
		return false
	}
	app := strings.ToLower(strings.TrimSpace(string(out)))
	for _, t := range terminalApps {
		if strings.Contains(app, t) {
			return true
		}
	}
	return false
}

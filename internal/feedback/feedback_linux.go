//go:build linux

package feedback

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"
)

// terminalTitles are active-window title fragments that count as a terminal.
var terminalTitles = []string{
	"terminal", "konsole", "xterm", "alacritty", "kitty",
	"wezterm", "tilix", "terminator", "gnome-terminal",
}

// PlaySound plays a file via the first available player: paplay
// (PulseAudio), pw-play (PipeWire), aplay (ALSA, no volume control), or
// ffplay. Fire-and-forget.
func (s *osSink) PlaySound(path string, volume float64) {
	if exe, err := exec.LookPath("paplay"); err == nil {
		// paplay volume is 0-65536.
		vol := int(volume * 65536)
		detach(s, exe, "--volume", fmt.Sprintf("%d", vol), path)
		return
	}
	if exe, err := exec.LookPath("pw-play"); err == nil {
		detach(s, exe, "--volume", fmt.Sprintf("%g", volume), path)
		return
	}
	if exe, err := exec.LookPath("aplay"); err == nil {
		detach(s, exe, "-q", path)
		return
	}
	if exe, err := exec.LookPath("ffplay"); err == nil {
		vol := int(volume * 100)
		detach(s, exe, "-nodisp", "-autoexit", "-loglevel", "quiet",
			"-volume", fmt.Sprintf("%d", vol), path)
		return
	}
	s.log.Debug("no audio player found")
}

// Notify sends a notification over the session bus per the freedesktop
// notification spec.
func (s *osSink) Notify(title, message string) {
	conn, err := dbus.SessionBus()
	if err != nil {
		s.log.Debug("session bus unavailable", "error", err)
		return
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"chime", uint32(0), "", title, message,
		[]string{}, map[string]dbus.Variant{}, int32(5000))
	if call.Err != nil {
		s.log.Debug("notify failed", "error", call.Err)
	}
}

// detach starts a player fully detached so the hook runner never waits
// for playback to finish.
func detach(s *osSink, exe string, args ...string) {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer devNull.Close()

	cmd := exec.Command(exe, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	if err := cmd.Start(); err != nil {
		s.log.Debug("player start failed", "exe", exe, "error", err)
	}
}

// terminalFocused checks the active window title via xdotool. Bounded to
// two seconds so a hung X query never blocks the handler.
func terminalFocused() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "xdotool", "getactivewindow", "getwindowname").Output()
	if err != nil {
		return false
	}
	title := strings.ToLower(strings.TrimSpace(string(out)))
	for _, t := range terminalTitles {
		if strings.Contains(title, t) {
			return true
		}
	}
	return false
}

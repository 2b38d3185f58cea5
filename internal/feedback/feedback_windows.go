//go:build windows

package feedback

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"unsafe"

	"github.com/gen2brain/beeep"
	"golang.org/x/sys/windows"
)

// terminalTitles are foreground-window title fragments that count as a
// terminal.
var terminalTitles = []string{
	"windows terminal", "command prompt", "powershell", "pwsh", "cmd.exe",
	"wezterm", "alacritty", "kitty", "mintty", "conemu", "cmder", "hyper", "tabby",
}

// PlaySound plays a file via ffplay when available. Fire-and-forget;
// without ffplay there is no playback.
func (s *osSink) PlaySound(path string, volume float64) {
	exe, err := exec.LookPath("ffplay")
	if err != nil {
		s.log.Debug("ffplay not found")
		return
	}
	vol := int(volume * 100)
	cmd := exec.Command(exe, "-nodisp", "-autoexit", "-loglevel", "quiet",
		"-volume", fmt.Sprintf("%d", vol), path)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	if err := cmd.Start(); err != nil {
		s.log.Debug("ffplay start failed", "error", err)
	}
}

// Notify shows a toast notification.
func (s *osSink) Notify(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		s.log.Debug("toast failed", "error", err)
	}
}

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
)

// terminalFocused checks the foreground window title.
func terminalFocused() bool {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return false
	}
	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return false
	}
	buf := make([]uint16, length+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), length+1)
	title := strings.ToLower(windows.UTF16ToString(buf))
	for _, t := range terminalTitles {
		if strings.Contains(title, t) {
			return true
		}
	}
	return false
}

//go:build !linux && !darwin && !windows

package feedback

// No playback or notification facility on unsupported platforms; the
// handler's terminal title update still works.

func (s *osSink) PlaySound(path string, volume float64) {}

func (s *osSink) Notify(title, message string) {}

func terminalFocused() bool { return false }

package config

import (
	"os"
	"path/filepath"
)

// BaseDir returns the per-user data directory. CHIME_DIR overrides the
// default of ~/.claude/hooks/chime.
func BaseDir() string {
	if dir := os.Getenv("CHIME_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude", "hooks", "chime")
}

// Path returns the config file path under dir.
func Path(dir string) string {
	return filepath.Join(dir, "config.json")
}

// PausedPath returns the pause marker path under dir. The marker's
// presence means "muted"; it carries no content.
func PausedPath(dir string) string {
	return filepath.Join(dir, ".paused")
}

// Paused reports whether the pause marker exists.
func Paused(dir string) bool {
	_, err := os.Stat(PausedPath(dir))
	return err == nil
}

// SetPaused creates or removes the pause marker.
func SetPaused(dir string, paused bool) error {
	if !paused {
		err := os.Remove(PausedPath(dir))
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(PausedPath(dir))
	if err != nil {
		return err
	}
	return f.Close()
}

// LogsDir returns the directory for debug logs under dir.
func LogsDir(dir string) string {
	return filepath.Join(dir, "logs")
}

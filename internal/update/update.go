// Package update performs a best-effort daily check for a newer release.
// The check runs in the background of a session-start invocation and
// stages a notice that a later session start prints to stderr.
package update

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const repo = "chime-sh/chime"

// Check fetches the remote VERSION file at most once per day and stages
// an update notice when it differs from the local one. Non-blocking; the
// fetch is abandoned if the process exits first.
func Check(dir string) {
	if !due(dir, time.Now()) {
		return
	}
	go fetch(dir)
}

// due reports whether a check is owed, and stamps the attempt.
func due(dir string, now time.Time) bool {
	stamp := filepath.Join(dir, ".last_update_check")
	if data, err := os.ReadFile(stamp); err == nil {
		if last, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64); err == nil {
			if now.Unix()-last < 86400 {
				return false
			}
		}
	}
	_ = os.WriteFile(stamp, []byte(strconv.FormatInt(now.Unix(), 10)), 0o644)
	return true
}

func fetch(dir string) {
	local := ""
	if data, err := os.ReadFile(filepath.Join(dir, "VERSION")); err == nil {
		local = strings.TrimSpace(string(data))
	}

	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("https://raw.githubusercontent.com/" + repo + "/main/VERSION")
	if err != nil {
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	remote := strings.TrimSpace(string(body))

	notice := filepath.Join(dir, ".update_available")
	if remote != "" && local != "" && remote != local {
		_ = os.WriteFile(notice, []byte(remote), 0o644)
	} else {
		_ = os.Remove(notice)
	}
}

// ShowNotice prints a staged update notice to w, if any.
func ShowNotice(dir string, w io.Writer) {
	data, err := os.ReadFile(filepath.Join(dir, ".update_available"))
	if err != nil {
		return
	}
	newVer := strings.TrimSpace(string(data))
	if newVer == "" {
		return
	}
	curVer := "?"
	if d, err := os.ReadFile(filepath.Join(dir, "VERSION")); err == nil {
		if v := strings.TrimSpace(string(d)); v != "" {
			curVer = v
		}
	}
	fmt.Fprintf(w, "chime update available: %s -> %s -- run: curl -fsSL https://raw.githubusercontent.com/%s/main/install.sh | bash\n",
		curVer, newVer, repo)
}

package hook

import (
	"time"

	"chime/internal/config"
	"chime/internal/state"
)

// CESP feedback categories.
const (
	CategorySessionStart  = "session.start"
	CategoryAcknowledge   = "task.acknowledge"
	CategoryComplete      = "task.complete"
	CategoryInputRequired = "input.required"
	CategoryUserSpam      = "user.spam"
)

// Route is the decision for one event: which sound category to resolve
// (empty = none), the terminal title pieces, and whether a desktop
// notification should fire.
type Route struct {
	Category  string
	Status    string
	Marker    string
	Notify    bool
	NotifyMsg string
}

// Classify maps an event plus live config and state to a Route.
//
// The only state it mutates is the prompt-timestamp window: prompt
// activity is recorded even when the resulting category ends up disabled,
// so the rate counter reflects what the user did rather than what was
// audible. A category whose toggle is explicitly off is cleared after
// mapping; the status label and title marker survive the clearing.
func Classify(ev Event, cfg config.Config, st *state.State, now time.Time) Route {
	project := Project(ev.CWD)

	var r Route
	switch ev.Type {
	case "session_start":
		r = Route{Category: CategorySessionStart, Status: "ready"}
	case "prompt_submit":
		burst := recordPrompt(st, now, cfg.AnnoyedThreshold, cfg.AnnoyedWindowSeconds)
		r = Route{Status: "working"}
		if burst && cfg.CategoryEnabled(CategoryUserSpam) {
			r.Category = CategoryUserSpam
		} else if cfg.CategoryEnabled(CategoryAcknowledge) {
			r.Category = CategoryAcknowledge
		}
	case "task_complete":
		r = Route{Category: CategoryComplete, Status: "done", Marker: "* "}
	case "permission_needed":
		r = Route{
			Category:  CategoryInputRequired,
			Status:    "needs approval",
			Marker:    "* ",
			Notify:    true,
			NotifyMsg: project + " -- A tool is waiting for your permission",
		}
	case "idle":
		r = Route{
			Category:  CategoryComplete,
			Status:    "done",
			Marker:    "* ",
			Notify:    true,
			NotifyMsg: project + " -- Ready for your next instruction",
		}
	default:
		return Route{}
	}

	if r.Category != "" && !cfg.CategoryEnabled(r.Category) {
		r.Category = ""
	}
	return r
}

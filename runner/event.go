// Package runner checks conformance scenarios against the translator.
//
// Each scenario's query is translated and compared with the scenario's
// expected plan. Outcomes are reported as Events to Handlers, which
// accumulate a Result and render progress.
package runner

import (
	"strings"
	"time"
)

// Action represents the type of scenario event.
type Action string

// Action constants for scenario events.
const (
	ActionRun   Action = "run"
	ActionPass  Action = "passed"
	ActionFail  Action = "failed"
	ActionXFail Action = "xfailed"
	ActionSkip  Action = "skipped"
	ActionError Action = "error"
)

// IsTerminal returns true if this action ends a scenario.
func (a Action) IsTerminal() bool {
	switch a {
	case ActionPass, ActionFail, ActionXFail, ActionSkip, ActionError:
		return true
	default:
		return false
	}
}

// Event represents a single scenario event emitted during a run.
type Event struct {
	Time    time.Time     // When the event occurred
	Action  Action        // What happened
	Feature string        // Feature file path
	Path    []string      // Scenario path: ["clauses/return-orderby", "return-orderby2-1"]
	Name    string        // Scenario title
	Elapsed time.Duration // Time taken (for terminal events)
	Reason  string        // Why the scenario is skipped or expected to fail
	Error   error         // Error details (for ActionError)

	// For plan mismatches
	Expected any
	Actual   any
	Field    string // Which part differed, e.g. "plan"
	Diff     string
}

// PathString returns the path as a slash-separated string.
func (e Event) PathString() string {
	return strings.Join(e.Path, "/")
}

// Key returns the scenario key, the last path component.
func (e Event) Key() string {
	if len(e.Path) == 0 {
		return ""
	}

	return e.Path[len(e.Path)-1]
}

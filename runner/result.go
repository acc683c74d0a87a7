package runner

import (
	"strings"
	"sync"
	"time"
)

// Result accumulates scenario outcomes during a run.
type Result struct {
	mu sync.RWMutex

	StartTime time.Time
	EndTime   time.Time

	Total   int
	Passed  int
	Failed  int
	XFailed int
	Skipped int
	Errors  int

	// Scenarios indexed by path string: "clauses/return-orderby/return-orderby2-1"
	Scenarios map[string]*ScenarioResult

	// Order preserves insertion order for display
	Order []string
}

// NewResult creates an initialized Result.
func NewResult() *Result {
	return &Result{
		StartTime: time.Now(),
		Scenarios: make(map[string]*ScenarioResult),
	}
}

// Add records a terminal event in the result.
func (r *Result) Add(event Event) {
	if !event.Action.IsTerminal() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := event.PathString()

	sr := &ScenarioResult{
		Path:    event.Path,
		Name:    event.Name,
		Status:  event.Action,
		Elapsed: event.Elapsed,
		Reason:  event.Reason,
		Error:   event.Error,
	}

	if event.Action == ActionFail || event.Action == ActionXFail {
		sr.Expected = event.Expected
		sr.Actual = event.Actual
		sr.Field = event.Field
		sr.Diff = event.Diff
	}

	if _, seen := r.Scenarios[path]; !seen {
		r.Order = append(r.Order, path)
	}

	r.Scenarios[path] = sr
	r.Total++

	switch event.Action {
	case ActionPass:
		r.Passed++
	case ActionFail:
		r.Failed++
	case ActionXFail:
		r.XFailed++
	case ActionSkip:
		r.Skipped++
	case ActionError:
		r.Errors++
	case ActionRun:
		// Not a terminal action
	}
}

// Finish marks the result as complete.
func (r *Result) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.EndTime = time.Now()
}

// Elapsed returns the total run time.
func (r *Result) Elapsed() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}

	return r.EndTime.Sub(r.StartTime)
}

// Ok returns true if no scenario failed unexpectedly.
func (r *Result) Ok() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.Failed == 0 && r.Errors == 0
}

// FailedScenarios returns all failed and errored scenario results.
func (r *Result) FailedScenarios() []*ScenarioResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var failed []*ScenarioResult

	for _, path := range r.Order {
		sr := r.Scenarios[path]
		if sr.Status == ActionFail || sr.Status == ActionError {
			failed = append(failed, sr)
		}
	}

	return failed
}

// ScenarioResult holds the outcome of a single scenario.
type ScenarioResult struct {
	Path    []string
	Name    string
	Status  Action
	Elapsed time.Duration
	Reason  string
	Error   error

	// Plan mismatch details
	Expected any
	Actual   any
	Field    string
	Diff     string
}

// PathString returns the path as a slash-separated string.
func (sr *ScenarioResult) PathString() string {
	return strings.Join(sr.Path, "/")
}

package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rlch/gfql"
)

// Formatter renders scenario events and results.
type Formatter interface {
	Format(event Event, result *Result) error
	Summary(result *Result) error
}

// FormatHandler is a Handler that delegates to a Formatter.
type FormatHandler struct {
	formatter Formatter
	stderr    io.Writer
}

// NewFormatHandler creates a handler that formats events.
func NewFormatHandler(f Formatter, stderr io.Writer) *FormatHandler {
	return &FormatHandler{formatter: f, stderr: stderr}
}

// Event formats the event.
func (h *FormatHandler) Event(_ context.Context, event Event, result *Result) error {
	return h.formatter.Format(event, result)
}

// Err writes to stderr.
func (h *FormatHandler) Err(text string) error {
	_, err := h.stderr.Write([]byte(text + "\n"))

	return err
}

// Summary renders the final summary.
func (h *FormatHandler) Summary(result *Result) error {
	return h.formatter.Summary(result)
}

// -----------------------------------------------------------------------------
// Styles
// -----------------------------------------------------------------------------

// palette colours status words. The zero palette renders plain text.
type palette struct {
	enabled bool
	pass    lipgloss.Style
	fail    lipgloss.Style
	xfail   lipgloss.Style
	skip    lipgloss.Style
	dim     lipgloss.Style
}

// newPalette enables colour only when w is a terminal.
func newPalette(w io.Writer) palette {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return palette{}
	}

	return palette{
		enabled: true,
		pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		xfail:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AF00")),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9B9B9B")),
	}
}

func (p palette) render(style lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}

	return style.Render(s)
}

func (p palette) action(a Action, s string) string {
	switch a {
	case ActionPass:
		return p.render(p.pass, s)
	case ActionFail, ActionError:
		return p.render(p.fail, s)
	case ActionXFail:
		return p.render(p.xfail, s)
	case ActionSkip:
		return p.render(p.skip, s)
	default:
		return s
	}
}

// -----------------------------------------------------------------------------
// Dots Formatter
// -----------------------------------------------------------------------------

// DotsFormatter is a minimal formatter that prints dots for progress.
type DotsFormatter struct {
	w       io.Writer
	palette palette
	count   int
}

// NewDotsFormatter creates a dots formatter.
func NewDotsFormatter(w io.Writer) *DotsFormatter {
	return &DotsFormatter{w: w, palette: newPalette(w)}
}

const lineWidth = 80

// Format prints a single character per terminal event.
func (d *DotsFormatter) Format(event Event, _ *Result) error {
	var char string

	switch event.Action {
	case ActionPass:
		char = "."
	case ActionFail:
		char = "F"
	case ActionXFail:
		char = "x"
	case ActionSkip:
		char = "S"
	case ActionError:
		char = "E"
	case ActionRun:
		return nil
	default:
		return nil
	}

	_, err := fmt.Fprint(d.w, d.palette.action(event.Action, char))
	d.count++

	if d.count%lineWidth == 0 {
		_, _ = fmt.Fprintln(d.w)
	}

	return err
}

// Summary prints the final results.
func (d *DotsFormatter) Summary(result *Result) error {
	if d.count > 0 && d.count%lineWidth != 0 {
		_, _ = fmt.Fprintln(d.w)
	}

	_, _ = fmt.Fprintln(d.w)

	for _, sr := range result.FailedScenarios() {
		switch sr.Status {
		case ActionFail:
			_, _ = fmt.Fprintf(d.w, "%s %s\n", d.palette.action(ActionFail, "FAIL"), sr.PathString())

			if sr.Diff != "" {
				_, _ = fmt.Fprintf(d.w, "  %s (-expected +actual):\n", sr.Field)
				_, _ = fmt.Fprint(d.w, indent(sr.Diff, "    "))
			}
		case ActionError:
			_, _ = fmt.Fprintf(d.w, "%s %s: %v\n", d.palette.action(ActionError, "ERROR"), sr.PathString(), sr.Error)
		case ActionPass, ActionXFail, ActionSkip, ActionRun:
			// Not failures
		}

		_, _ = fmt.Fprintln(d.w)
	}

	status := d.palette.action(ActionPass, "PASS")
	if !result.Ok() {
		status = d.palette.action(ActionFail, "FAIL")
	}

	_, _ = fmt.Fprintf(d.w, "%s %d scenarios, %d passed, %d failed, %d xfailed, %d skipped in %s\n",
		status,
		result.Total,
		result.Passed,
		result.Failed,
		result.XFailed,
		result.Skipped,
		result.Elapsed().Round(time.Millisecond),
	)

	return nil
}

// -----------------------------------------------------------------------------
// Verbose Formatter
// -----------------------------------------------------------------------------

// VerboseFormatter prints full scenario paths and plan diffs.
type VerboseFormatter struct {
	w       io.Writer
	palette palette
}

// NewVerboseFormatter creates a verbose formatter.
func NewVerboseFormatter(w io.Writer) *VerboseFormatter {
	return &VerboseFormatter{w: w, palette: newPalette(w)}
}

// Format prints each event as it occurs.
func (v *VerboseFormatter) Format(event Event, _ *Result) error {
	switch event.Action {
	case ActionRun:
		_, _ = fmt.Fprintf(v.w, "=== RUN   %s\n", event.PathString())
	case ActionPass:
		_, _ = fmt.Fprintf(v.w, "--- %s: %s (%s)\n", v.palette.action(ActionPass, "PASS"), event.PathString(), event.Elapsed)
	case ActionFail:
		_, _ = fmt.Fprintf(v.w, "--- %s: %s (%s)\n", v.palette.action(ActionFail, "FAIL"), event.PathString(), event.Elapsed)

		if event.Diff != "" {
			_, _ = fmt.Fprintf(v.w, "    %s (-expected +actual):\n", event.Field)
			_, _ = fmt.Fprint(v.w, indent(event.Diff, "        "))
		}
	case ActionXFail:
		_, _ = fmt.Fprintf(v.w, "--- %s: %s (%s)\n", v.palette.action(ActionXFail, "XFAIL"), event.PathString(), event.Elapsed)

		if event.Reason != "" {
			_, _ = fmt.Fprintf(v.w, "    %s\n", v.palette.render(v.palette.dim, event.Reason))
		}
	case ActionSkip:
		_, _ = fmt.Fprintf(v.w, "--- %s: %s (%s)\n", v.palette.action(ActionSkip, "SKIP"), event.PathString(), event.Elapsed)

		if event.Reason != "" {
			_, _ = fmt.Fprintf(v.w, "    %s\n", v.palette.render(v.palette.dim, event.Reason))
		}
	case ActionError:
		_, _ = fmt.Fprintf(v.w, "--- %s: %s (%s)\n", v.palette.action(ActionError, "ERROR"), event.PathString(), event.Elapsed)
		_, _ = fmt.Fprintf(v.w, "    %v\n", event.Error)
	}

	return nil
}

// Summary prints the final results.
func (v *VerboseFormatter) Summary(result *Result) error {
	_, _ = fmt.Fprintln(v.w)

	status := v.palette.action(ActionPass, "PASS")
	if !result.Ok() {
		status = v.palette.action(ActionFail, "FAIL")
	}

	_, _ = fmt.Fprintf(v.w, "%s\n", status)
	_, _ = fmt.Fprintf(v.w, "  %d total, %d passed, %d failed, %d xfailed, %d skipped, %d errors\n",
		result.Total,
		result.Passed,
		result.Failed,
		result.XFailed,
		result.Skipped,
		result.Errors,
	)
	_, _ = fmt.Fprintf(v.w, "  elapsed: %s\n", result.Elapsed().Round(time.Millisecond))

	return nil
}

func indent(text, prefix string) string {
	var b strings.Builder

	for line := range strings.Lines(text) {
		b.WriteString(prefix)
		b.WriteString(line)
	}

	if !strings.HasSuffix(text, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

// -----------------------------------------------------------------------------
// JSON Formatter
// -----------------------------------------------------------------------------

// JSONFormatter outputs newline-delimited JSON events.
type JSONFormatter struct {
	enc *json.Encoder
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{enc: json.NewEncoder(w)}
}

type jsonEvent struct {
	Time     string  `json:"time"`
	Action   string  `json:"action"`
	Feature  string  `json:"feature,omitempty"`
	Path     string  `json:"path"`
	Key      string  `json:"key,omitempty"`
	Name     string  `json:"name,omitempty"`
	Elapsed  float64 `json:"elapsed,omitempty"`
	Reason   string  `json:"reason,omitempty"`
	Error    string  `json:"error,omitempty"`
	Field    string  `json:"field,omitempty"`
	Expected any     `json:"expected,omitempty"`
	Actual   any     `json:"actual,omitempty"`
	Diff     string  `json:"diff,omitempty"`
}

// Format outputs a JSON event.
func (j *JSONFormatter) Format(event Event, _ *Result) error {
	je := jsonEvent{
		Time:    event.Time.Format(time.RFC3339Nano),
		Action:  string(event.Action),
		Feature: event.Feature,
		Path:    event.PathString(),
		Key:     event.Key(),
		Name:    event.Name,
	}

	if event.Action.IsTerminal() {
		je.Elapsed = event.Elapsed.Seconds()
		je.Reason = event.Reason
	}

	if event.Error != nil {
		je.Error = event.Error.Error()
	}

	if event.Action == ActionFail || event.Action == ActionXFail {
		je.Field = event.Field
		je.Expected = event.Expected
		je.Actual = event.Actual
		je.Diff = event.Diff
	}

	return j.enc.Encode(je)
}

type jsonSummary struct {
	Action  string  `json:"action"`
	Total   int     `json:"total"`
	Passed  int     `json:"passed"`
	Failed  int     `json:"failed"`
	XFailed int     `json:"xfailed"`
	Skipped int     `json:"skipped"`
	Errors  int     `json:"errors"`
	Elapsed float64 `json:"elapsed"`
	Ok      bool    `json:"ok"`
}

// Summary outputs the final JSON summary.
func (j *JSONFormatter) Summary(result *Result) error {
	return j.enc.Encode(jsonSummary{
		Action:  "summary",
		Total:   result.Total,
		Passed:  result.Passed,
		Failed:  result.Failed,
		XFailed: result.XFailed,
		Skipped: result.Skipped,
		Errors:  result.Errors,
		Elapsed: result.Elapsed().Seconds(),
		Ok:      result.Ok(),
	})
}

// Formatter names accepted by NewFormatter.
const (
	FormatDots    = "dots"
	FormatVerbose = "verbose"
	FormatJSON    = "json"
)

// NewFormatter creates a formatter by name. An empty name selects dots.
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "", FormatDots:
		return NewDotsFormatter(w), nil
	case FormatVerbose:
		return NewVerboseFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", gfql.ErrUnknownFormat, name)
	}
}

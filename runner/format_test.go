package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/gfql"
)

func TestDotsFormatter_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewDotsFormatter(&buf)

	_ = f.Format(Event{Action: ActionRun}, nil)

	if buf.Len() != 0 {
		t.Error("Non-terminal should produce no output")
	}

	_ = f.Format(Event{Action: ActionPass}, nil)
	_ = f.Format(Event{Action: ActionFail}, nil)
	_ = f.Format(Event{Action: ActionXFail}, nil)
	_ = f.Format(Event{Action: ActionSkip}, nil)
	_ = f.Format(Event{Action: ActionError}, nil)

	if got := buf.String(); got != ".FxSE" {
		t.Errorf("got %q, want %q", got, ".FxSE")
	}
}

func TestDotsFormatter_Summary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewDotsFormatter(&buf)

	result := NewResult()
	result.Add(Event{Action: ActionPass, Path: []string{"clauses/match", "match1-1"}})
	result.Add(Event{
		Action: ActionFail,
		Path:   []string{"clauses/return", "return2-1"},
		Field:  "plan",
		Diff:   "-a\n+b\n",
	})
	result.Add(Event{Action: ActionXFail, Path: []string{"clauses/union", "union1-1"}})
	result.Finish()

	require.NoError(t, f.Summary(result))

	got := buf.String()
	assert.Contains(t, got, "FAIL clauses/return/return2-1")
	assert.Contains(t, got, "  plan (-expected +actual):\n    -a\n    +b\n")
	assert.Contains(t, got, "3 scenarios, 1 passed, 1 failed, 1 xfailed, 0 skipped")
	assert.NotContains(t, got, "union1-1")
}

func TestVerboseFormatter_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "run",
			event: Event{Action: ActionRun, Path: []string{"clauses/match", "match1-1"}},
			want:  "=== RUN   clauses/match/match1-1\n",
		},
		{
			name:  "pass",
			event: Event{Action: ActionPass, Path: []string{"clauses/match", "match1-1"}, Elapsed: 10 * time.Millisecond},
			want:  "--- PASS: clauses/match/match1-1 (10ms)\n",
		},
		{
			name:  "fail with diff",
			event: Event{Action: ActionFail, Path: []string{"k"}, Field: "plan", Diff: "-x\n+y"},
			want:  "--- FAIL: k (0s)\n    plan (-expected +actual):\n        -x\n        +y\n",
		},
		{
			name:  "xfail with reason",
			event: Event{Action: ActionXFail, Path: []string{"k"}, Reason: "not yet"},
			want:  "--- XFAIL: k (0s)\n    not yet\n",
		},
		{
			name:  "skip without reason",
			event: Event{Action: ActionSkip, Path: []string{"k"}},
			want:  "--- SKIP: k (0s)\n",
		},
		{
			name:  "error",
			event: Event{Action: ActionError, Path: []string{"k"}, Error: errors.New("boom")},
			want:  "--- ERROR: k (0s)\n    boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, NewVerboseFormatter(&buf).Format(tt.event, nil))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVerboseFormatter_Summary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	result := NewResult()
	result.Add(Event{Action: ActionError, Path: []string{"k"}})
	result.Finish()

	require.NoError(t, NewVerboseFormatter(&buf).Summary(result))

	got := buf.String()
	assert.True(t, strings.HasPrefix(got, "\nFAIL\n"), got)
	assert.Contains(t, got, "1 total, 0 passed, 0 failed, 0 xfailed, 0 skipped, 1 errors")
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f := NewJSONFormatter(&buf)

	require.NoError(t, f.Format(Event{
		Action:  ActionRun,
		Feature: "tck/features/clauses/match/Match1.feature",
		Path:    []string{"clauses/match", "match1-1"},
	}, nil))
	require.NoError(t, f.Format(Event{
		Action:   ActionXFail,
		Path:     []string{"clauses/match", "match7-1"},
		Elapsed:  time.Second,
		Reason:   "optional",
		Field:    "plan",
		Expected: "a",
		Actual:   "b",
		Diff:     "d",
	}, nil))

	result := NewResult()
	result.Add(Event{Action: ActionXFail, Path: []string{"clauses/match", "match7-1"}})
	result.Finish()

	require.NoError(t, f.Summary(result))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var run map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &run))
	assert.Equal(t, "run", run["action"])
	assert.Equal(t, "clauses/match/match1-1", run["path"])
	assert.Equal(t, "match1-1", run["key"])
	assert.NotContains(t, run, "elapsed")

	var xfail map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &xfail))
	assert.Equal(t, "xfailed", xfail["action"])
	assert.InDelta(t, 1.0, xfail["elapsed"], 1e-9)
	assert.Equal(t, "optional", xfail["reason"])
	assert.Equal(t, "plan", xfail["field"])
	assert.Equal(t, "d", xfail["diff"])

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &summary))
	assert.Equal(t, "summary", summary["action"])
	assert.InDelta(t, 1.0, summary["xfailed"], 1e-9)
	assert.Equal(t, true, summary["ok"])
}

func TestNewFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	for name, want := range map[string]any{
		"":        &DotsFormatter{},
		"dots":    &DotsFormatter{},
		"verbose": &VerboseFormatter{},
		"json":    &JSONFormatter{},
	} {
		f, err := NewFormatter(name, &buf)
		require.NoError(t, err, name)
		assert.IsType(t, want, f, name)
	}

	_, err := NewFormatter("tap", &buf)
	require.ErrorIs(t, err, gfql.ErrUnknownFormat)
}

func TestFormatHandler(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	h := NewFormatHandler(NewDotsFormatter(&out), &errOut)

	require.NoError(t, h.Event(t.Context(), Event{Action: ActionPass}, NewResult()))
	require.NoError(t, h.Err("oops"))

	assert.Equal(t, ".", out.String())
	assert.Equal(t, "oops\n", errOut.String())

	var _ Summarizer = h
}

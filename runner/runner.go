package runner

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rlch/gfql"
	"github.com/rlch/gfql/scenario"
)

// Runner checks scenarios against the translator.
type Runner struct {
	translator  *gfql.Translator
	handler     Handler
	failFast    bool
	filter      *regexp.Regexp
	predicate   scenario.Predicate
	logger      *zap.Logger
	concurrency int
}

// Option configures a Runner.
type Option func(*Runner)

// WithTranslator sets the translator under test.
func WithTranslator(t *gfql.Translator) Option {
	return func(r *Runner) {
		r.translator = t
	}
}

// WithHandler sets the event handler.
func WithHandler(h Handler) Option {
	return func(r *Runner) {
		r.handler = h
	}
}

// WithFailFast stops on first failure.
func WithFailFast(enabled bool) Option {
	return func(r *Runner) {
		r.failFast = enabled
	}
}

// WithFilter sets a regex to filter which scenarios run. Scenarios whose
// path or name matches it will be checked. A nil filter checks everything.
func WithFilter(filter *regexp.Regexp) Option {
	return func(r *Runner) {
		r.filter = filter
	}
}

// WithPredicate selects scenarios with a compiled predicate.
func WithPredicate(p scenario.Predicate) Option {
	return func(r *Runner) {
		r.predicate = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConcurrency bounds the number of scenarios translated at once.
// Values below one mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	if r.translator == nil {
		r.translator = gfql.NewTranslator(gfql.WithLogger(r.logger))
	}

	if r.concurrency < 1 {
		r.concurrency = runtime.GOMAXPROCS(0)
	}

	return r
}

// outcome is the verdict for one scenario, computed before any event is sent.
type outcome struct {
	scenario scenario.Scenario
	action   Action
	actual   gfql.Plan
	diff     string
	err      error
	elapsed  time.Duration
}

// Run checks every selected scenario of reg and returns the results.
//
// Scenarios are translated concurrently; events are delivered to handlers in
// registry order from the calling goroutine.
func (r *Runner) Run(ctx context.Context, reg *scenario.Registry) (*Result, error) {
	selected, err := r.selectScenarios(reg)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("checking scenarios",
		zap.Int("selected", len(selected)),
		zap.Int("registered", reg.Len()),
		zap.Int("concurrency", r.concurrency),
	)

	outcomes := make([]outcome, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, s := range selected {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcomes[i] = r.check(s)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r.report(ctx, outcomes)
}

func (r *Runner) selectScenarios(reg *scenario.Registry) ([]scenario.Scenario, error) {
	var selected []scenario.Scenario

	for _, s := range reg.All() {
		if !r.matchesFilter(s) {
			continue
		}

		if r.predicate != nil {
			ok, err := r.predicate(s)
			if err != nil {
				return nil, err
			}

			if !ok {
				continue
			}
		}

		selected = append(selected, s)
	}

	return selected, nil
}

func (r *Runner) report(ctx context.Context, outcomes []outcome) (*Result, error) {
	result := NewResult()

	handlers := []Handler{NewResultHandler()}
	if r.handler != nil {
		handlers = append(handlers, r.handler)
	}

	if r.failFast {
		handlers = append(handlers, NewStopOnFailHandler(1))
	}

	handler := NewMultiHandler(handlers...)

	for _, o := range outcomes {
		err := r.emit(ctx, o, handler, result)
		if errors.Is(err, ErrMaxFailures) {
			break
		}

		if err != nil {
			return result, err
		}
	}

	result.Finish()

	return result, nil
}

func (r *Runner) emit(ctx context.Context, o outcome, handler Handler, result *Result) error {
	s := o.scenario
	path := []string{s.FeatureArea(), s.Key}

	_ = handler.Event(ctx, Event{
		Time:    time.Now(),
		Action:  ActionRun,
		Feature: s.FeaturePath,
		Path:    path,
		Name:    s.Name,
	}, result)

	event := Event{
		Time:    time.Now(),
		Action:  o.action,
		Feature: s.FeaturePath,
		Path:    path,
		Name:    s.Name,
		Elapsed: o.elapsed,
		Reason:  s.Reason,
		Error:   o.err,
	}

	if o.action == ActionFail || o.action == ActionXFail {
		event.Field = "plan"
		event.Expected = describeExpected(s.Plan)
		event.Actual = gfql.FormatPlan(o.actual)
		event.Diff = o.diff
	}

	return handler.Event(ctx, event, result)
}

// check translates one scenario and decides its outcome. A panic in the
// translator is a defect and becomes ActionError.
func (r *Runner) check(s scenario.Scenario) (out outcome) {
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("translator panicked", zap.String("scenario", s.Key), zap.Any("panic", p))
			out = outcome{action: ActionError, err: fmt.Errorf("%w: %v", ErrTranslatorPanic, p)}
		}

		out.scenario = s
		out.elapsed = time.Since(start)
	}()

	if s.Status == scenario.StatusSkip {
		return outcome{action: ActionSkip}
	}

	actual := r.translator.BuildPlan(s.Query)

	var diff string

	switch {
	case s.Plan != nil:
		diff = cmp.Diff(s.Plan, actual)
	case actual.HasRaw():
		diff = "untranslated text in plan:\n" + gfql.FormatPlan(actual)
	}

	if diff == "" {
		return outcome{action: ActionPass, actual: actual}
	}

	if s.Status == scenario.StatusXFail {
		return outcome{action: ActionXFail, actual: actual, diff: diff}
	}

	return outcome{action: ActionFail, actual: actual, diff: diff}
}

func describeExpected(p gfql.Plan) string {
	if p == nil {
		return "a plan without raw steps or expressions"
	}

	return gfql.FormatPlan(p)
}

// matchesFilter returns true if the scenario path or name matches the filter
// pattern. If no filter is set, all scenarios match.
func (r *Runner) matchesFilter(s scenario.Scenario) bool {
	if r.filter == nil {
		return true
	}

	pathStr := strings.Join([]string{s.FeatureArea(), s.Key}, "/")

	return r.filter.MatchString(pathStr) || r.filter.MatchString(s.Name)
}

package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rlch/gfql/scenario"
)

// Pending reports whether s belongs in the porting backlog: an expected
// failure without a real plan.
func Pending(s scenario.Scenario) bool {
	return s.Status == scenario.StatusXFail && !s.HasPlan()
}

// BacklogFor returns the pending scenarios carrying tag, ordered by feature path
// then key.
func BacklogFor(reg *scenario.Registry, tag string) []scenario.Scenario {
	var out []scenario.Scenario

	for _, s := range reg.All() {
		if Pending(s) && s.HasTag(tag) {
			out = append(out, s)
		}
	}

	slices.SortFunc(out, func(a, b scenario.Scenario) int {
		return cmp.Or(
			cmp.Compare(a.FeaturePath, b.FeaturePath),
			cmp.Compare(a.Key, b.Key),
		)
	})

	return out
}

// Backlog renders the porting backlog: tag counts over pending scenarios and
// one bucket per target tag.
func Backlog(reg *scenario.Registry, opts Options) string {
	opts = opts.withDefaults()

	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("GFQL porting backlog (xfail + gfql missing)")
	line("Target tags: %s", strings.Join(scenario.TargetTags, ", "))
	line("Defer tags: %s", strings.Join(scenario.DeferTags, ", "))
	line("")

	tags := newCounter()

	for _, s := range reg.All() {
		if Pending(s) {
			tags.add(s.Tags...)
		}
	}

	line("Top tag counts (xfail + gfql missing):")

	for _, c := range tags.mostCommon(opts.TopBacklogTags) {
		line("- %s: %d", c.Name, c.Count)
	}

	line("")

	for _, tag := range scenario.TargetTags {
		pending := BacklogFor(reg, tag)

		line("Backlog for %s: %d", tag, len(pending))

		for _, s := range head(pending, opts.BacklogLimit) {
			line("- %s | %s | %s", s.Key, s.FeaturePath, s.Name)
		}

		if len(pending) > opts.BacklogLimit {
			line("- ... %d more", len(pending)-opts.BacklogLimit)
		}

		line("")
	}

	return b.String()
}

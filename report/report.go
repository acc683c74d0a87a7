// Package report renders conformance summaries of the scenario registry.
package report

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rlch/gfql/scenario"
)

// Options bounds the length of report sections. Zero fields take their
// defaults.
type Options struct {
	// TopAreas is the number of feature areas listed.
	TopAreas int

	// TopTags is the number of expected-failure tags listed.
	TopTags int

	// TopBacklogTags is the number of tags listed in the backlog.
	TopBacklogTags int

	// BacklogLimit is the number of scenarios listed per backlog bucket.
	BacklogLimit int
}

// DefaultOptions returns the default report options.
func DefaultOptions() Options {
	return Options{
		TopAreas:       10,
		TopTags:        10,
		TopBacklogTags: 12,
		BacklogLimit:   40,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()

	if o.TopAreas <= 0 {
		o.TopAreas = d.TopAreas
	}

	if o.TopTags <= 0 {
		o.TopTags = d.TopTags
	}

	if o.TopBacklogTags <= 0 {
		o.TopBacklogTags = d.TopBacklogTags
	}

	if o.BacklogLimit <= 0 {
		o.BacklogLimit = d.BacklogLimit
	}

	return o
}

// Bucket counts scenarios sharing a feature group or area.
type Bucket struct {
	Name      string
	Total     int
	Supported int
	XFail     int
	Skip      int
}

func (b *Bucket) add(status scenario.Status) {
	b.Total++

	switch status {
	case scenario.StatusSupported:
		b.Supported++
	case scenario.StatusXFail:
		b.XFail++
	case scenario.StatusSkip:
		b.Skip++
	}
}

// Count is a tag and the number of scenarios carrying it.
type Count struct {
	Name  string
	Count int
}

// Stats are the figures a conformance report is built from.
type Stats struct {
	Total int

	// Translated counts scenarios with a plan, placeholder or not.
	Translated int

	SupportedTranslated int
	XFailTranslated     int
	SkipTranslated      int
	SupportedMissing    int

	Supported int
	XFail     int
	Skip      int

	// Groups and Areas are ordered by total, largest first.
	Groups []Bucket
	Areas  []Bucket

	// XFailTags are the tags of expected-failure scenarios, most common first.
	XFailTags []Count
}

// Missing is the number of scenarios without a plan.
func (s Stats) Missing() int {
	return s.Total - s.Translated
}

// Other is the number of scenarios with an unrecognized status.
func (s Stats) Other() int {
	return s.Total - s.Supported - s.XFail - s.Skip
}

// Summarize computes report figures for reg.
func Summarize(reg *scenario.Registry) Stats {
	var (
		stats  Stats
		groups = newBuckets()
		areas  = newBuckets()
		tags   = newCounter()
	)

	for _, s := range reg.All() {
		stats.Total++

		translated := s.Plan != nil
		if translated {
			stats.Translated++
		}

		switch s.Status {
		case scenario.StatusSupported:
			stats.Supported++

			if translated {
				stats.SupportedTranslated++
			} else {
				stats.SupportedMissing++
			}
		case scenario.StatusXFail:
			stats.XFail++

			if translated {
				stats.XFailTranslated++
			}

			tags.add(s.Tags...)
		case scenario.StatusSkip:
			stats.Skip++

			if translated {
				stats.SkipTranslated++
			}
		}

		groups.get(s.FeatureGroup()).add(s.Status)
		areas.get(s.FeatureArea()).add(s.Status)
	}

	stats.Groups = groups.sorted()
	stats.Areas = areas.sorted()
	stats.XFailTags = tags.mostCommon(0)

	return stats
}

// Build renders the conformance report for reg.
func Build(reg *scenario.Registry, opts Options) string {
	opts = opts.withDefaults()
	stats := Summarize(reg)

	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("GFQL conformance report (tck-gfql)")
	line("")
	line("Scenarios represented (ported): %d", stats.Total)
	line("GFQL translated (non-None): %d (%s)", stats.Translated, percent(stats.Translated, stats.Total))
	line("GFQL missing: %d (%s)", stats.Missing(), percent(stats.Missing(), stats.Total))
	line("Translated + expected pass (supported): %d", stats.SupportedTranslated)
	line("Translated but xfail: %d", stats.XFailTranslated)
	line("Translated but skip: %d", stats.SkipTranslated)
	line("Supported but missing GFQL: %d", stats.SupportedMissing)
	line("Status counts: supported %d, xfail %d, skip %d, other %d",
		stats.Supported, stats.XFail, stats.Skip, stats.Other())
	line("")
	line("By feature group:")
	line("%s", bucketTable("group", stats.Groups))
	line("")
	line("Top feature areas (by scenario count):")
	line("%s", bucketTable("feature", head(stats.Areas, opts.TopAreas)))
	line("")
	line("Top xfail tags:")

	if len(stats.XFailTags) == 0 {
		line("- none")
	}

	for _, c := range head(stats.XFailTags, opts.TopTags) {
		line("- %s: %d", c.Name, c.Count)
	}

	return b.String()
}

// bucketTable renders buckets as a markdown table.
func bucketTable(label string, buckets []Bucket) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{label, "total", "supported", "xfail", "skip"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	for _, bk := range buckets {
		t.AppendRow(table.Row{bk.Name, bk.Total, bk.Supported, bk.XFail, bk.Skip})
	}

	return t.RenderMarkdown()
}

// Append appends text to the file at path, creating it if needed. It is used
// for CI step summaries.
func Append(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening summary: %w", err)
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()

		return fmt.Errorf("writing summary: %w", err)
	}

	return f.Close()
}

func percent(value, total int) string {
	if total == 0 {
		return "n/a"
	}

	return fmt.Sprintf("%.1f%%", float64(value)/float64(total)*100)
}

func head[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}

	return items
}

// buckets keeps buckets in first-seen order.
type buckets struct {
	order []*Bucket
	index map[string]*Bucket
}

func newBuckets() *buckets {
	return &buckets{index: make(map[string]*Bucket)}
}

func (bs *buckets) get(name string) *Bucket {
	if b, ok := bs.index[name]; ok {
		return b
	}

	b := &Bucket{Name: name}
	bs.index[name] = b
	bs.order = append(bs.order, b)

	return b
}

// sorted returns the buckets by total, largest first. Ties keep first-seen
// order.
func (bs *buckets) sorted() []Bucket {
	out := make([]Bucket, len(bs.order))
	for i, b := range bs.order {
		out[i] = *b
	}

	slices.SortStableFunc(out, func(a, b Bucket) int {
		return b.Total - a.Total
	})

	return out
}

// counter tallies names in first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(names ...string) {
	for _, n := range names {
		if _, ok := c.counts[n]; !ok {
			c.order = append(c.order, n)
		}

		c.counts[n]++
	}
}

// mostCommon returns the n most common names, all of them when n is zero.
// Ties keep first-seen order.
func (c *counter) mostCommon(n int) []Count {
	out := make([]Count, len(c.order))
	for i, name := range c.order {
		out[i] = Count{Name: name, Count: c.counts[name]}
	}

	slices.SortStableFunc(out, func(a, b Count) int {
		return b.Count - a.Count
	})

	if n > 0 {
		return head(out, n)
	}

	return out
}

// Package scenario holds openCypher conformance scenarios and the GFQL plans
// expected for them.
//
// Scenarios are registered statically (see Catalog) and collected into an
// immutable Registry. Prepare derives a new Registry with extension tags
// assigned and missing plans filled in by the translator.
package scenario

import (
	"slices"
	"strings"

	"github.com/rlch/gfql"
)

// Status is the conformance status of a scenario.
type Status string

// Scenario statuses.
const (
	StatusSupported Status = "supported"
	StatusXFail     Status = "xfail"
	StatusSkip      Status = "skip"
)

// Expected is the result a scenario's query should produce when executed.
type Expected struct {
	Rows []map[string]any

	// Ordered is set when row order is significant.
	Ordered bool

	// Error names the error class the query should raise, e.g. "SyntaxError".
	Error string
}

// Scenario is one conformance case: a query, the graph it runs against, its
// expected result and the plan it should translate to.
type Scenario struct {
	// Key uniquely identifies the scenario, e.g. "return-orderby2-1".
	Key string

	// FeaturePath is the feature file the scenario comes from, e.g.
	// "tck/features/clauses/return-orderby/ReturnOrderBy2.feature".
	FeaturePath string

	Name  string
	Query string

	// Setup is the Cypher that creates the scenario's graph.
	Setup string

	Expected Expected

	// Plan is the expected translation. It is nil when no plan has been
	// written or translated yet.
	Plan gfql.Plan

	Status Status
	Reason string
	Tags   []string
}

// HasTag reports whether the scenario carries tag.
func (s Scenario) HasTag(tag string) bool {
	return slices.Contains(s.Tags, tag)
}

// HasPlan reports whether the scenario has a plan that is more than a raw
// placeholder.
func (s Scenario) HasPlan() bool {
	return !s.Plan.IsPlaceholder()
}

// FeatureGroup returns the first path component after "features", e.g.
// "clauses". Missing components read as "unknown".
func (s Scenario) FeatureGroup() string {
	group, _ := s.featureParts()

	return group
}

// FeatureArea returns the group joined with the following component, e.g.
// "clauses/return-orderby".
func (s Scenario) FeatureArea() string {
	_, area := s.featureParts()

	return area
}

func (s Scenario) featureParts() (group, area string) {
	parts := strings.Split(s.FeaturePath, "/")

	i := slices.Index(parts, "features")
	if i < 0 {
		return "unknown", "unknown"
	}

	if i+1 >= len(parts) {
		return "unknown", "unknown/unknown"
	}

	group = parts[i+1]
	if i+2 < len(parts) {
		return group, group + "/" + parts[i+2]
	}

	return group, group + "/unknown"
}

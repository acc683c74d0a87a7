package scenario

import (
	"slices"
	"strings"

	"github.com/rlch/gfql"
)

// Extension tags assigned to expected-failure scenarios by feature path.
const (
	TagTargetTableOps    = "target-table-ops"
	TagTargetExprDSL     = "target-expr-dsl"
	TagDeferQuantifier   = "defer-quantifier"
	TagDeferPathEnum     = "defer-path-enum"
	TagDeferExprAdvanced = "defer-expr-advanced"
	TagDeferUnwind       = "defer-unwind"
	TagDeferUnion        = "defer-union"
)

// TargetTags are the tags of scenarios the translator is expected to cover.
var TargetTags = []string{TagTargetTableOps, TagTargetExprDSL}

// DeferTags are the tags of scenarios deliberately left for later.
var DeferTags = []string{
	TagDeferQuantifier,
	TagDeferPathEnum,
	TagDeferExprAdvanced,
	TagDeferUnwind,
	TagDeferUnion,
}

// extensionRules maps feature path fragments to the tag they imply.
var extensionRules = []struct {
	tag       string
	fragments []string
}{
	{TagTargetTableOps, []string{"clauses/return", "clauses/with"}},
	{TagTargetExprDSL, []string{
		"expressions/aggregation",
		"expressions/boolean",
		"expressions/comparison",
		"expressions/list",
		"expressions/literals",
		"expressions/mathematical",
		"expressions/null",
		"expressions/precedence",
		"expressions/string",
		"expressions/temporal",
	}},
	{TagDeferQuantifier, []string{"expressions/quantifier"}},
	{TagDeferPathEnum, []string{"expressions/path"}},
	{TagDeferExprAdvanced, []string{
		"expressions/conditional",
		"expressions/existentialSubqueries",
		"expressions/graph",
		"expressions/map",
		"expressions/pattern",
		"expressions/typeConversion",
	}},
	{TagDeferUnwind, []string{"clauses/unwind"}},
	{TagDeferUnion, []string{"clauses/union"}},
}

// ExtensionTags returns the extension tags implied by a feature path, in rule
// order.
func ExtensionTags(featurePath string) []string {
	var tags []string

	for _, rule := range extensionRules {
		if slices.ContainsFunc(rule.fragments, func(f string) bool {
			return strings.Contains(featurePath, f)
		}) {
			tags = append(tags, rule.tag)
		}
	}

	return tags
}

// Tag returns s with its extension tags appended. Only expected-failure
// scenarios are tagged; existing tags keep their order and are not repeated.
func Tag(s Scenario) Scenario {
	if s.Status != StatusXFail {
		return s
	}

	extra := ExtensionTags(s.FeaturePath)
	if len(extra) == 0 {
		return s
	}

	tags := slices.Clone(s.Tags)
	for _, tag := range extra {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}

	s.Tags = tags

	return s
}

// Translate fills in a missing plan for an expected-failure scenario that
// carries a target tag. Other scenarios are returned unchanged.
func Translate(t *gfql.Translator, s Scenario) Scenario {
	if s.Status != StatusXFail || s.Plan != nil {
		return s
	}

	if !slices.ContainsFunc(TargetTags, s.HasTag) {
		return s
	}

	s.Plan = t.BuildPlan(s.Query)

	return s
}

// Prepare tags and then translates every scenario, returning a new registry.
func Prepare(t *gfql.Translator, scenarios ...Scenario) *Registry {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		out[i] = Translate(t, Tag(s))
	}

	return New(out...)
}

// Tagged returns a new registry with Tag applied and plans left as written.
func Tagged(scenarios ...Scenario) *Registry {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		out[i] = Tag(s)
	}

	return New(out...)
}

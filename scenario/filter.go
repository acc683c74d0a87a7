package scenario

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Predicate reports whether a scenario is selected.
type Predicate func(Scenario) (bool, error)

// predicateEnv is the set of names a predicate may reference. The zero values
// fix the types the compiler checks against.
var predicateEnv = map[string]any{
	"key":        "",
	"name":       "",
	"feature":    "",
	"group":      "",
	"area":       "",
	"query":      "",
	"status":     "",
	"reason":     "",
	"tags":       []string{},
	"ops":        []string{},
	"has_plan":   false,
	"translated": false,
	"has_raw":    false,
}

// Compile compiles a boolean expression over scenario fields, for example
//
//	status == "xfail" && "orderby" in tags
//
// Available names are key, name, feature, group, area, query, status, reason,
// tags, ops (the op names of the scenario's plan), has_plan (a plan beyond a
// raw placeholder, as Scenario.HasPlan), translated (any plan at all) and
// has_raw.
func Compile(predicate string) (Predicate, error) {
	program, err := expr.Compile(predicate, expr.Env(predicateEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling predicate %q: %w", predicate, err)
	}

	return func(s Scenario) (bool, error) {
		return run(program, s)
	}, nil
}

func run(program *vm.Program, s Scenario) (bool, error) {
	out, err := expr.Run(program, env(s))
	if err != nil {
		return false, fmt.Errorf("evaluating predicate for %s: %w", s.Key, err)
	}

	ok, _ := out.(bool)

	return ok, nil
}

func env(s Scenario) map[string]any {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	ops := s.Plan.Ops()

	return map[string]any{
		"key":        s.Key,
		"name":       s.Name,
		"feature":    s.FeaturePath,
		"group":      s.FeatureGroup(),
		"area":       s.FeatureArea(),
		"query":      s.Query,
		"status":     string(s.Status),
		"reason":     s.Reason,
		"tags":       tags,
		"ops":        ops,
		"has_plan":   s.HasPlan(),
		"translated": s.Plan != nil,
		"has_raw":    s.Plan.HasRaw(),
	}
}

// Select returns a registry of the scenarios matching p.
func (r *Registry) Select(p Predicate) (*Registry, error) {
	var out []Scenario

	for _, s := range r.scenarios {
		ok, err := p(s)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, s)
		}
	}

	return New(out...), nil
}

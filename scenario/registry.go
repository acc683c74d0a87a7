package scenario

import "slices"

// Registry is an immutable, ordered collection of scenarios.
type Registry struct {
	scenarios []Scenario
	index     map[string]int
}

// New creates a registry holding the given scenarios in order. A later
// scenario with a duplicate key replaces the earlier one in place.
func New(scenarios ...Scenario) *Registry {
	r := &Registry{index: make(map[string]int, len(scenarios))}

	for _, s := range scenarios {
		if i, ok := r.index[s.Key]; ok {
			r.scenarios[i] = s

			continue
		}

		r.index[s.Key] = len(r.scenarios)
		r.scenarios = append(r.scenarios, s)
	}

	return r
}

// All returns a copy of the registered scenarios.
func (r *Registry) All() []Scenario {
	return slices.Clone(r.scenarios)
}

// Len returns the number of scenarios.
func (r *Registry) Len() int {
	return len(r.scenarios)
}

// Get returns the scenario registered under key.
func (r *Registry) Get(key string) (Scenario, bool) {
	i, ok := r.index[key]
	if !ok {
		return Scenario{}, false
	}

	return r.scenarios[i], true
}

// Filter returns a new registry with the scenarios for which keep returns true.
func (r *Registry) Filter(keep func(Scenario) bool) *Registry {
	var out []Scenario

	for _, s := range r.scenarios {
		if keep(s) {
			out = append(out, s)
		}
	}

	return New(out...)
}

// Map returns a new registry with f applied to every scenario.
func (r *Registry) Map(f func(Scenario) Scenario) *Registry {
	out := make([]Scenario, len(r.scenarios))
	for i, s := range r.scenarios {
		out[i] = f(s)
	}

	return New(out...)
}

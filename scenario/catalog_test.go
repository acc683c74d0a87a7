package scenario_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/gfql/scenario"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}

	for _, s := range scenario.Catalog() {
		assert.False(t, seen[s.Key], "duplicate key %s", s.Key)
		seen[s.Key] = true

		assert.NotEmpty(t, s.Name, s.Key)
		assert.NotEmpty(t, s.Query, s.Key)
		assert.True(t, strings.HasPrefix(s.FeaturePath, "tck/features/"), s.Key)
		assert.True(t, strings.HasSuffix(s.FeaturePath, ".feature"), s.Key)

		switch s.Status {
		case scenario.StatusSupported:
			assert.True(t, s.HasPlan(), "supported scenario %s has no plan", s.Key)
			assert.Empty(t, s.Reason, s.Key)
		case scenario.StatusXFail, scenario.StatusSkip:
			assert.NotEmpty(t, s.Reason, s.Key)
		default:
			t.Errorf("%s: unknown status %q", s.Key, s.Status)
		}
	}
}

func TestCatalog_FreshValues(t *testing.T) {
	t.Parallel()

	first := scenario.Catalog()
	first[0].Tags[0] = "changed"

	assert.NotEqual(t, "changed", scenario.Catalog()[0].Tags[0])
}

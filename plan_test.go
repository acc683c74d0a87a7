package gfql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/gfql"
)

func TestPlan_HasRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "fully translated", query: "MATCH (n)\nRETURN n", want: false},
		{name: "raw step", query: "1 + 2", want: true},
		{name: "raw projection", query: "RETURN a +", want: true},
		{name: "raw nested in a call", query: "MATCH (n)\nWHERE f(a +)", want: true},
		{name: "raw order key", query: "ORDER BY (a", want: true},
		{name: "pass-through clause", query: "CREATE (n)", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, gfql.BuildPlan(tt.query).HasRaw())
		})
	}
}

func TestPlan_IsPlaceholder(t *testing.T) {
	t.Parallel()

	assert.True(t, gfql.Plan(nil).IsPlaceholder())
	assert.True(t, gfql.BuildPlan("").IsPlaceholder())
	assert.True(t, gfql.BuildPlan("no clauses here").IsPlaceholder())
	assert.False(t, gfql.BuildPlan("RETURN a +").IsPlaceholder())
	assert.False(t, gfql.Plan{gfql.RawStep{}, gfql.RawStep{}}.IsPlaceholder())
	assert.False(t, gfql.Plan{gfql.InvalidStep{Reason: "x"}}.IsPlaceholder())
}

func TestPlan_Params(t *testing.T) {
	t.Parallel()

	plan := gfql.BuildPlan("MATCH (n)\nWHERE n.x = $a AND n.y IN $b\nRETURN $a AS a, {k: $c} AS m\nLIMIT $limit")

	// LIMIT amounts are kept as text and contribute no parameters.
	assert.Equal(t, []string{"a", "b", "c"}, plan.Params())
	assert.Empty(t, gfql.BuildPlan("RETURN 1").Params())
}

func TestExprs(t *testing.T) {
	t.Parallel()

	where := bin(gfql.OpEq, col("a"), gfql.IntLit(1))

	tests := []struct {
		name string
		step gfql.Step
		want []gfql.Expr
	}{
		{name: "match", step: gfql.MatchStep{Pattern: "(n)"}},
		{name: "where", step: gfql.WhereStep{Expr: where}, want: []gfql.Expr{where}},
		{name: "unwind", step: gfql.UnwindStep{Expr: col("xs")}, want: []gfql.Expr{col("xs")}},
		{
			name: "select",
			step: sel(proj("a", col("a")), proj("b", col("b"))),
			want: []gfql.Expr{col("a"), col("b")},
		},
		{
			name: "order by",
			step: gfql.OrderByStep{Keys: []gfql.SortKey{{Expr: col("k"), Direction: gfql.Desc}}},
			want: []gfql.Expr{col("k")},
		},
		{name: "limit", step: gfql.LimitStep{Value: gfql.IntAmount(1)}},
		{name: "clause", step: gfql.ClauseStep{Name: "set", Body: "n.x = 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, gfql.Exprs(tt.step))
		})
	}
}

func TestAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount gfql.Amount
		value  any
		str    string
	}{
		{amount: gfql.IntAmount(5), value: int64(5), str: "5"},
		{amount: gfql.FloatAmount(2), value: float64(2), str: "2.0"},
		{amount: gfql.FloatAmount(0.25), value: 0.25, str: "0.25"},
		{amount: gfql.ExprAmount("$n"), value: "$n", str: `"$n"`},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.value, tt.amount.Value())
			assert.Equal(t, tt.str, tt.amount.String())
		})
	}
}

func TestLit_Value(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(7), gfql.IntLit(7).Value())
	assert.Equal(t, 1.5, gfql.FloatLit(1.5).Value())
	assert.Equal(t, true, gfql.BoolLit(true).Value())
	assert.Equal(t, "s", gfql.StringLit("s").Value())
	assert.Nil(t, gfql.NullLit().Value())

	assert.Equal(t, "float", gfql.LitFloat.String())
	assert.Equal(t, "LitKind(9)", gfql.LitKind(9).String())
}

func TestMap_Get(t *testing.T) {
	t.Parallel()

	m := gfql.Map{Entries: []gfql.MapEntry{{Key: "a", Value: gfql.IntLit(1)}}}

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, gfql.IntLit(1), v)

	_, ok = m.Get("b")
	assert.False(t, ok)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	e := gfql.ParseExpr("f(a, [b, {k: c[0]}]) + -d")

	var cols []string

	gfql.Inspect(e, func(n gfql.Expr) bool {
		if c, ok := n.(gfql.Col); ok {
			cols = append(cols, c.Name)
		}

		return true
	})

	assert.Equal(t, []string{"a", "b", "c", "d"}, cols)
}

func TestInspect_Prune(t *testing.T) {
	t.Parallel()

	e := gfql.ParseExpr("f(a) + b")

	var visited []string

	gfql.Inspect(e, func(n gfql.Expr) bool {
		switch n := n.(type) {
		case gfql.Func:
			visited = append(visited, "func")
			return false
		case gfql.Col:
			visited = append(visited, n.Name)
		}

		return true
	})

	assert.Equal(t, []string{"func", "b"}, visited)
}

func TestContainsRaw(t *testing.T) {
	t.Parallel()

	assert.False(t, gfql.ContainsRaw(gfql.ParseExpr("a + 1")))
	assert.True(t, gfql.ContainsRaw(gfql.Raw{Text: "x"}))
	assert.True(t, gfql.ContainsRaw(gfql.List{Items: []gfql.Expr{gfql.IntLit(1), gfql.Raw{Text: "x"}}}))
}

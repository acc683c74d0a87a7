package gfql_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlch/gfql"
)

func TestFormatExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     gfql.Expr
		expected string
	}{
		{name: "column", expr: col("n.num"), expected: "col(n.num)"},
		{name: "integer", expr: gfql.IntLit(-3), expected: "lit(-3)"},
		{name: "whole float", expr: gfql.FloatLit(2), expected: "lit(2.0)"},
		{name: "fractional float", expr: gfql.FloatLit(1.5), expected: "lit(1.5)"},
		{name: "exponent float", expr: gfql.FloatLit(1e21), expected: "lit(1e+21)"},
		{name: "infinite float", expr: gfql.FloatLit(math.Inf(1)), expected: "lit(+Inf)"},
		{name: "string", expr: gfql.StringLit(`say "hi"`), expected: `lit("say \"hi\"")`},
		{name: "bool", expr: gfql.BoolLit(true), expected: "lit(true)"},
		{name: "null", expr: gfql.NullLit(), expected: "lit(null)"},
		{name: "param", expr: gfql.Param{Name: "x"}, expected: "param(x)"},
		{name: "star", expr: gfql.Star{}, expected: "star()"},
		{name: "raw", expr: gfql.Raw{Text: "a +"}, expected: `raw("a +")`},
		{
			name:     "nested binary",
			expr:     bin(gfql.OpAdd, gfql.IntLit(1), bin(gfql.OpMul, gfql.IntLit(2), gfql.IntLit(3))),
			expected: "binary(add, lit(1), binary(mul, lit(2), lit(3)))",
		},
		{
			name:     "unary",
			expr:     un(gfql.OpIsNotNull, col("a")),
			expected: "unary(is_not_null, col(a))",
		},
		{
			name:     "function",
			expr:     gfql.Func{Name: "count", Args: []gfql.Expr{gfql.Distinct{Inner: col("n")}}},
			expected: "func(count, distinct(col(n)))",
		},
		{name: "function without arguments", expr: gfql.Func{Name: "rand"}, expected: "func(rand)"},
		{
			name:     "list",
			expr:     gfql.List{Items: []gfql.Expr{gfql.IntLit(1), gfql.StringLit("a")}},
			expected: `list(lit(1), lit("a"))`,
		},
		{name: "empty list", expr: gfql.List{}, expected: "list()"},
		{
			name: "map",
			expr: gfql.Map{Entries: []gfql.MapEntry{
				{Key: "a", Value: gfql.IntLit(1)},
				{Key: "b c", Value: col("x")},
			}},
			expected: `map("a": lit(1), "b c": col(x))`,
		},
		{
			name:     "index",
			expr:     gfql.Index{Base: col("xs"), Key: gfql.IntLit(0)},
			expected: "index(col(xs), lit(0))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, gfql.FormatExpr(tt.expr))
		})
	}
}

func TestFormatStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		step     gfql.Step
		expected string
	}{
		{
			name:     "match",
			step:     gfql.MatchStep{Pattern: "(n)"},
			expected: `match(pattern="(n)", optional=false)`,
		},
		{
			name:     "optional match",
			step:     gfql.MatchStep{Pattern: "(a)-->(b)", Optional: true},
			expected: `match(pattern="(a)-->(b)", optional=true)`,
		},
		{
			name:     "where",
			step:     gfql.WhereStep{Expr: bin(gfql.OpGt, col("n.x"), gfql.IntLit(1))},
			expected: "where(expr=binary(gt, col(n.x), lit(1)))",
		},
		{
			name:     "unwind with alias",
			step:     gfql.UnwindStep{Expr: col("xs"), Alias: "x"},
			expected: `unwind(expr=col(xs), alias="x")`,
		},
		{
			name:     "unwind without alias",
			step:     gfql.UnwindStep{Expr: col("xs")},
			expected: "unwind(expr=col(xs))",
		},
		{
			name:     "with",
			step:     gfql.WithStep{Items: []gfql.Projection{proj("a", col("a")), proj("x", col("a.x"))}},
			expected: `with(items=[("a", col(a)), ("x", col(a.x))])`,
		},
		{
			name:     "select",
			step:     sel(proj("prop", col("n.num"))),
			expected: `select(items=[("prop", col(n.num))])`,
		},
		{name: "distinct", step: gfql.DistinctStep{}, expected: "distinct()"},
		{
			name: "order by",
			step: gfql.OrderByStep{Keys: []gfql.SortKey{
				{Expr: col("n.num"), Direction: gfql.Asc},
				{Expr: col("n.name"), Direction: gfql.Desc},
			}},
			expected: "order_by(keys=[(col(n.num), asc), (col(n.name), desc)])",
		},
		{name: "skip", step: gfql.SkipStep{Value: gfql.IntAmount(2)}, expected: "skip(value=2)"},
		{name: "limit float", step: gfql.LimitStep{Value: gfql.FloatAmount(3)}, expected: "limit(value=3.0)"},
		{
			name:     "limit expression",
			step:     gfql.LimitStep{Value: gfql.ExprAmount("$n")},
			expected: `limit(value="$n")`,
		},
		{
			name:     "clause",
			step:     gfql.ClauseStep{Name: "create", Body: "(n)"},
			expected: `create(expr="(n)")`,
		},
		{name: "raw", step: gfql.RawStep{Text: "1 + 2"}, expected: `raw(text="1 + 2")`},
		{
			name:     "invalid",
			step:     gfql.InvalidStep{Reason: "bad"},
			expected: `invalid(reason="bad")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, gfql.FormatStep(tt.step))
		})
	}
}

func TestFormatPlan(t *testing.T) {
	t.Parallel()

	plan := gfql.BuildPlan("MATCH (n)\nRETURN n.num AS prop\nLIMIT 1")

	expected := `match(pattern="(n)", optional=false)
select(items=[("prop", col(n.num))])
limit(value=1)
`
	assert.Equal(t, expected, gfql.FormatPlan(plan))
	assert.Equal(t, expected[:len(expected)-1], plan.String())
	assert.Empty(t, gfql.FormatPlan(nil))
	assert.Empty(t, gfql.Plan(nil).String())
}

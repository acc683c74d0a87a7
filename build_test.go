package gfql_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rlch/gfql"
)

func TestBuildPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  gfql.Plan
	}{
		{
			name:  "match return order by",
			query: "MATCH (n)\nRETURN n.num AS prop\nORDER BY n.num",
			want: gfql.Plan{
				gfql.MatchStep{Pattern: "(n)"},
				sel(proj("prop", col("n.num"))),
				gfql.OrderByStep{Keys: []gfql.SortKey{{Expr: col("n.num"), Direction: gfql.Asc}}},
			},
		},
		{
			name:  "distinct follows its projection",
			query: "MATCH (n)\nRETURN DISTINCT n.name\nORDER BY n.name DESC\nSKIP 1\nLIMIT 2",
			want: gfql.Plan{
				gfql.MatchStep{Pattern: "(n)"},
				sel(proj("n.name", col("n.name"))),
				gfql.DistinctStep{},
				gfql.OrderByStep{Keys: []gfql.SortKey{{Expr: col("n.name"), Direction: gfql.Desc}}},
				gfql.SkipStep{Value: gfql.IntAmount(1)},
				gfql.LimitStep{Value: gfql.IntAmount(2)},
			},
		},
		{
			name:  "optional match and where",
			query: "OPTIONAL MATCH (a)-->(b)\nWHERE b.x IS NOT NULL\nRETURN b",
			want: gfql.Plan{
				gfql.MatchStep{Pattern: "(a)-->(b)", Optional: true},
				gfql.WhereStep{Expr: un(gfql.OpIsNotNull, col("b.x"))},
				sel(proj("b", col("b"))),
			},
		},
		{
			name:  "with distinct and star",
			query: "MATCH (a)\nWITH DISTINCT a, a.x AS x\nRETURN *",
			want: gfql.Plan{
				gfql.MatchStep{Pattern: "(a)"},
				gfql.WithStep{Items: []gfql.Projection{proj("a", col("a")), proj("x", col("a.x"))}},
				gfql.DistinctStep{},
				sel(proj("*", gfql.Star{})),
			},
		},
		{
			name:  "identifier starting with distinct",
			query: "RETURN distinctValue",
			want:  gfql.Plan{sel(proj("distinctValue", col("distinctValue")))},
		},
		{
			name:  "unwind with alias",
			query: "UNWIND [1, 2] AS x\nRETURN x",
			want: gfql.Plan{
				gfql.UnwindStep{Expr: gfql.List{Items: []gfql.Expr{gfql.IntLit(1), gfql.IntLit(2)}}, Alias: "x"},
				sel(proj("x", col("x"))),
			},
		},
		{
			name:  "unwind without alias",
			query: "UNWIND xs\nRETURN 1",
			want: gfql.Plan{
				gfql.UnwindStep{Expr: col("xs")},
				sel(proj("1", gfql.IntLit(1))),
			},
		},
		{
			name:  "projection alias defaults to the item text",
			query: "RETURN count(*), n.x + 1",
			want: gfql.Plan{sel(
				proj("count(*)", gfql.Func{Name: "count", Args: []gfql.Expr{gfql.Star{}}}),
				proj("n.x + 1", bin(gfql.OpAdd, col("n.x"), gfql.IntLit(1))),
			)},
		},
		{
			name:  "untranslatable projection is raw",
			query: "RETURN n[, 1 AS one",
			want: gfql.Plan{sel(
				proj("n[, 1 AS one", gfql.Raw{Text: "n[, 1 AS one"}),
			)},
		},
		{
			name:  "untranslatable where is raw",
			query: "MATCH (n)\nWHERE none(x IN n.xs WHERE x > 1)",
			want: gfql.Plan{
				gfql.MatchStep{Pattern: "(n)"},
				gfql.WhereStep{Expr: gfql.Raw{Text: "none(x IN n.xs WHERE x > 1)"}},
			},
		},
		{
			name:  "order by several keys",
			query: "ORDER BY a ASC, b descending, c",
			want: gfql.Plan{gfql.OrderByStep{Keys: []gfql.SortKey{
				{Expr: col("a"), Direction: gfql.Asc},
				{Expr: col("b"), Direction: gfql.Desc},
				{Expr: col("c"), Direction: gfql.Asc},
			}}},
		},
		{
			name:  "skip and limit amounts",
			query: "SKIP $skipAmount\nLIMIT 1.5",
			want: gfql.Plan{
				gfql.SkipStep{Value: gfql.ExprAmount("$skipAmount")},
				gfql.LimitStep{Value: gfql.FloatAmount(1.5)},
			},
		},
		{
			name:  "negative and overflowing amounts",
			query: "SKIP -1\nLIMIT 99999999999999999999",
			want: gfql.Plan{
				gfql.SkipStep{Value: gfql.IntAmount(-1)},
				gfql.LimitStep{Value: gfql.ExprAmount("99999999999999999999")},
			},
		},
		{
			name:  "expression amount",
			query: "LIMIT n.count",
			want:  gfql.Plan{gfql.LimitStep{Value: gfql.ExprAmount("n.count")}},
		},
		{
			name:  "write clauses pass through",
			query: "CREATE (n {x: 1})\nMERGE (m)\nCALL db.labels()",
			want: gfql.Plan{
				gfql.ClauseStep{Name: "create", Body: "(n {x: 1})"},
				gfql.ClauseStep{Name: "merge", Body: "(m)"},
				gfql.ClauseStep{Name: "call", Body: "db.labels()"},
			},
		},
		{
			name:  "no keyword",
			query: " 1 + 2 ",
			want:  gfql.Plan{gfql.RawStep{Text: "1 + 2"}},
		},
		{
			name:  "empty",
			query: "",
			want:  gfql.Plan{gfql.RawStep{Text: ""}},
		},
		{
			name:  "blank keeps its text",
			query: " \n ",
			want:  gfql.Plan{gfql.RawStep{Text: " \n "}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := gfql.BuildPlan(tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildPlan(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

// queries exercises translation over a spread of well-formed and broken input.
var queries = []string{
	"",
	"MATCH (n)\nRETURN n",
	"MATCH (n)\nWHERE n.x > 1 AND NOT n.y\nRETURN n.x AS x, count(*) AS c\nORDER BY x DESC\nSKIP 1\nLIMIT 10",
	"WITH {a: 1, a: 2} AS m\nRETURN m.a",
	"RETURN [1, 2, 3][0] AS first",
	"RETURN ((((",
	"RETURN ))))",
	"RETURN 'unterminated",
	"ORDER BY",
	"LIMIT",
	"UNWIND AS",
	"\x00\xff",
	"RETURN `a,b` AS c, \"x,y\"",
	strings.Repeat("(", 64) + "1" + strings.Repeat(")", 64),
}

func TestBuildPlan_Properties(t *testing.T) {
	t.Parallel()

	for _, q := range queries {
		first := gfql.BuildPlan(q)
		second := gfql.BuildPlan(q)

		assert.NotEmpty(t, first, "plan for %q", q)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("BuildPlan(%q) not deterministic (-first +second):\n%s", q, diff)
		}
	}
}

func TestBuildPlan_DeepNesting(t *testing.T) {
	t.Parallel()

	const n = 100_000

	for name, body := range map[string]string{
		"parentheses": strings.Repeat("(", n) + "1" + strings.Repeat(")", n),
		"unary minus": strings.Repeat("-", n) + "1",
		"not":         strings.Repeat("NOT ", n) + "x",
		"lists":       strings.Repeat("[", n) + strings.Repeat("]", n),
		"index":       "x" + strings.Repeat("[x", n) + strings.Repeat("]", n),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			plan := gfql.BuildPlan("MATCH (n)\nWHERE " + body)

			want := gfql.Plan{
				gfql.MatchStep{Pattern: "(n)"},
				gfql.WhereStep{Expr: gfql.Raw{Text: body}},
			}
			if diff := cmp.Diff(want, plan); diff != "" {
				t.Errorf("BuildPlan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildPlan_Ops(t *testing.T) {
	t.Parallel()

	plan := gfql.BuildPlan("MATCH (n)\nWITH DISTINCT n\nWHERE n.x = 1\nRETURN n\nORDER BY n\nSKIP 1\nLIMIT 1")

	want := []string{"match", "with", "distinct", "where", "select", "order_by", "skip", "limit"}
	assert.Equal(t, want, plan.Ops())
}

func TestTranslator_Logging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	tr := gfql.NewTranslator(gfql.WithLogger(zap.New(core)))

	plan := tr.BuildPlan("MATCH (n)\nWHERE n.x >\nRETURN n")
	assert.True(t, plan.HasRaw())

	fallbacks := logs.FilterMessage("expression not translated").All()
	if assert.Len(t, fallbacks, 1) {
		assert.Equal(t, "n.x >", fallbacks[0].ContextMap()["expr"])
	}

	assert.Equal(t, 1, logs.FilterMessage("translated query").Len())
}

func TestTranslator_NilLogger(t *testing.T) {
	t.Parallel()

	tr := gfql.NewTranslator(gfql.WithLogger(nil))
	assert.Equal(t, gfql.BuildPlan("RETURN 1"), tr.BuildPlan("RETURN 1"))
}

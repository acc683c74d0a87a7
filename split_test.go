package gfql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rlch/gfql"
)

func TestSplitItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: ""},
		{name: "blank", text: "   "},
		{name: "single", text: "n", want: []string{"n"}},
		{name: "call arguments stay together", text: "foo(a, b), c", want: []string{"foo(a, b)", "c"}},
		{
			name: "lists and maps",
			text: "a, [1, 2], {k: 'x', j: 2}",
			want: []string{"a", "[1, 2]", "{k: 'x', j: 2}"},
		},
		{name: "quoted commas", text: `'a,b', "c,d"`, want: []string{`'a,b'`, `"c,d"`}},
		{name: "backtick commas", text: "`x,y`, z", want: []string{"`x,y`", "z"}},
		{name: "escaped quote", text: `'it\'s, ok', z`, want: []string{`'it\'s, ok'`, "z"}},
		{name: "empty items dropped", text: "a,, b ,", want: []string{"a", "b"}},
		{name: "unbalanced bracket", text: "f(a, b", want: []string{"f(a, b"}},
		{name: "stray closer", text: "a), b", want: []string{"a)", "b"}},
		{name: "items are trimmed", text: " a AS x ,\n b ", want: []string{"a AS x", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := gfql.SplitItems(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitItems(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

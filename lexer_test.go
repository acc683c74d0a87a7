package gfql_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/gfql"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []lexer.Token
	}{
		{
			name:  "empty",
			input: "",
			want:  []lexer.Token{eof()},
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  []lexer.Token{eof()},
		},
		{
			name:  "property comparison",
			input: "n.num >= 1.5",
			want: []lexer.Token{
				tok(gfql.TokenIdent, "n.num"),
				tok(gfql.TokenOp, ">="),
				tok(gfql.TokenNumber, "1.5"),
				eof(),
			},
		},
		{
			name:  "multi-character operators",
			input: "a <> b != c =~ d <= e",
			want: []lexer.Token{
				tok(gfql.TokenIdent, "a"),
				tok(gfql.TokenOp, "<>"),
				tok(gfql.TokenIdent, "b"),
				tok(gfql.TokenOp, "!="),
				tok(gfql.TokenIdent, "c"),
				tok(gfql.TokenOp, "=~"),
				tok(gfql.TokenIdent, "d"),
				tok(gfql.TokenOp, "<="),
				tok(gfql.TokenIdent, "e"),
				eof(),
			},
		},
		{
			name:  "escaped string",
			input: `'it\'s' "say \"hi\""`,
			want: []lexer.Token{
				tok(gfql.TokenString, "it's"),
				tok(gfql.TokenString, `say "hi"`),
				eof(),
			},
		},
		{
			name:  "unterminated string runs to end",
			input: "'abc",
			want:  []lexer.Token{tok(gfql.TokenString, "abc"), eof()},
		},
		{
			name:  "parameter",
			input: "$skipAmount",
			want:  []lexer.Token{tok(gfql.TokenParam, "skipAmount"), eof()},
		},
		{
			name:  "backtick identifier",
			input: "`weird name`",
			want:  []lexer.Token{tok(gfql.TokenIdent, "weird name"), eof()},
		},
		{
			name:  "function call with star",
			input: "count(*)",
			want: []lexer.Token{
				tok(gfql.TokenIdent, "count"),
				tok(gfql.TokenLParen, "("),
				tok(gfql.TokenOp, "*"),
				tok(gfql.TokenRParen, ")"),
				eof(),
			},
		},
		{
			name:  "list and map",
			input: "[1, {a: 2}]",
			want: []lexer.Token{
				tok(gfql.TokenLBracket, "["),
				tok(gfql.TokenNumber, "1"),
				tok(gfql.TokenComma, ","),
				tok(gfql.TokenLBrace, "{"),
				tok(gfql.TokenIdent, "a"),
				tok(gfql.TokenColon, ":"),
				tok(gfql.TokenNumber, "2"),
				tok(gfql.TokenRBrace, "}"),
				tok(gfql.TokenRBracket, "]"),
				eof(),
			},
		},
		{
			name:  "trailing dot is not part of a number",
			input: "1.",
			want:  []lexer.Token{tok(gfql.TokenNumber, "1"), eof()},
		},
		{
			name:  "unknown characters are skipped",
			input: "x ! y | z",
			want: []lexer.Token{
				tok(gfql.TokenIdent, "x"),
				tok(gfql.TokenIdent, "y"),
				tok(gfql.TokenIdent, "z"),
				eof(),
			},
		},
		{
			name:  "arithmetic symbols",
			input: "-a+b*c/d%e^f",
			want: []lexer.Token{
				tok(gfql.TokenOp, "-"),
				tok(gfql.TokenIdent, "a"),
				tok(gfql.TokenOp, "+"),
				tok(gfql.TokenIdent, "b"),
				tok(gfql.TokenOp, "*"),
				tok(gfql.TokenIdent, "c"),
				tok(gfql.TokenOp, "/"),
				tok(gfql.TokenIdent, "d"),
				tok(gfql.TokenOp, "%"),
				tok(gfql.TokenIdent, "e"),
				tok(gfql.TokenOp, "^"),
				tok(gfql.TokenIdent, "f"),
				eof(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := gfql.Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got, cmpIgnorePos); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenize_Positions(t *testing.T) {
	t.Parallel()

	tokens := gfql.Tokenize("a\n  bb")
	require.Len(t, tokens, 3)

	assert.Equal(t, lexer.Position{Offset: 0, Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, lexer.Position{Offset: 4, Line: 2, Column: 3}, tokens[1].Pos)
	assert.Equal(t, lexer.Position{Offset: 6, Line: 2, Column: 5}, tokens[2].Pos)
}

func TestLexer_Definition(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gfql.TokenIdent, gfql.Lexer.Symbols()["IDENT"])
	assert.Equal(t, gfql.TokenEOF, gfql.Lexer.Symbols()["EOF"])

	l, err := gfql.Lexer.LexString("q.cypher", "a + 1")
	require.NoError(t, err)

	tokens, err := lexer.ConsumeAll(l)
	require.NoError(t, err)

	want := []lexer.Token{
		tok(gfql.TokenIdent, "a"),
		tok(gfql.TokenOp, "+"),
		tok(gfql.TokenNumber, "1"),
		eof(),
	}
	if diff := cmp.Diff(want, tokens, cmpIgnorePos); diff != "" {
		t.Errorf("ConsumeAll mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "q.cypher", tokens[0].Pos.Filename)
}

func TestTokenName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IDENT", gfql.TokenName(gfql.TokenIdent))
	assert.Equal(t, "EOF", gfql.TokenName(gfql.TokenEOF))
	assert.Equal(t, "UNKNOWN", gfql.TokenName(lexer.TokenType(42)))
}

package gfql_test

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rlch/gfql"
)

// cmpIgnorePos ignores token positions so tests can compare token types and
// values only.
var cmpIgnorePos = cmp.Options{
	cmpopts.IgnoreTypes(lexer.Position{}),
}

// tok builds a token without a position.
func tok(typ lexer.TokenType, value string) lexer.Token {
	return lexer.Token{Type: typ, Value: value}
}

func eof() lexer.Token {
	return lexer.Token{Type: gfql.TokenEOF}
}

func col(name string) gfql.Col {
	return gfql.Col{Name: name}
}

func bin(op gfql.BinaryOp, left, right gfql.Expr) gfql.Binary {
	return gfql.Binary{Op: op, Left: left, Right: right}
}

func un(op gfql.UnaryOp, operand gfql.Expr) gfql.Unary {
	return gfql.Unary{Op: op, Operand: operand}
}

func proj(alias string, e gfql.Expr) gfql.Projection {
	return gfql.Projection{Alias: alias, Expr: e}
}

func sel(items ...gfql.Projection) gfql.SelectStep {
	return gfql.SelectStep{Items: items}
}

package gfql

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .gfql.yaml is found.
	ErrConfigNotFound = errors.New("gfql: no .gfql.yaml found")

	// ErrUnknownFormat is returned when an unknown output format is requested.
	ErrUnknownFormat = errors.New("gfql: unknown output format")
)

// ParseError is a structural error in an expression. The translator never
// surfaces it in a plan; the expression becomes a Raw node instead.
type ParseError struct {
	Pos     lexer.Position
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d near %s %q: %s",
		e.Pos.Offset, TokenName(e.Token.Type), e.Token.Value, e.Message)
}

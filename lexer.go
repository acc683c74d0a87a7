package gfql

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token type constants - negative values as per participle convention.
const (
	TokenEOF      lexer.TokenType = lexer.EOF
	TokenString   lexer.TokenType = -(iota + 2) //nolint:mnd // participle convention
	TokenIdent                                  // identifiers, dotted chains, `quoted`
	TokenNumber                                 // 12, 1.5
	TokenParam                                  // $name
	TokenOp                                     // operators
	TokenLParen                                 // (
	TokenRParen                                 // )
	TokenLBracket                               // [
	TokenRBracket                               // ]
	TokenLBrace                                 // {
	TokenRBrace                                 // }
	TokenComma                                  // ,
	TokenColon                                  // :
)

var tokenNames = map[lexer.TokenType]string{
	TokenEOF:      "EOF",
	TokenString:   "STRING",
	TokenIdent:    "IDENT",
	TokenNumber:   "NUMBER",
	TokenParam:    "PARAM",
	TokenOp:       "OP",
	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenLBracket: "LBRACKET",
	TokenRBracket: "RBRACKET",
	TokenLBrace:   "LBRACE",
	TokenRBrace:   "RBRACE",
	TokenComma:    "COMMA",
	TokenColon:    "COLON",
}

// TokenName returns the display name of a token type, e.g. "IDENT".
func TokenName(t lexer.TokenType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// Lexer is the expression lexer definition.
var Lexer = newExprLexer()

// Tokenize splits an expression into tokens. It never fails: characters that
// start no token are skipped. The result always ends with exactly one EOF token.
func Tokenize(text string) []lexer.Token {
	l := newLexerState("", text)

	var tokens []lexer.Token

	for {
		tok := l.next()
		tokens = append(tokens, tok)

		if tok.EOF() {
			return tokens
		}
	}
}

// exprDefinition implements lexer.Definition for Cypher expressions.
type exprDefinition struct {
	symbols map[string]lexer.TokenType
}

func newExprLexer() *exprDefinition {
	symbols := make(map[string]lexer.TokenType, len(tokenNames))
	for typ, name := range tokenNames {
		symbols[name] = typ
	}

	return &exprDefinition{symbols: symbols}
}

// Symbols returns the mapping of symbol names to token types.
func (d *exprDefinition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex creates a new Lexer for the given reader.
//
//nolint:ireturn // Required by participle's lexer.Definition interface.
func (d *exprDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return d.LexBytes(filename, data)
}

// LexBytes implements lexer.BytesDefinition.
//
//nolint:ireturn // Required by participle's lexer.BytesDefinition interface.
func (d *exprDefinition) LexBytes(filename string, data []byte) (lexer.Lexer, error) {
	return newLexerState(filename, string(data)), nil
}

// LexString implements lexer.StringDefinition.
//
//nolint:ireturn // Required by participle's lexer.StringDefinition interface.
func (d *exprDefinition) LexString(filename string, input string) (lexer.Lexer, error) {
	return newLexerState(filename, input), nil
}

// lexerState holds the state for lexing.
type lexerState struct {
	filename string
	input    string
	offset   int
	line     int
	col      int
}

func newLexerState(filename, input string) *lexerState {
	return &lexerState{
		filename: filename,
		input:    input,
		line:     1,
		col:      1,
	}
}

// Next returns the next token. It never returns an error.
func (l *lexerState) Next() (lexer.Token, error) {
	return l.next(), nil
}

func (l *lexerState) next() lexer.Token {
	for !l.eof() {
		before := l.offset

		if tok, ok := l.scan(); ok {
			return tok
		}

		if l.offset == before {
			panic("gfql: lexer made no progress at offset " + l.pos().String())
		}
	}

	return lexer.EOFToken(l.pos())
}

// scan consumes one lexeme. It reports false for skipped input.
func (l *lexerState) scan() (lexer.Token, bool) {
	start := l.pos()
	r := l.peek()

	switch {
	case unicode.IsSpace(r):
		for !l.eof() && unicode.IsSpace(l.peek()) {
			l.advance()
		}

		return lexer.Token{}, false

	case r == '"' || r == '\'':
		return l.scanString(start, r), true

	case r == '`':
		return l.scanQuotedIdent(start), true

	case isDigit(r):
		return l.scanNumber(start), true

	case r == '$':
		l.advance()

		for !l.eof() && isIdentContinue(l.peek()) {
			l.advance()
		}

		return l.valueToken(TokenParam, start, l.input[start.Offset+1:l.offset]), true

	case isIdentStart(r):
		return l.scanIdent(start), true
	}

	if tok, ok := l.scanMultiCharOp(start); ok {
		return tok, true
	}

	l.advance()

	switch r {
	case '(':
		return l.token(TokenLParen, start), true
	case ')':
		return l.token(TokenRParen, start), true
	case '[':
		return l.token(TokenLBracket, start), true
	case ']':
		return l.token(TokenRBracket, start), true
	case '{':
		return l.token(TokenLBrace, start), true
	case '}':
		return l.token(TokenRBrace, start), true
	case ',':
		return l.token(TokenComma, start), true
	case ':':
		return l.token(TokenColon, start), true
	}

	if strings.ContainsRune("+-*/%^=<>", r) {
		return l.token(TokenOp, start), true
	}

	// Anything else is dropped.
	return lexer.Token{}, false
}

func (l *lexerState) pos() lexer.Position {
	return lexer.Position{
		Filename: l.filename,
		Offset:   l.offset,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *lexerState) eof() bool {
	return l.offset >= len(l.input)
}

func (l *lexerState) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])

	return r
}

func (l *lexerState) peekAt(n int) rune {
	off := l.offset + n
	if off >= len(l.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[off:])

	return r
}

func (l *lexerState) advance() rune {
	if l.eof() {
		return 0
	}

	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

func (l *lexerState) match(s string) bool {
	return strings.HasPrefix(l.input[l.offset:], s)
}

func (l *lexerState) token(typ lexer.TokenType, start lexer.Position) lexer.Token {
	return l.valueToken(typ, start, l.input[start.Offset:l.offset])
}

func (l *lexerState) valueToken(typ lexer.TokenType, start lexer.Position, value string) lexer.Token {
	return lexer.Token{
		Type:  typ,
		Value: value,
		Pos:   start,
	}
}

// scanString reads a quoted string. The token value is the unescaped body; an
// unterminated string runs to the end of input.
func (l *lexerState) scanString(start lexer.Position, quote rune) lexer.Token {
	l.advance() // opening quote

	var b strings.Builder

	for !l.eof() {
		ch := l.peek()
		if ch == '\\' && l.offset+1 < len(l.input) {
			l.advance() // backslash
			b.WriteRune(l.advance())

			continue
		}

		l.advance()

		if ch == quote {
			break
		}

		b.WriteRune(ch)
	}

	return l.valueToken(TokenString, start, b.String())
}

func (l *lexerState) scanQuotedIdent(start lexer.Position) lexer.Token {
	l.advance() // opening `

	bodyStart := l.offset
	for !l.eof() && l.peek() != '`' {
		l.advance()
	}

	body := l.input[bodyStart:l.offset]

	if !l.eof() {
		l.advance() // closing `
	}

	return l.valueToken(TokenIdent, start, body)
}

// scanIdent reads an identifier and any .identifier suffixes, so n.name.first
// is a single token.
func (l *lexerState) scanIdent(start lexer.Position) lexer.Token {
	l.advance()

	for !l.eof() && isIdentContinue(l.peek()) {
		l.advance()
	}

	for l.peek() == '.' && isIdentStart(l.peekAt(1)) {
		l.advance() // .

		for !l.eof() && isIdentContinue(l.peek()) {
			l.advance()
		}
	}

	return l.token(TokenIdent, start)
}

func (l *lexerState) scanMultiCharOp(start lexer.Position) (lexer.Token, bool) {
	for _, op := range []string{"<=", ">=", "<>", "!=", "=~"} {
		if l.match(op) {
			for range len(op) {
				l.advance()
			}

			return l.token(TokenOp, start), true
		}
	}

	return lexer.Token{}, false
}

func (l *lexerState) scanNumber(start lexer.Position) lexer.Token {
	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}

	// Fractional part
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance() // .

		for !l.eof() && isDigit(l.peek()) {
			l.advance()
		}
	}

	return l.token(TokenNumber, start)
}

// Character helpers.

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

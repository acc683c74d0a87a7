package gfql

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Expression grammar, loosest binding first:
//
//	or         → xor (OR xor)*
//	xor        → and (XOR and)*
//	and        → not (AND not)*
//	not        → NOT not | comparison
//	comparison → additive (compare-op additive | IS [NOT] NULL)*
//	additive   → multiplicative (('+' | '-') multiplicative)*
//	multiplicative → power (('*' | '/' | '%') power)*
//	power      → unary ['^' power]
//	unary      → ('+' | '-') unary | postfix
//	postfix    → primary ('[' or ']')*
//
// Comparison operators chain left to right without validation, so a = b < c
// is accepted as (a = b) < c.

// ParseExpr parses expression text. Text that does not parse, including text
// with trailing tokens, yields Raw{Text: text} unchanged.
func ParseExpr(text string) Expr {
	e, err := Parse(Tokenize(text))
	if err != nil {
		return Raw{Text: text}
	}

	return e
}

// Parse parses a complete token sequence produced by Tokenize.
func Parse(tokens []lexer.Token) (Expr, error) {
	p := &exprParser{tokens: tokens}

	e := p.parseOr()
	if p.err == nil && !p.check(TokenEOF) {
		p.addError("unexpected trailing input")
	}

	if p.err != nil {
		return nil, p.err
	}

	return e, nil
}

// maxDepth bounds the nesting of parenthesized, bracketed, call and prefix
// productions so that hostile input fails to parse instead of exhausting the
// stack.
const maxDepth = 1000

// exprParser parses one expression. The first error stops all further
// consumption; every production returns promptly once err is set.
type exprParser struct {
	tokens []lexer.Token
	index  int
	depth  int
	err    *ParseError
}

// ---------- Token Helpers ----------

// peek returns the token offset positions ahead. Reads past the end return
// the final EOF token.
func (p *exprParser) peek(offset int) lexer.Token {
	if len(p.tokens) == 0 {
		return lexer.Token{Type: TokenEOF}
	}

	idx := min(p.index+offset, len(p.tokens)-1)

	return p.tokens[idx]
}

func (p *exprParser) advance() lexer.Token {
	tok := p.peek(0)
	p.index = min(p.index+1, len(p.tokens))

	return tok
}

func (p *exprParser) check(t lexer.TokenType) bool {
	return p.peek(0).Type == t
}

// match consumes the current token if it has the given type.
func (p *exprParser) match(t lexer.TokenType) bool {
	if p.err != nil || !p.check(t) {
		return false
	}

	p.advance()

	return true
}

// matchOp consumes the current token if it is the operator symbol op.
func (p *exprParser) matchOp(op string) bool {
	if p.err != nil {
		return false
	}

	tok := p.peek(0)
	if tok.Type != TokenOp || tok.Value != op {
		return false
	}

	p.advance()

	return true
}

func (p *exprParser) peekKeyword(word string, offset int) bool {
	tok := p.peek(offset)

	return tok.Type == TokenIdent && strings.EqualFold(tok.Value, word)
}

// matchKeywords consumes a sequence of keywords if all of them are present.
func (p *exprParser) matchKeywords(words ...string) bool {
	if p.err != nil {
		return false
	}

	for i, w := range words {
		if !p.peekKeyword(w, i) {
			return false
		}
	}

	for range words {
		p.advance()
	}

	return true
}

func (p *exprParser) expect(t lexer.TokenType) bool {
	if p.match(t) {
		return true
	}

	p.addError("expected " + TokenName(t))

	return false
}

// enter records one more level of nesting. It reports false, with the error
// set, once maxDepth is exceeded. Every call must be paired with leave.
func (p *exprParser) enter() bool {
	p.depth++
	if p.depth > maxDepth {
		p.addError("expression nested too deeply")

		return false
	}

	return p.err == nil
}

func (p *exprParser) leave() {
	p.depth--
}

func (p *exprParser) addError(msg string) {
	if p.err != nil {
		return
	}

	tok := p.peek(0)
	p.err = &ParseError{Pos: tok.Pos, Token: tok, Message: msg}
}

// ---------- Boolean levels ----------

// parseOr is the entry for every nested expression: parentheses, list and
// map items, call arguments and index keys all recurse through it.
func (p *exprParser) parseOr() Expr {
	defer p.leave()

	if !p.enter() {
		return nil
	}

	left := p.parseXor()
	for p.matchKeywords("OR") {
		left = Binary{Op: OpOr, Left: left, Right: p.parseXor()}
	}

	return left
}

func (p *exprParser) parseXor() Expr {
	left := p.parseAnd()
	for p.matchKeywords("XOR") {
		left = Binary{Op: OpXor, Left: left, Right: p.parseAnd()}
	}

	return left
}

func (p *exprParser) parseAnd() Expr {
	left := p.parseNot()
	for p.matchKeywords("AND") {
		left = Binary{Op: OpAnd, Left: left, Right: p.parseNot()}
	}

	return left
}

func (p *exprParser) parseNot() Expr {
	defer p.leave()

	if !p.enter() {
		return nil
	}

	if p.matchKeywords("NOT") {
		return Unary{Op: OpNot, Operand: p.parseNot()}
	}

	return p.parseComparison()
}

// ---------- Comparison chain ----------

func (p *exprParser) parseComparison() Expr {
	left := p.parseAdditive()

	for p.err == nil {
		if p.matchKeywords("IS") {
			op := OpIsNull
			if p.matchKeywords("NOT") {
				op = OpIsNotNull
			}

			if !p.matchKeywords("NULL") {
				p.addError("expected NULL after IS")

				return left
			}

			left = Unary{Op: op, Operand: left}

			continue
		}

		if op, ok := p.matchKeywordOp(); ok {
			left = Binary{Op: op, Left: left, Right: p.parseAdditive()}

			continue
		}

		tok := p.peek(0)
		if op, ok := symbolOps[tok.Value]; ok && tok.Type == TokenOp {
			p.advance()
			left = Binary{Op: op, Left: left, Right: p.parseAdditive()}

			continue
		}

		break
	}

	return left
}

func (p *exprParser) matchKeywordOp() (BinaryOp, bool) {
	for _, kw := range keywordOps {
		if p.matchKeywords(kw.words...) {
			return kw.op, true
		}
	}

	return "", false
}

// ---------- Arithmetic ----------

func (p *exprParser) parseAdditive() Expr {
	left := p.parseMultiplicative()

	for {
		switch {
		case p.matchOp("+"):
			left = Binary{Op: OpAdd, Left: left, Right: p.parseMultiplicative()}
		case p.matchOp("-"):
			left = Binary{Op: OpSub, Left: left, Right: p.parseMultiplicative()}
		default:
			return left
		}
	}
}

func (p *exprParser) parseMultiplicative() Expr {
	left := p.parsePower()

	for {
		switch {
		case p.matchOp("*"):
			left = Binary{Op: OpMul, Left: left, Right: p.parsePower()}
		case p.matchOp("/"):
			left = Binary{Op: OpDiv, Left: left, Right: p.parsePower()}
		case p.matchOp("%"):
			left = Binary{Op: OpMod, Left: left, Right: p.parsePower()}
		default:
			return left
		}
	}
}

// parsePower is right-associative: 2 ^ 3 ^ 2 is 2 ^ (3 ^ 2).
func (p *exprParser) parsePower() Expr {
	left := p.parseUnary()
	if p.matchOp("^") {
		return Binary{Op: OpPow, Left: left, Right: p.parsePower()}
	}

	return left
}

func (p *exprParser) parseUnary() Expr {
	defer p.leave()

	if !p.enter() {
		return nil
	}

	switch {
	case p.matchOp("+"):
		return Unary{Op: OpPos, Operand: p.parseUnary()}
	case p.matchOp("-"):
		return Unary{Op: OpNeg, Operand: p.parseUnary()}
	default:
		return p.parsePostfix()
	}
}

func (p *exprParser) parsePostfix() Expr {
	e := p.parsePrimary()

	for p.match(TokenLBracket) {
		key := p.parseOr()
		p.expect(TokenRBracket)
		e = Index{Base: e, Key: key}
	}

	return e
}

// ---------- Primary ----------

func (p *exprParser) parsePrimary() Expr {
	if p.err != nil {
		return nil
	}

	tok := p.peek(0)

	switch tok.Type {
	case TokenNumber:
		p.advance()

		return p.parseNumber(tok)

	case TokenString:
		p.advance()

		return StringLit(tok.Value)

	case TokenParam:
		p.advance()

		return Param{Name: tok.Value}

	case TokenIdent:
		p.advance()

		return p.parseIdent(tok)

	case TokenOp:
		if tok.Value == "*" {
			p.advance()

			return Star{}
		}

	case TokenLParen:
		p.advance()
		e := p.parseOr()
		p.expect(TokenRParen)

		return e

	case TokenLBracket:
		p.advance()

		return List{Items: p.parseList(TokenRBracket)}

	case TokenLBrace:
		p.advance()

		return p.parseMap()
	}

	p.addError("unexpected token in expression")

	return nil
}

func (p *exprParser) parseNumber(tok lexer.Token) Expr {
	if strings.Contains(tok.Value, ".") {
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			p.addError("invalid number literal")

			return nil
		}

		return FloatLit(f)
	}

	i, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		p.addError("invalid number literal")

		return nil
	}

	return IntLit(i)
}

func (p *exprParser) parseIdent(tok lexer.Token) Expr {
	switch strings.ToUpper(tok.Value) {
	case "NULL":
		return NullLit()
	case "TRUE":
		return BoolLit(true)
	case "FALSE":
		return BoolLit(false)
	}

	if !p.match(TokenLParen) {
		return Col{Name: tok.Value}
	}

	var args []Expr

	if p.match(TokenRParen) {
		return Func{Name: tok.Value, Args: args}
	}

	for p.err == nil {
		if p.matchKeywords("DISTINCT") {
			args = append(args, Distinct{Inner: p.parseOr()})
		} else {
			args = append(args, p.parseOr())
		}

		if p.match(TokenComma) {
			continue
		}

		p.expect(TokenRParen)

		break
	}

	return Func{Name: tok.Value, Args: args}
}

// parseList parses comma-separated expressions up to and including closer.
// The opening bracket has been consumed.
func (p *exprParser) parseList(closer lexer.TokenType) []Expr {
	var items []Expr

	if p.match(closer) {
		return items
	}

	for p.err == nil {
		items = append(items, p.parseOr())

		if p.match(TokenComma) {
			continue
		}

		p.expect(closer)

		break
	}

	return items
}

func (p *exprParser) parseMap() Expr {
	var m Map

	if p.match(TokenRBrace) {
		return m
	}

	for p.err == nil {
		key := p.peek(0)
		if key.Type != TokenIdent && key.Type != TokenString {
			p.addError("expected map key")

			break
		}

		p.advance()
		p.expect(TokenColon)
		m = m.with(key.Value, p.parseOr())

		if p.match(TokenComma) {
			continue
		}

		p.expect(TokenRBrace)

		break
	}

	return m
}

// with returns m with key set to value. A repeated key keeps the position of
// its first occurrence and takes the latest value.
func (m Map) with(key string, value Expr) Map {
	for i, e := range m.Entries {
		if e.Key == key {
			m.Entries[i].Value = value

			return m
		}
	}

	m.Entries = append(m.Entries, MapEntry{Key: key, Value: value})

	return m
}

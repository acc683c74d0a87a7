// Package gfql translates openCypher query text into GFQL query plans.
//
// Translation is best-effort: only a pragmatic subset of Cypher is
// understood. Text the translator cannot parse is carried through as Raw
// expressions or RawStep steps so that callers can detect untranslated
// fragments instead of receiving an error.
//
// # Usage
//
//	plan := gfql.BuildPlan("MATCH (n)\nRETURN n.num AS prop\nORDER BY n.num")
//	fmt.Println(plan)
//	// match(pattern="(n)", optional=false)
//	// select(items=[("prop", col(n.num))])
//	// order_by(keys=[(col(n.num), asc)])
package gfql

import "fmt"

// Expr is a node in a parsed expression tree. The set of implementations is
// closed: Col, Lit, Param, Func, Unary, Binary, List, Map, Index, Star, Raw
// and Distinct.
type Expr interface {
	exprNode()
}

// Col references a column (a variable or dotted property chain such as n.name).
type Col struct {
	Name string
}

// LitKind is the type of a literal value.
type LitKind int

// Literal kinds.
const (
	LitNull LitKind = iota
	LitInt
	LitFloat
	LitBool
	LitString
)

func (k LitKind) String() string {
	switch k {
	case LitNull:
		return "null"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	case LitString:
		return "string"
	default:
		return fmt.Sprintf("LitKind(%d)", int(k))
	}
}

// Lit is a literal value. Only the field selected by Kind is meaningful.
type Lit struct {
	Kind  LitKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// IntLit returns an integer literal.
func IntLit(v int64) Lit { return Lit{Kind: LitInt, Int: v} }

// FloatLit returns a float literal.
func FloatLit(v float64) Lit { return Lit{Kind: LitFloat, Float: v} }

// BoolLit returns a boolean literal.
func BoolLit(v bool) Lit { return Lit{Kind: LitBool, Bool: v} }

// StringLit returns a string literal.
func StringLit(v string) Lit { return Lit{Kind: LitString, Str: v} }

// NullLit returns the null literal.
func NullLit() Lit { return Lit{Kind: LitNull} }

// Value returns the literal as a Go value: int64, float64, bool, string or nil.
func (l Lit) Value() any {
	switch l.Kind {
	case LitInt:
		return l.Int
	case LitFloat:
		return l.Float
	case LitBool:
		return l.Bool
	case LitString:
		return l.Str
	case LitNull:
		return nil
	default:
		panic(fmt.Sprintf("gfql: unknown literal kind %d", int(l.Kind)))
	}
}

// Param references a query parameter ($name).
type Param struct {
	Name string
}

// Func is a function call.
type Func struct {
	Name string
	Args []Expr
}

// Unary applies a prefix or postfix operator (NOT x, -x, x IS NULL).
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary applies an infix operator.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// List is a list literal.
type List struct {
	Items []Expr
}

// MapEntry is a single key/value pair of a map literal.
type MapEntry struct {
	Key   string
	Value Expr
}

// Map is a map literal. Keys are unique.
type Map struct {
	Entries []MapEntry
}

// Index subscripts a value: base[key].
type Index struct {
	Base Expr
	Key  Expr
}

// Star is the * wildcard, as in count(*) or RETURN *.
type Star struct{}

// Raw carries expression text that could not be parsed.
type Raw struct {
	Text string
}

// Distinct marks an aggregate argument as DISTINCT, as in count(DISTINCT x).
type Distinct struct {
	Inner Expr
}

func (Col) exprNode()      {}
func (Lit) exprNode()      {}
func (Param) exprNode()    {}
func (Func) exprNode()     {}
func (Unary) exprNode()    {}
func (Binary) exprNode()   {}
func (List) exprNode()     {}
func (Map) exprNode()      {}
func (Index) exprNode()    {}
func (Star) exprNode()     {}
func (Raw) exprNode()      {}
func (Distinct) exprNode() {}

// Get returns the value stored under key.
func (m Map) Get(key string) (Expr, bool) {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Visitor is invoked by Walk for each node. If the returned visitor w is not
// nil, Walk visits the children of node with w, followed by w.Visit(nil).
type Visitor interface {
	Visit(Expr) Visitor
}

// Walk traverses an expression tree in depth-first order.
func Walk(v Visitor, e Expr) {
	w := v.Visit(e)
	if w == nil {
		return
	}

	for _, child := range children(e) {
		Walk(w, child)
	}

	w.Visit(nil)
}

type inspector func(Expr) bool

func (f inspector) Visit(e Expr) Visitor {
	if f(e) {
		return f
	}

	return nil
}

// Inspect traverses an expression tree in depth-first order, calling f for
// each node. Children are skipped when f returns false. After the children of
// a node are visited, f is called with nil.
func Inspect(e Expr, f func(Expr) bool) {
	Walk(inspector(f), e)
}

func children(e Expr) []Expr {
	switch e := e.(type) {
	case Col, Lit, Param, Star, Raw:
		return nil
	case Func:
		return e.Args
	case Unary:
		return []Expr{e.Operand}
	case Binary:
		return []Expr{e.Left, e.Right}
	case List:
		return e.Items
	case Map:
		out := make([]Expr, len(e.Entries))
		for i, entry := range e.Entries {
			out[i] = entry.Value
		}

		return out
	case Index:
		return []Expr{e.Base, e.Key}
	case Distinct:
		return []Expr{e.Inner}
	default:
		panic(fmt.Sprintf("gfql: unhandled expression %T", e))
	}
}

// ContainsRaw reports whether any node of e is a Raw expression.
func ContainsRaw(e Expr) bool {
	found := false

	Inspect(e, func(n Expr) bool {
		if _, ok := n.(Raw); ok {
			found = true
		}

		return !found
	})

	return found
}

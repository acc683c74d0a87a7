package gfql

import (
	"fmt"
	"slices"
	"strconv"
)

// Step is a single operation of a Plan. The set of implementations is closed:
// MatchStep, WhereStep, UnwindStep, WithStep, SelectStep, DistinctStep,
// OrderByStep, SkipStep, LimitStep, ClauseStep, RawStep and InvalidStep.
type Step interface {
	// Op returns the step's operation name, e.g. "select".
	Op() string
	stepNode()
}

// Plan is the ordered sequence of steps translated from one query.
// Plans are values: nothing in this package modifies a Plan after returning it.
type Plan []Step

// Projection is one aliased item of a WITH or RETURN clause.
type Projection struct {
	Alias string
	Expr  Expr
}

// SortKey is one ORDER BY item.
type SortKey struct {
	Expr      Expr
	Direction Direction
}

// AmountKind classifies a SKIP or LIMIT argument.
type AmountKind int

// Amount kinds.
const (
	AmountInt AmountKind = iota
	AmountFloat
	AmountExpr
)

// Amount is a SKIP or LIMIT argument: an integer, a float, or expression text
// kept verbatim (parameters and non-constant expressions).
type Amount struct {
	Kind  AmountKind
	Int   int64
	Float float64
	Text  string
}

// IntAmount returns an integer amount.
func IntAmount(v int64) Amount { return Amount{Kind: AmountInt, Int: v} }

// FloatAmount returns a float amount.
func FloatAmount(v float64) Amount { return Amount{Kind: AmountFloat, Float: v} }

// ExprAmount returns an amount kept as expression text.
func ExprAmount(text string) Amount { return Amount{Kind: AmountExpr, Text: text} }

// Value returns the amount as int64, float64 or string.
func (a Amount) Value() any {
	switch a.Kind {
	case AmountInt:
		return a.Int
	case AmountFloat:
		return a.Float
	case AmountExpr:
		return a.Text
	default:
		panic(fmt.Sprintf("gfql: unknown amount kind %d", int(a.Kind)))
	}
}

func (a Amount) String() string {
	switch a.Kind {
	case AmountInt:
		return strconv.FormatInt(a.Int, 10)
	case AmountFloat:
		return formatFloat(a.Float)
	default:
		return strconv.Quote(a.Text)
	}
}

// MatchStep carries a MATCH pattern verbatim.
type MatchStep struct {
	Pattern  string
	Optional bool
}

// WhereStep filters rows by a condition.
type WhereStep struct {
	Expr Expr
}

// UnwindStep expands a list into rows. Alias is empty when the clause had no AS.
type UnwindStep struct {
	Expr  Expr
	Alias string
}

// WithStep projects intermediate rows.
type WithStep struct {
	Items []Projection
}

// SelectStep projects the result rows of a RETURN.
type SelectStep struct {
	Items []Projection
}

// DistinctStep removes duplicate rows produced by the preceding projection.
type DistinctStep struct{}

// OrderByStep sorts rows.
type OrderByStep struct {
	Keys []SortKey
}

// SkipStep skips leading rows.
type SkipStep struct {
	Value Amount
}

// LimitStep caps the number of rows.
type LimitStep struct {
	Value Amount
}

// ClauseStep passes through a clause whose body is not parsed
// (CREATE, MERGE, DELETE, SET, REMOVE, CALL). Name is the lower-cased keyword.
type ClauseStep struct {
	Name string
	Body string
}

// RawStep carries query text in which no clause was recognized.
type RawStep struct {
	Text string
}

// InvalidStep is an inert marker for a query that is known to be invalid
// but is not rejected by translation.
type InvalidStep struct {
	Reason string
}

func (MatchStep) Op() string    { return StepMatch }
func (WhereStep) Op() string    { return StepWhere }
func (UnwindStep) Op() string   { return StepUnwind }
func (WithStep) Op() string     { return StepWith }
func (SelectStep) Op() string   { return StepSelect }
func (DistinctStep) Op() string { return StepDistinct }
func (OrderByStep) Op() string  { return StepOrderBy }
func (SkipStep) Op() string     { return StepSkip }
func (LimitStep) Op() string    { return StepLimit }
func (s ClauseStep) Op() string { return s.Name }
func (RawStep) Op() string      { return StepRaw }
func (InvalidStep) Op() string  { return StepInvalid }

func (MatchStep) stepNode()    {}
func (WhereStep) stepNode()    {}
func (UnwindStep) stepNode()   {}
func (WithStep) stepNode()     {}
func (SelectStep) stepNode()   {}
func (DistinctStep) stepNode() {}
func (OrderByStep) stepNode()  {}
func (SkipStep) stepNode()     {}
func (LimitStep) stepNode()    {}
func (ClauseStep) stepNode()   {}
func (RawStep) stepNode()      {}
func (InvalidStep) stepNode()  {}

// Ops returns the op name of every step, in order.
func (p Plan) Ops() []string {
	ops := make([]string, len(p))
	for i, s := range p {
		ops[i] = s.Op()
	}

	return ops
}

// Exprs returns the expressions carried by a step, in field order.
func Exprs(s Step) []Expr {
	switch s := s.(type) {
	case MatchStep, DistinctStep, SkipStep, LimitStep, ClauseStep, RawStep, InvalidStep:
		return nil
	case WhereStep:
		return []Expr{s.Expr}
	case UnwindStep:
		return []Expr{s.Expr}
	case WithStep:
		return projectionExprs(s.Items)
	case SelectStep:
		return projectionExprs(s.Items)
	case OrderByStep:
		out := make([]Expr, len(s.Keys))
		for i, k := range s.Keys {
			out[i] = k.Expr
		}

		return out
	default:
		panic(fmt.Sprintf("gfql: unhandled step %T", s))
	}
}

func projectionExprs(items []Projection) []Expr {
	out := make([]Expr, len(items))
	for i, item := range items {
		out[i] = item.Expr
	}

	return out
}

// HasRaw reports whether the plan contains untranslated text: a RawStep or a
// Raw expression anywhere in a step.
func (p Plan) HasRaw() bool {
	for _, s := range p {
		if _, ok := s.(RawStep); ok {
			return true
		}

		for _, e := range Exprs(s) {
			if ContainsRaw(e) {
				return true
			}
		}
	}

	return false
}

// IsPlaceholder reports whether the plan carries no translation at all: it is
// empty or consists of a single RawStep.
func (p Plan) IsPlaceholder() bool {
	if len(p) == 0 {
		return true
	}

	_, raw := p[0].(RawStep)

	return len(p) == 1 && raw
}

// Params returns the distinct parameter names referenced by the plan's
// expressions, in order of first use.
func (p Plan) Params() []string {
	var names []string

	for _, s := range p {
		for _, e := range Exprs(s) {
			Inspect(e, func(n Expr) bool {
				if param, ok := n.(Param); ok && !slices.Contains(names, param.Name) {
					names = append(names, param.Name)
				}

				return true
			})
		}
	}

	return names
}

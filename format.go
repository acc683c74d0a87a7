package gfql

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatExpr renders an expression in constructor notation, e.g.
// binary(add, lit(1), binary(mul, lit(2), lit(3))).
func FormatExpr(e Expr) string {
	var b strings.Builder

	f := &formatter{b: &b}
	f.formatExpr(e)

	return b.String()
}

// FormatStep renders a single step, e.g. order_by(keys=[(col(n.num), asc)]).
func FormatStep(s Step) string {
	var b strings.Builder

	f := &formatter{b: &b}
	f.formatStep(s)

	return b.String()
}

// FormatPlan renders a plan one step per line, with a trailing newline.
func FormatPlan(p Plan) string {
	var b strings.Builder

	f := &formatter{b: &b}
	for _, s := range p {
		f.formatStep(s)
		f.write("\n")
	}

	return b.String()
}

func (p Plan) String() string {
	return strings.TrimSuffix(FormatPlan(p), "\n")
}

type formatter struct {
	b *strings.Builder
}

func (f *formatter) write(s string) {
	f.b.WriteString(s)
}

// call writes name(args...) where each arg is written by its own callback.
func (f *formatter) call(name string, args ...func()) {
	f.write(name)
	f.write("(")

	for i, arg := range args {
		if i > 0 {
			f.write(", ")
		}

		arg()
	}

	f.write(")")
}

func (f *formatter) text(s string) func() {
	return func() { f.write(s) }
}

func (f *formatter) expr(e Expr) func() {
	return func() { f.formatExpr(e) }
}

func (f *formatter) field(name string, value func()) func() {
	return func() {
		f.write(name)
		f.write("=")
		value()
	}
}

func (f *formatter) formatExpr(e Expr) {
	switch e := e.(type) {
	case Col:
		f.call("col", f.text(e.Name))
	case Lit:
		f.call("lit", f.text(formatLit(e)))
	case Param:
		f.call("param", f.text(e.Name))
	case Func:
		args := []func(){f.text(e.Name)}
		for _, arg := range e.Args {
			args = append(args, f.expr(arg))
		}

		f.call("func", args...)
	case Unary:
		f.call("unary", f.text(string(e.Op)), f.expr(e.Operand))
	case Binary:
		f.call("binary", f.text(string(e.Op)), f.expr(e.Left), f.expr(e.Right))
	case List:
		args := make([]func(), len(e.Items))
		for i, item := range e.Items {
			args[i] = f.expr(item)
		}

		f.call("list", args...)
	case Map:
		args := make([]func(), len(e.Entries))
		for i, entry := range e.Entries {
			args[i] = func() {
				f.write(strconv.Quote(entry.Key))
				f.write(": ")
				f.formatExpr(entry.Value)
			}
		}

		f.call("map", args...)
	case Index:
		f.call("index", f.expr(e.Base), f.expr(e.Key))
	case Star:
		f.call("star")
	case Raw:
		f.call("raw", f.text(strconv.Quote(e.Text)))
	case Distinct:
		f.call("distinct", f.expr(e.Inner))
	default:
		panic(fmt.Sprintf("gfql: unhandled expression %T", e))
	}
}

func (f *formatter) formatStep(s Step) {
	switch s := s.(type) {
	case MatchStep:
		f.call(s.Op(),
			f.field("pattern", f.text(strconv.Quote(s.Pattern))),
			f.field("optional", f.text(strconv.FormatBool(s.Optional))),
		)
	case WhereStep:
		f.call(s.Op(), f.field("expr", f.expr(s.Expr)))
	case UnwindStep:
		args := []func(){f.field("expr", f.expr(s.Expr))}
		if s.Alias != "" {
			args = append(args, f.field("alias", f.text(strconv.Quote(s.Alias))))
		}

		f.call(s.Op(), args...)
	case WithStep:
		f.call(s.Op(), f.field("items", func() { f.formatProjections(s.Items) }))
	case SelectStep:
		f.call(s.Op(), f.field("items", func() { f.formatProjections(s.Items) }))
	case DistinctStep:
		f.call(s.Op())
	case OrderByStep:
		f.call(s.Op(), f.field("keys", func() { f.formatSortKeys(s.Keys) }))
	case SkipStep:
		f.call(s.Op(), f.field("value", f.text(s.Value.String())))
	case LimitStep:
		f.call(s.Op(), f.field("value", f.text(s.Value.String())))
	case ClauseStep:
		f.call(s.Op(), f.field("expr", f.text(strconv.Quote(s.Body))))
	case RawStep:
		f.call(s.Op(), f.field("text", f.text(strconv.Quote(s.Text))))
	case InvalidStep:
		f.call(s.Op(), f.field("reason", f.text(strconv.Quote(s.Reason))))
	default:
		panic(fmt.Sprintf("gfql: unhandled step %T", s))
	}
}

func (f *formatter) formatProjections(items []Projection) {
	f.write("[")

	for i, item := range items {
		if i > 0 {
			f.write(", ")
		}

		f.write("(")
		f.write(strconv.Quote(item.Alias))
		f.write(", ")
		f.formatExpr(item.Expr)
		f.write(")")
	}

	f.write("]")
}

func (f *formatter) formatSortKeys(keys []SortKey) {
	f.write("[")

	for i, k := range keys {
		if i > 0 {
			f.write(", ")
		}

		f.write("(")
		f.formatExpr(k.Expr)
		f.write(", ")
		f.write(string(k.Direction))
		f.write(")")
	}

	f.write("]")
}

func formatLit(l Lit) string {
	switch l.Kind {
	case LitNull:
		return "null"
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return formatFloat(l.Float)
	case LitBool:
		return strconv.FormatBool(l.Bool)
	case LitString:
		return strconv.Quote(l.Str)
	default:
		panic(fmt.Sprintf("gfql: unknown literal kind %d", int(l.Kind)))
	}
}

// formatFloat renders a float so that it always reads as one: 2 becomes 2.0.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsAny(s, ".e") {
		return s
	}

	return s + ".0"
}

package gfql

import "fmt"

// EncodeExpr converts an expression into nested maps keyed by "op", suitable
// for JSON or YAML output:
//
//	{"op": "binary", "operator": "add", "left": {...}, "right": {...}}
func EncodeExpr(e Expr) map[string]any {
	switch e := e.(type) {
	case Col:
		return map[string]any{"op": "col", "name": e.Name}
	case Lit:
		return map[string]any{"op": "lit", "kind": e.Kind.String(), "value": e.Value()}
	case Param:
		return map[string]any{"op": "param", "name": e.Name}
	case Func:
		return map[string]any{"op": "func", "name": e.Name, "args": encodeExprs(e.Args)}
	case Unary:
		return map[string]any{"op": "unary", "operator": string(e.Op), "operand": EncodeExpr(e.Operand)}
	case Binary:
		return map[string]any{
			"op":       "binary",
			"operator": string(e.Op),
			"left":     EncodeExpr(e.Left),
			"right":    EncodeExpr(e.Right),
		}
	case List:
		return map[string]any{"op": "list", "items": encodeExprs(e.Items)}
	case Map:
		entries := make([]any, len(e.Entries))
		for i, entry := range e.Entries {
			entries[i] = map[string]any{"key": entry.Key, "value": EncodeExpr(entry.Value)}
		}

		return map[string]any{"op": "map", "entries": entries}
	case Index:
		return map[string]any{"op": "index", "base": EncodeExpr(e.Base), "key": EncodeExpr(e.Key)}
	case Star:
		return map[string]any{"op": "star"}
	case Raw:
		return map[string]any{"op": "raw", "text": e.Text}
	case Distinct:
		return map[string]any{"op": "distinct", "inner": EncodeExpr(e.Inner)}
	default:
		panic(fmt.Sprintf("gfql: unhandled expression %T", e))
	}
}

func encodeExprs(exprs []Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = EncodeExpr(e)
	}

	return out
}

// EncodeStep converts a step into a map keyed by "op" plus its named arguments.
func EncodeStep(s Step) map[string]any {
	m := map[string]any{"op": s.Op()}

	switch s := s.(type) {
	case MatchStep:
		m["pattern"] = s.Pattern
		m["optional"] = s.Optional
	case WhereStep:
		m["expr"] = EncodeExpr(s.Expr)
	case UnwindStep:
		m["expr"] = EncodeExpr(s.Expr)
		if s.Alias != "" {
			m["alias"] = s.Alias
		}
	case WithStep:
		m["items"] = encodeProjections(s.Items)
	case SelectStep:
		m["items"] = encodeProjections(s.Items)
	case DistinctStep:
	case OrderByStep:
		keys := make([]any, len(s.Keys))
		for i, k := range s.Keys {
			keys[i] = map[string]any{"expr": EncodeExpr(k.Expr), "direction": string(k.Direction)}
		}

		m["keys"] = keys
	case SkipStep:
		m["value"] = s.Value.Value()
	case LimitStep:
		m["value"] = s.Value.Value()
	case ClauseStep:
		m["expr"] = s.Body
	case RawStep:
		m["text"] = s.Text
	case InvalidStep:
		m["reason"] = s.Reason
	default:
		panic(fmt.Sprintf("gfql: unhandled step %T", s))
	}

	return m
}

func encodeProjections(items []Projection) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = map[string]any{"alias": item.Alias, "expr": EncodeExpr(item.Expr)}
	}

	return out
}

// EncodePlan encodes every step of a plan with EncodeStep.
func EncodePlan(p Plan) []any {
	out := make([]any, len(p))
	for i, s := range p {
		out[i] = EncodeStep(s)
	}

	return out
}

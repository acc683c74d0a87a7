package gfql

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

var (
	intAmount   = regexp.MustCompile(`^-?\d+$`)
	floatAmount = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// Translator turns query text into plans. The zero value is not usable; use
// NewTranslator. A Translator holds no per-query state and may be shared
// between goroutines.
type Translator struct {
	logger *zap.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used to report expressions that fall back to Raw.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator creates a Translator.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

var defaultTranslator = NewTranslator()

// BuildPlan translates a query with a Translator that does not log.
func BuildPlan(query string) Plan {
	return defaultTranslator.BuildPlan(query)
}

// BuildPlan translates a query into a plan. It never fails: untranslatable
// expressions become Raw nodes, and a query without any clause keyword
// becomes a single RawStep.
func (t *Translator) BuildPlan(query string) Plan {
	clauses := SplitClauses(query)
	if len(clauses) == 0 {
		return Plan{RawStep{Text: query}}
	}

	var plan Plan
	for _, c := range clauses {
		plan = append(plan, t.clauseSteps(c)...)
	}

	t.logger.Debug("translated query",
		zap.Int("clauses", len(clauses)),
		zap.Strings("ops", plan.Ops()),
		zap.Bool("raw", plan.HasRaw()),
	)

	return plan
}

func (t *Translator) clauseSteps(c Clause) []Step {
	switch c.Kind {
	case ClauseMatch, ClauseOptionalMatch:
		return []Step{MatchStep{Pattern: c.Body, Optional: c.Kind == ClauseOptionalMatch}}

	case ClauseWhere:
		return []Step{WhereStep{Expr: t.expr(c.Body)}}

	case ClauseUnwind:
		src, alias, ok := splitAlias(c.Body)
		if !ok {
			src = c.Body
		}

		return []Step{UnwindStep{Expr: t.expr(src), Alias: alias}}

	case ClauseWith, ClauseReturn:
		distinct, body := stripDistinct(c.Body)
		items := t.projections(body)

		var step Step = SelectStep{Items: items}
		if c.Kind == ClauseWith {
			step = WithStep{Items: items}
		}

		if distinct {
			return []Step{step, DistinctStep{}}
		}

		return []Step{step}

	case ClauseOrderBy:
		return []Step{OrderByStep{Keys: t.sortKeys(c.Body)}}

	case ClauseSkip:
		return []Step{SkipStep{Value: parseAmount(c.Body)}}

	case ClauseLimit:
		return []Step{LimitStep{Value: parseAmount(c.Body)}}

	case ClauseRaw:
		return []Step{RawStep{Text: c.Body}}

	default:
		return []Step{ClauseStep{Name: strings.ToLower(string(c.Kind)), Body: c.Body}}
	}
}

// expr parses one expression, logging the reason when it falls back to Raw.
func (t *Translator) expr(text string) Expr {
	e, err := Parse(Tokenize(text))
	if err != nil {
		t.logger.Debug("expression not translated", zap.String("expr", text), zap.Error(err))

		return Raw{Text: text}
	}

	return e
}

func (t *Translator) projections(body string) []Projection {
	items := SplitItems(body)
	out := make([]Projection, 0, len(items))

	for _, item := range items {
		text, alias, ok := splitAlias(item)
		if !ok {
			alias = text
		}

		out = append(out, Projection{Alias: alias, Expr: t.expr(text)})
	}

	return out
}

func (t *Translator) sortKeys(body string) []SortKey {
	items := SplitItems(body)
	out := make([]SortKey, 0, len(items))

	for _, item := range items {
		text, dir := sortDirection(item)
		out = append(out, SortKey{Expr: t.expr(text), Direction: dir})
	}

	return out
}

// sortDirection strips a trailing ASC/DESC (or ASCENDING/DESCENDING) word.
func sortDirection(item string) (string, Direction) {
	i := strings.LastIndexFunc(item, unicode.IsSpace)
	if i < 0 {
		return item, Asc
	}

	switch strings.ToUpper(item[i+1:]) {
	case "ASC", "ASCENDING":
		return strings.TrimSpace(item[:i]), Asc
	case "DESC", "DESCENDING":
		return strings.TrimSpace(item[:i]), Desc
	default:
		return item, Asc
	}
}

// stripDistinct removes a leading DISTINCT keyword.
func stripDistinct(body string) (bool, string) {
	const kw = "DISTINCT"

	if len(body) < len(kw) || !strings.EqualFold(body[:len(kw)], kw) {
		return false, body
	}

	rest := body[len(kw):]
	if rest != "" && !isSpaceByte(rest[0]) {
		return false, body
	}

	return true, strings.TrimSpace(rest)
}

// parseAmount coerces a SKIP or LIMIT argument. Integer and decimal literals
// become numbers; anything else, including an integer that overflows int64,
// is kept as text.
func parseAmount(body string) Amount {
	switch {
	case intAmount.MatchString(body):
		if v, err := strconv.ParseInt(body, 10, 64); err == nil {
			return IntAmount(v)
		}
	case floatAmount.MatchString(body):
		if v, err := strconv.ParseFloat(body, 64); err == nil {
			return FloatAmount(v)
		}
	}

	return ExprAmount(body)
}

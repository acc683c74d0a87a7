package gfql

// BinaryOp names a binary operator in an expression tree.
type BinaryOp string

// Binary operators.
const (
	OpOr            BinaryOp = "or"
	OpXor           BinaryOp = "xor"
	OpAnd           BinaryOp = "and"
	OpIn            BinaryOp = "in"
	OpNotIn         BinaryOp = "not_in"
	OpContains      BinaryOp = "contains"
	OpNotContains   BinaryOp = "not_contains"
	OpStartsWith    BinaryOp = "starts_with"
	OpNotStartsWith BinaryOp = "not_starts_with"
	OpEndsWith      BinaryOp = "ends_with"
	OpNotEndsWith   BinaryOp = "not_ends_with"
	OpEq            BinaryOp = "eq"
	OpNeq           BinaryOp = "neq"
	OpLt            BinaryOp = "lt"
	OpLte           BinaryOp = "lte"
	OpGt            BinaryOp = "gt"
	OpGte           BinaryOp = "gte"
	OpRegex         BinaryOp = "regex"
	OpAdd           BinaryOp = "add"
	OpSub           BinaryOp = "sub"
	OpMul           BinaryOp = "mul"
	OpDiv           BinaryOp = "div"
	OpMod           BinaryOp = "mod"
	OpPow           BinaryOp = "pow"
)

// UnaryOp names a unary operator in an expression tree.
type UnaryOp string

// Unary operators.
const (
	OpNot       UnaryOp = "not"
	OpIsNull    UnaryOp = "is_null"
	OpIsNotNull UnaryOp = "is_not_null"
	OpPos       UnaryOp = "pos"
	OpNeg       UnaryOp = "neg"
)

// symbolOps maps comparison symbols to their operator.
var symbolOps = map[string]BinaryOp{
	"=":  OpEq,
	"<>": OpNeq,
	"!=": OpNeq,
	"<=": OpLte,
	">=": OpGte,
	"<":  OpLt,
	">":  OpGt,
	"=~": OpRegex,
}

// keywordOps lists the keyword comparison operators, longest first so that
// NOT STARTS WITH is tried before STARTS WITH.
var keywordOps = []struct {
	words []string
	op    BinaryOp
}{
	{[]string{"NOT", "STARTS", "WITH"}, OpNotStartsWith},
	{[]string{"NOT", "ENDS", "WITH"}, OpNotEndsWith},
	{[]string{"NOT", "IN"}, OpNotIn},
	{[]string{"NOT", "CONTAINS"}, OpNotContains},
	{[]string{"STARTS", "WITH"}, OpStartsWith},
	{[]string{"ENDS", "WITH"}, OpEndsWith},
	{[]string{"IN"}, OpIn},
	{[]string{"CONTAINS"}, OpContains},
}

// ClauseKind identifies a top-level query clause by its keyword.
type ClauseKind string

// Clause kinds.
const (
	ClauseOptionalMatch ClauseKind = "OPTIONAL MATCH"
	ClauseOrderBy       ClauseKind = "ORDER BY"
	ClauseMatch         ClauseKind = "MATCH"
	ClauseWhere         ClauseKind = "WHERE"
	ClauseWith          ClauseKind = "WITH"
	ClauseReturn        ClauseKind = "RETURN"
	ClauseUnwind        ClauseKind = "UNWIND"
	ClauseSkip          ClauseKind = "SKIP"
	ClauseLimit         ClauseKind = "LIMIT"
	ClauseCreate        ClauseKind = "CREATE"
	ClauseMerge         ClauseKind = "MERGE"
	ClauseDelete        ClauseKind = "DELETE"
	ClauseSet           ClauseKind = "SET"
	ClauseRemove        ClauseKind = "REMOVE"
	ClauseCall          ClauseKind = "CALL"

	// ClauseRaw holds a query in which no clause keyword was found.
	ClauseRaw ClauseKind = "RAW"
)

// Direction is a sort direction in ORDER BY.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Step op names.
const (
	StepMatch    = "match"
	StepWhere    = "where"
	StepUnwind   = "unwind"
	StepWith     = "with"
	StepSelect   = "select"
	StepDistinct = "distinct"
	StepOrderBy  = "order_by"
	StepSkip     = "skip"
	StepLimit    = "limit"
	StepRaw      = "raw"
	StepInvalid  = "invalid"
)

package gfql

import (
	"regexp"
	"strings"
)

// Clause is one top-level section of a query: its keyword and the text that
// follows it up to the next clause keyword.
type Clause struct {
	Kind ClauseKind
	Body string
}

// clauseKeyword matches a clause keyword at the start of a line. Leading
// indentation is allowed. OPTIONAL MATCH and ORDER BY come before MATCH so
// the longer keyword wins.
var clauseKeyword = regexp.MustCompile(
	`(?im)^[ \t]*(OPTIONAL\s+MATCH|ORDER\s+BY|MATCH|WHERE|WITH|RETURN|UNWIND|SKIP|LIMIT|CREATE|MERGE|DELETE|SET|REMOVE|CALL)\b`,
)

// SplitClauses partitions query text into clauses in source order.
//
// A query in which no keyword starts a line becomes a single ClauseRaw clause
// holding the trimmed text. Empty or blank input yields no clauses. Text
// before the first keyword is dropped.
func SplitClauses(query string) []Clause {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	matches := clauseKeyword.FindAllStringSubmatchIndex(query, -1)
	if len(matches) == 0 {
		return []Clause{{Kind: ClauseRaw, Body: strings.TrimSpace(query)}}
	}

	clauses := make([]Clause, 0, len(matches))

	for i, m := range matches {
		end := len(query)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		clauses = append(clauses, Clause{
			Kind: clauseKind(query[m[2]:m[3]]),
			Body: strings.TrimSpace(query[m[1]:end]),
		})
	}

	return clauses
}

// clauseKind normalizes a matched keyword: upper case, single spaces.
func clauseKind(keyword string) ClauseKind {
	return ClauseKind(strings.Join(strings.Fields(strings.ToUpper(keyword)), " "))
}

package gfql

import "strings"

// nesting tracks bracket depth and quoting while scanning clause text byte by
// byte.
type nesting struct {
	depth   int
	quote   byte
	escaped bool
}

// step consumes c and reports whether c sits at depth zero outside any quote.
// Brackets and quote characters themselves are never top level.
func (n *nesting) step(c byte) bool {
	if n.quote != 0 {
		switch {
		case n.escaped:
			n.escaped = false
		case c == '\\' && n.quote != '`':
			n.escaped = true
		case c == n.quote:
			n.quote = 0
		}

		return false
	}

	switch c {
	case '\'', '"', '`':
		n.quote = c

		return false
	case '(', '[', '{':
		n.depth++

		return false
	case ')', ']', '}':
		if n.depth > 0 {
			n.depth--
		}

		return false
	}

	return n.depth == 0
}

// SplitItems splits a comma-separated list on commas that are not nested in
// brackets or quoted. Items are trimmed; empty items are dropped.
func SplitItems(text string) []string {
	var (
		items []string
		n     nesting
		start int
	)

	emit := func(item string) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	for i := range len(text) {
		if n.step(text[i]) && text[i] == ',' {
			emit(text[start:i])
			start = i + 1
		}
	}

	emit(text[start:])

	return items
}

// splitAlias splits an item on its first top-level AS keyword, matched
// case-insensitively and surrounded by whitespace. Both halves are trimmed.
func splitAlias(item string) (expr, alias string, ok bool) {
	var n nesting

	for i := range len(item) {
		top := n.step(item[i])
		if !top || i == 0 || i+2 >= len(item) {
			continue
		}

		if isSpaceByte(item[i-1]) && strings.EqualFold(item[i:i+2], "AS") && isSpaceByte(item[i+2]) {
			return strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+2:]), true
		}
	}

	return item, "", false
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

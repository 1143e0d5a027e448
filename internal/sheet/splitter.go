// Package sheet parses published-CSV spreadsheet exports into canonical
// orders: line splitting, heuristic header mapping and locale-tolerant
// field normalization.
package sheet

import "strings"

// delimiter separates fields on a data line.
const delimiter = ','

// SplitLine splits one raw CSV line into its ordered field values.
//
// A double quote toggles quoted state; inside a quoted field the delimiter
// is literal text. Embedded-quote escaping is not supported. Each field is
// trimmed, stripped of one matching pair of enclosing quotes, and trimmed
// again.
func SplitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == delimiter && !inQuotes:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(current.String()))

	return fields
}

// cleanField trims a raw field and removes one pair of enclosing quotes.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

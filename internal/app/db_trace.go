package app

import (
	"regexp"
	"strings"
)

// Span attributes have to stay readable in the trace UI, so queries are
// collapsed to single-line form and capped.
const maxTracedQueryLen = 512

var querySpaceRe = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := querySpaceRe.ReplaceAllString(query, " ")
	if len(flat) > maxTracedQueryLen {
		flat = flat[:maxTracedQueryLen] + "..."
	}
	return flat
}

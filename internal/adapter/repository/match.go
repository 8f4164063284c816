package repository

import (
	"strings"

	"lumera/internal/domain/entity"
)

// matchesSearch reports whether the query appears in the product name or
// description. Matching is plain case-insensitive substring search, so
// user input is never interpreted as a pattern.
func matchesSearch(p *entity.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// nameTokens splits a product name on whitespace and keeps the tokens
// longer than one character, lowered.
func nameTokens(name string) []string {
	var tokens []string
	for _, tok := range strings.Fields(name) {
		if len(tok) > 1 {
			tokens = append(tokens, strings.ToLower(tok))
		}
	}
	return tokens
}

// isRelated reports whether candidate belongs in source's related list:
// same category, or the candidate name contains any token of the source
// name (case-insensitive).
func isRelated(source, candidate *entity.Product) bool {
	if candidate.Category == source.Category {
		return true
	}
	name := strings.ToLower(candidate.Name)
	for _, tok := range nameTokens(source.Name) {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}

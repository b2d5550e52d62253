// Package match scores recipes against the set of ingredients on hand.
package match

import "strings"

// NormalizeName canonicalizes an ingredient name for set comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseIngredients splits a comma-delimited ingredient string into
// normalized tokens. Empty tokens are dropped and duplicates collapse, so
// the result behaves as a set. A blank input yields an empty slice, never
// an error.
func ParseIngredients(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	tokens := make([]string, 0, len(parts))

	for _, p := range parts {
		tok := NormalizeName(p)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}

	return tokens
}

// toSet normalizes a list of names into a membership set.
func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if tok := NormalizeName(n); tok != "" {
			set[tok] = true
		}
	}
	return set
}

package query

import "github.com/sahilm/fuzzy"

// MaxSuggestions caps the "did you mean" hint
const MaxSuggestions = 3

// Suggest returns up to limit contexts that fuzzy-match term, best first
func Suggest(term string, contexts []string, limit int) []string {
	matches := fuzzy.Find(term, contexts)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]string, len(matches))
	for i, match := range matches {
		suggestions[i] = match.Str
	}
	return suggestions
}

package inbox

import "strings"

// Stop words ignored when matching message text
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// tokenize splits text into lowercased words without surrounding
// punctuation, dropping stop words.
func tokenize(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// matchesAll reports whether every query word appears in text.
// A query made only of stop words matches nothing.
func matchesAll(text string, queryWords []string) bool {
	if len(queryWords) == 0 {
		return false
	}

	words := tokenize(text)
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}

	for _, q := range queryWords {
		if !set[q] {
			return false
		}
	}
	return true
}

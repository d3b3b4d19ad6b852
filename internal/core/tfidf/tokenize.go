package tfidf

import "strings"

// Tokenize splits normalized text into its ordered, non-empty
// whitespace-delimited tokens. Empty input yields a nil slice.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

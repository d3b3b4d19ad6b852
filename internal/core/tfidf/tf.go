package tfidf

import "github.com/baditaflorin/go_document_similarity/internal/core/domain"

// ComputeTF converts an ordered token slice into a relative-frequency
// map: term -> count/total. Values sum to 1 for non-empty input; an
// empty slice yields an empty map rather than a division by zero.
func ComputeTF(tokens []string) domain.TermFrequency {
	tf := make(domain.TermFrequency, len(tokens))
	if len(tokens) == 0 {
		return tf
	}

	for _, token := range tokens {
		tf[token]++
	}
	total := float64(len(tokens))
	for term, count := range tf {
		tf[term] = count / total
	}
	return tf
}

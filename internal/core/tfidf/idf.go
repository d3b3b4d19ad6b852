package tfidf

import (
	"math"
	"sort"

	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
)

// ComputeIDF aggregates per-member term frequency maps into smoothed
// inverse document frequency weights over the whole corpus:
//
//	idf(term) = ln((N + 1) / (df + 1)) + 1
//
// where N is the corpus size and df counts the members containing the
// term (presence only, magnitude ignored). The smoothing keeps every
// weight strictly positive, including for terms present in every member.
// An empty corpus yields an empty map.
//
// This is the single synchronization point of both pipelines: it must
// observe every member's TF map and the result is shared read-only by
// all vectorization work that follows.
func ComputeIDF(tfs []domain.TermFrequency) domain.InverseDocumentFrequency {
	idf := make(domain.InverseDocumentFrequency)
	if len(tfs) == 0 {
		return idf
	}

	df := make(map[string]int)
	for _, tf := range tfs {
		for term := range tf {
			df[term]++
		}
	}

	n := float64(len(tfs))
	for term, count := range df {
		idf[term] = math.Log((n+1.0)/(float64(count)+1.0)) + 1.0
	}
	return idf
}

// Vocabulary returns the sorted distinct terms of an IDF map. The sort
// fixes the dimension ordering of every dense vector built against it.
func Vocabulary(idf domain.InverseDocumentFrequency) []string {
	terms := make([]string, 0, len(idf))
	for term := range idf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

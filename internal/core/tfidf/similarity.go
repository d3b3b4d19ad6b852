package tfidf

import (
	"math"
	"sort"

	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
)

// CosineDense computes the cosine similarity dot(A,B)/(||A||*||B||) of
// two equal-length dense vectors. Mismatched lengths, empty vectors and
// zero magnitudes all yield a defined 0.0 instead of an error or NaN.
// Since tf-idf weights are non-negative the result lies in [0,1].
func CosineDense(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0.0 || magB == 0.0 {
		return 0.0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// CosineSparse computes cosine similarity over two sparse vectors. The
// dot product runs over the key intersection; each magnitude runs over
// that side's own full value set. Zero magnitude on either side yields
// 0.0.
//
// All three sums iterate keys in sorted order so the floating-point
// accumulation order is fixed, which makes repeated runs bit-identical
// regardless of Go's randomized map iteration.
func CosineSparse(a, b domain.SparseVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	var dot float64
	for _, term := range sortedTerms(a) {
		if wb, ok := b[term]; ok {
			dot += a[term] * wb
		}
	}

	magA := sparseMagnitude(a)
	magB := sparseMagnitude(b)
	if magA == 0.0 || magB == 0.0 {
		return 0.0
	}
	return dot / (magA * magB)
}

func sparseMagnitude(v domain.SparseVector) float64 {
	var sum float64
	for _, term := range sortedTerms(v) {
		w := v[term]
		sum += w * w
	}
	return math.Sqrt(sum)
}

func sortedTerms(v domain.SparseVector) []string {
	terms := make([]string, 0, len(v))
	for term := range v {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

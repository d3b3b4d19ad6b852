package tfidf

import "github.com/baditaflorin/go_document_similarity/internal/core/domain"

// VectorizeDense builds a fixed-length tf-idf vector where position i is
// tf(vocabulary[i]) * idf(vocabulary[i]). Terms absent from either map
// contribute 0.0. The vector length always equals the vocabulary length,
// so vectors built against the same vocabulary are directly comparable.
func VectorizeDense(tf domain.TermFrequency, idf domain.InverseDocumentFrequency, vocabulary []string) []float64 {
	vector := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		vector[i] = tf[term] * idf[term]
	}
	return vector
}

// VectorizeSparse builds a term -> tf*idf map restricted to the terms the
// TF map itself contains. Absent terms are simply missing, which the
// sparse cosine treats as weight 0.
func VectorizeSparse(tf domain.TermFrequency, idf domain.InverseDocumentFrequency) domain.SparseVector {
	vector := make(domain.SparseVector, len(tf))
	for term, freq := range tf {
		vector[term] = freq * idf[term]
	}
	return vector
}

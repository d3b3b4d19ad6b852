// Package domain holds the immutable data structures shared by the
// document-level and sentence-level analysis pipelines. Everything here
// is derived from one analysis request and never mutated after it is
// produced.
package domain

// TermFrequency maps a token to its relative frequency within a single
// document or sentence. Values are in [0,1] and sum to 1 for non-empty
// input.
type TermFrequency map[string]float64

// InverseDocumentFrequency maps a token to its smoothed corpus-wide
// rarity weight. Built exactly once per analysis and read-only after
// construction.
type InverseDocumentFrequency map[string]float64

// SparseVector is a term to tf-idf weight map. Terms absent from the map
// implicitly carry weight 0.
type SparseVector map[string]float64

// SimilarityMatrix is the result of a document-level analysis: an NxN
// cosine similarity matrix plus the document labels in input order.
type SimilarityMatrix struct {
	// Matrix[i][j] is the cosine similarity between document i and j.
	// The diagonal is exactly 1.0 by construction.
	Matrix [][]float64
	// Index holds the labels doc0..docN-1, assigned by input order.
	Index []string
}

// SentenceDocument pairs a document label (typically the uploaded
// filename) with its ordered sentences. Sentence order is significant:
// match results report zero-based positions into this slice.
type SentenceDocument struct {
	Filename  string
	Sentences []string
}

// SentenceMatch records one cross-document sentence pair whose cosine
// similarity met the caller-supplied threshold.
type SentenceMatch struct {
	SourceDoc           string
	SourceSentenceIndex int
	SourceSentence      string
	TargetDoc           string
	TargetSentenceIndex int
	TargetSentence      string
	Similarity          float64
}

// GlobalSimilarity is the mean cosine similarity over every
// cross-document sentence pair between two documents.
type GlobalSimilarity struct {
	DocA  string
	DocB  string
	Score float64
}

// SentenceAnalysis bundles the two outputs of a sentence-level run, both
// sorted by score descending.
type SentenceAnalysis struct {
	Matches            []SentenceMatch
	GlobalSimilarities []GlobalSimilarity
}

// TotalSentences returns the sentence count across all documents.
func TotalSentences(docs []SentenceDocument) int {
	total := 0
	for _, doc := range docs {
		total += len(doc.Sentences)
	}
	return total
}

// Package docsim implements whole-document similarity analysis: every
// input document becomes one tf-idf vector over a shared vocabulary and
// the result is the full NxN cosine similarity matrix.
package docsim

import (
	"fmt"

	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
	"github.com/baditaflorin/go_document_similarity/internal/core/tfidf"
	"github.com/baditaflorin/go_document_similarity/internal/parallel"
	"github.com/baditaflorin/go_document_similarity/internal/ports"
)

// Pipeline orchestrates the document-level stages:
//
//  1. normalize + tokenize + TF per document (parallel, independent)
//  2. corpus-global IDF (the single barrier: needs every TF map)
//  3. vocabulary = sorted distinct IDF terms
//  4. dense vectorization against the shared vocabulary (parallel)
//  5. NxN matrix (parallel by row)
//
// The IDF map and vocabulary are built before any vectorization starts
// and are only ever read afterwards, so the workers share them without
// locks.
type Pipeline struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	workers    int
}

// NewPipeline creates a document analysis pipeline. workers <= 0 selects
// one worker per CPU.
func NewPipeline(logger ports.Logger, normalizer ports.Normalizer, workers int) *Pipeline {
	return &Pipeline{
		logger:     logger,
		normalizer: normalizer,
		workers:    workers,
	}
}

// Analyze computes the similarity matrix for the given documents.
// Labels doc0..docN-1 are assigned by input order. An empty input
// short-circuits to an empty matrix with no work performed.
func (p *Pipeline) Analyze(documents []string) domain.SimilarityMatrix {
	if len(documents) == 0 {
		return domain.SimilarityMatrix{Matrix: [][]float64{}, Index: []string{}}
	}

	n := len(documents)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("doc%d", i)
	}

	p.logger.Debug("Starting document analysis", "documents", n)

	tfs := make([]domain.TermFrequency, n)
	parallel.ForEach(n, p.workers, func(i int) {
		tokens := tfidf.Tokenize(p.normalizer.Normalize(documents[i]))
		tfs[i] = tfidf.ComputeTF(tokens)
	})

	idf := tfidf.ComputeIDF(tfs)
	vocabulary := tfidf.Vocabulary(idf)
	p.logger.Debug("Built corpus statistics", "vocabulary_size", len(vocabulary))

	vectors := make([][]float64, n)
	parallel.ForEach(n, p.workers, func(i int) {
		vectors[i] = tfidf.VectorizeDense(tfs[i], idf, vocabulary)
	})

	matrix := BuildMatrix(vectors, p.workers)
	p.logger.Debug("Computed similarity matrix", "size", n)

	return domain.SimilarityMatrix{Matrix: matrix, Index: labels}
}

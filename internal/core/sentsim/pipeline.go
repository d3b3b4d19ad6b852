// Package sentsim implements sentence-level cross-document similarity:
// every sentence of every document is vectorized against one shared
// corpus, cross-document sentence pairs are matched against a caller
// threshold, and per-document-pair means are reported.
package sentsim

import (
	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
	"github.com/baditaflorin/go_document_similarity/internal/core/tfidf"
	"github.com/baditaflorin/go_document_similarity/internal/parallel"
	"github.com/baditaflorin/go_document_similarity/internal/ports"
)

// sentenceRef identifies one sentence within the flattened corpus and
// carries its sparse tf-idf vector. The original text is not threaded
// through; reporting re-reads it from the input documents.
type sentenceRef struct {
	docIndex      int
	sentenceIndex int
	vector        domain.SparseVector
}

// Pipeline orchestrates the sentence-level stages. The corpus for IDF is
// deliberately the union of all sentences from all documents, not
// per-document: a single shared vocabulary is what makes sentence
// weights comparable across documents.
type Pipeline struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	workers    int
}

// NewPipeline creates a sentence analysis pipeline. workers <= 0 selects
// one worker per CPU.
func NewPipeline(logger ports.Logger, normalizer ports.Normalizer, workers int) *Pipeline {
	return &Pipeline{
		logger:     logger,
		normalizer: normalizer,
		workers:    workers,
	}
}

// Analyze matches sentences across documents and aggregates per-pair
// similarity. threshold is boundary-inclusive: a pair whose similarity
// equals it exactly is kept. Both result lists are sorted by score
// descending; outputs are pure functions of the inputs.
func (p *Pipeline) Analyze(documents []domain.SentenceDocument, threshold float64) domain.SentenceAnalysis {
	refs := flatten(documents)
	if len(refs) == 0 {
		return domain.SentenceAnalysis{
			Matches:            []domain.SentenceMatch{},
			GlobalSimilarities: []domain.GlobalSimilarity{},
		}
	}

	p.logger.Debug("Starting sentence analysis",
		"documents", len(documents),
		"sentences", len(refs),
		"threshold", threshold,
	)

	// Per-sentence TF, fully independent across the flattened corpus.
	tfs := make([]domain.TermFrequency, len(refs))
	parallel.ForEach(len(refs), p.workers, func(i int) {
		text := documents[refs[i].docIndex].Sentences[refs[i].sentenceIndex]
		tfs[i] = tfidf.ComputeTF(tfidf.Tokenize(p.normalizer.Normalize(text)))
	})

	// The one barrier: global IDF over every sentence of every document.
	idf := tfidf.ComputeIDF(tfs)

	parallel.ForEach(len(refs), p.workers, func(i int) {
		refs[i].vector = tfidf.VectorizeSparse(tfs[i], idf)
	})

	matches := p.matchSentences(refs, documents, threshold)
	globals := p.globalSimilarities(refs, documents)

	p.logger.Debug("Finished sentence analysis",
		"matches", len(matches),
		"document_pairs", len(globals),
	)

	return domain.SentenceAnalysis{Matches: matches, GlobalSimilarities: globals}
}

// flatten enumerates (document index, sentence index) pairs preserving
// per-document sentence order. Indices, not copies of the text, carry
// sentence identity through the pipeline.
func flatten(documents []domain.SentenceDocument) []sentenceRef {
	var refs []sentenceRef
	for docIdx, doc := range documents {
		for sentIdx := range doc.Sentences {
			refs = append(refs, sentenceRef{docIndex: docIdx, sentenceIndex: sentIdx})
		}
	}
	return refs
}

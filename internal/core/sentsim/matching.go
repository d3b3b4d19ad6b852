package sentsim

import (
	"sort"

	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
	"github.com/baditaflorin/go_document_similarity/internal/core/tfidf"
	"github.com/baditaflorin/go_document_similarity/internal/parallel"
)

// matchSentences scores every unordered pair of flattened sentences
// whose documents differ and keeps the pairs at or above threshold.
// Same-document pairs are excluded regardless of similarity.
//
// Pair generation is parallel by left index: worker i scores refs[i]
// against refs[i+1:] into its own bucket, and the buckets are
// concatenated in flatten order before the stable sort, so the output
// ordering is reproducible run to run.
func (p *Pipeline) matchSentences(refs []sentenceRef, documents []domain.SentenceDocument, threshold float64) []domain.SentenceMatch {
	buckets := make([][]domain.SentenceMatch, len(refs))
	parallel.ForEach(len(refs), p.workers, func(i int) {
		var bucket []domain.SentenceMatch
		a := refs[i]
		for j := i + 1; j < len(refs); j++ {
			b := refs[j]
			if a.docIndex == b.docIndex {
				continue
			}

			similarity := tfidf.CosineSparse(a.vector, b.vector)
			if similarity < threshold {
				continue
			}

			bucket = append(bucket, domain.SentenceMatch{
				SourceDoc:           documents[a.docIndex].Filename,
				SourceSentenceIndex: a.sentenceIndex,
				SourceSentence:      documents[a.docIndex].Sentences[a.sentenceIndex],
				TargetDoc:           documents[b.docIndex].Filename,
				TargetSentenceIndex: b.sentenceIndex,
				TargetSentence:      documents[b.docIndex].Sentences[b.sentenceIndex],
				Similarity:          similarity,
			})
		}
		buckets[i] = bucket
	})

	matches := []domain.SentenceMatch{}
	for _, bucket := range buckets {
		matches = append(matches, bucket...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

// globalSimilarities reports, for every unordered document pair (a < b
// by input order), the arithmetic mean similarity over the full cross
// product of their sentences, not just pairs above the match threshold.
// A pair where either side has no sentences is omitted entirely rather
// than reported as zero.
func (p *Pipeline) globalSimilarities(refs []sentenceRef, documents []domain.SentenceDocument) []domain.GlobalSimilarity {
	byDoc := make([][]domain.SparseVector, len(documents))
	for _, ref := range refs {
		byDoc[ref.docIndex] = append(byDoc[ref.docIndex], ref.vector)
	}

	type docPair struct{ a, b int }
	var pairs []docPair
	for a := 0; a < len(documents); a++ {
		for b := a + 1; b < len(documents); b++ {
			pairs = append(pairs, docPair{a, b})
		}
	}

	results := make([]*domain.GlobalSimilarity, len(pairs))
	parallel.ForEach(len(pairs), p.workers, func(i int) {
		pair := pairs[i]
		vecsA := byDoc[pair.a]
		vecsB := byDoc[pair.b]
		if len(vecsA) == 0 || len(vecsB) == 0 {
			return
		}

		var sum float64
		for _, va := range vecsA {
			for _, vb := range vecsB {
				sum += tfidf.CosineSparse(va, vb)
			}
		}

		results[i] = &domain.GlobalSimilarity{
			DocA:  documents[pair.a].Filename,
			DocB:  documents[pair.b].Filename,
			Score: sum / float64(len(vecsA)*len(vecsB)),
		}
	})

	globals := []domain.GlobalSimilarity{}
	for _, r := range results {
		if r != nil {
			globals = append(globals, *r)
		}
	}

	sort.SliceStable(globals, func(i, j int) bool {
		return globals[i].Score > globals[j].Score
	})
	return globals
}

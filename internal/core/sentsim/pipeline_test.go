package sentsim

import (
	"testing"

	"github.com/baditaflorin/go_document_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Close() error                                   { return nil }

func newTestPipeline() *Pipeline {
	return NewPipeline(nopLogger{}, normalizer.NewDefaultNormalizer(), 0)
}

func doc(name string, sentences ...string) domain.SentenceDocument {
	return domain.SentenceDocument{Filename: name, Sentences: sentences}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	result := newTestPipeline().Analyze(nil, 0.7)
	if len(result.Matches) != 0 {
		t.Errorf("expected no matches, got %v", result.Matches)
	}
	if len(result.GlobalSimilarities) != 0 {
		t.Errorf("expected no global scores, got %v", result.GlobalSimilarities)
	}
}

func TestAnalyzeSingleDocumentHasNoCrossPairs(t *testing.T) {
	result := newTestPipeline().Analyze([]domain.SentenceDocument{
		doc("only.txt", "Hello world.", "Hello world again."),
	}, 0.0)

	if len(result.Matches) != 0 {
		t.Errorf("single document must produce no matches, got %d", len(result.Matches))
	}
	if len(result.GlobalSimilarities) != 0 {
		t.Errorf("single document must produce no global scores, got %d", len(result.GlobalSimilarities))
	}
}

func TestAnalyzeIdenticalSentences(t *testing.T) {
	result := newTestPipeline().Analyze([]domain.SentenceDocument{
		doc("a.txt", "The quick brown fox."),
		doc("b.txt", "The quick brown fox."),
	}, 0.7)

	if len(result.Matches) == 0 {
		t.Fatal("expected at least one match for identical sentences")
	}
	if result.Matches[0].Similarity <= 0.9 {
		t.Errorf("similarity = %f, want > 0.9", result.Matches[0].Similarity)
	}
	if len(result.GlobalSimilarities) != 1 {
		t.Fatalf("expected 1 global score, got %d", len(result.GlobalSimilarities))
	}
}

func TestAnalyzeNeverMatchesWithinOneDocument(t *testing.T) {
	result := newTestPipeline().Analyze([]domain.SentenceDocument{
		doc("a.txt", "Alpha beta gamma.", "Alpha beta gamma."),
		doc("b.txt", "Something unrelated entirely."),
	}, 0.0)

	for _, m := range result.Matches {
		if m.SourceDoc == m.TargetDoc {
			t.Errorf("match pairs sentences of the same document: %+v", m)
		}
	}
}

func TestAnalyzeThresholdIsInclusive(t *testing.T) {
	docs := []domain.SentenceDocument{
		doc("a.txt", "shared words here."),
		doc("b.txt", "shared words here."),
	}

	// Run once at threshold 0 to learn the exact score, then require that
	// an equal threshold still keeps the pair.
	probe := newTestPipeline().Analyze(docs, 0.0)
	if len(probe.Matches) != 1 {
		t.Fatalf("probe expected 1 match, got %d", len(probe.Matches))
	}
	exact := probe.Matches[0].Similarity

	result := newTestPipeline().Analyze(docs, exact)
	if len(result.Matches) != 1 {
		t.Errorf("threshold equal to the score must keep the match, got %d matches", len(result.Matches))
	}
}

func TestAnalyzeMatchesSortedByScoreDescending(t *testing.T) {
	result := newTestPipeline().Analyze([]domain.SentenceDocument{
		doc("a.txt", "red green blue.", "cats and dogs play."),
		doc("b.txt", "red green blue.", "cats sometimes play chess.", "totally different topic."),
	}, 0.0)

	for i := 1; i < len(result.Matches); i++ {
		if result.Matches[i-1].Similarity < result.Matches[i].Similarity {
			t.Errorf("matches not sorted descending at %d: %f < %f",
				i, result.Matches[i-1].Similarity, result.Matches[i].Similarity)
		}
	}
	for i := 1; i < len(result.GlobalSimilarities); i++ {
		if result.GlobalSimilarities[i-1].Score < result.GlobalSimilarities[i].Score {
			t.Errorf("global scores not sorted descending at %d", i)
		}
	}
}

func TestAnalyzeGlobalPairCount(t *testing.T) {
	docs := []domain.SentenceDocument{
		doc("a.txt", "one sentence."),
		doc("b.txt", "two sentences.", "really two."),
		doc("c.txt", "three here."),
		doc("d.txt", "four here."),
	}
	result := newTestPipeline().Analyze(docs, 0.99)

	// n*(n-1)/2 pairs when every document has at least one sentence.
	if want := 4 * 3 / 2; len(result.GlobalSimilarities) != want {
		t.Errorf("got %d global scores, want %d", len(result.GlobalSimilarities), want)
	}
}

func TestAnalyzeOmitsPairsWithSentencelessDocument(t *testing.T) {
	docs := []domain.SentenceDocument{
		doc("a.txt", "has a sentence."),
		doc("empty.txt"),
		doc("c.txt", "also has one."),
	}
	result := newTestPipeline().Analyze(docs, 0.0)

	if len(result.GlobalSimilarities) != 1 {
		t.Fatalf("expected only the a/c pair, got %d pairs", len(result.GlobalSimilarities))
	}
	g := result.GlobalSimilarities[0]
	if g.DocA != "a.txt" || g.DocB != "c.txt" {
		t.Errorf("unexpected pair %s/%s", g.DocA, g.DocB)
	}
}

func TestAnalyzeGlobalUsesFullCrossProduct(t *testing.T) {
	// One identical sentence pair and one unrelated pair: the mean must
	// sit strictly between the per-pair extremes, proving sub-threshold
	// pairs still count toward the aggregate.
	docs := []domain.SentenceDocument{
		doc("a.txt", "identical sentence text.", "completely unrelated words."),
		doc("b.txt", "identical sentence text."),
	}
	result := newTestPipeline().Analyze(docs, 0.99)

	if len(result.GlobalSimilarities) != 1 {
		t.Fatalf("expected 1 global score, got %d", len(result.GlobalSimilarities))
	}
	score := result.GlobalSimilarities[0].Score
	if score <= 0.0 || score >= 1.0 {
		t.Errorf("mean score %f should be strictly between 0 and 1", score)
	}
}

func TestAnalyzeReportsIndicesAndText(t *testing.T) {
	docs := []domain.SentenceDocument{
		doc("a.txt", "first filler sentence.", "the shared sentence."),
		doc("b.txt", "the shared sentence."),
	}
	result := newTestPipeline().Analyze(docs, 0.9)

	if len(result.Matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(result.Matches))
	}
	m := result.Matches[0]
	if m.SourceDoc != "a.txt" || m.SourceSentenceIndex != 1 {
		t.Errorf("source = %s[%d], want a.txt[1]", m.SourceDoc, m.SourceSentenceIndex)
	}
	if m.TargetDoc != "b.txt" || m.TargetSentenceIndex != 0 {
		t.Errorf("target = %s[%d], want b.txt[0]", m.TargetDoc, m.TargetSentenceIndex)
	}
	if m.SourceSentence != "the shared sentence." || m.TargetSentence != "the shared sentence." {
		t.Errorf("match does not carry original sentence text: %+v", m)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	docs := []domain.SentenceDocument{
		doc("a.txt", "alpha beta gamma.", "delta epsilon zeta."),
		doc("b.txt", "alpha beta delta.", "eta theta iota."),
		doc("c.txt", "gamma beta alpha.", "kappa lambda mu."),
	}
	p := newTestPipeline()

	first := p.Analyze(docs, 0.1)
	for run := 0; run < 10; run++ {
		again := p.Analyze(docs, 0.1)
		if len(again.Matches) != len(first.Matches) {
			t.Fatalf("run %d: match count drifted from %d to %d", run, len(first.Matches), len(again.Matches))
		}
		for i := range first.Matches {
			if first.Matches[i] != again.Matches[i] {
				t.Fatalf("run %d: match %d drifted:\n%+v\n%+v", run, i, first.Matches[i], again.Matches[i])
			}
		}
		for i := range first.GlobalSimilarities {
			if first.GlobalSimilarities[i] != again.GlobalSimilarities[i] {
				t.Fatalf("run %d: global %d drifted", run, i)
			}
		}
	}
}

package sentence

import (
	"context"
	"testing"
)

func TestAnalyzeEndToEnd(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	docs := []Document{
		{Filename: "a.txt", Sentences: a.SplitSentences("The quick brown fox. Unrelated filler sentence.")},
		{Filename: "b.txt", Sentences: a.SplitSentences("The quick brown fox. Another unrelated line.")},
	}

	result := a.Analyze(context.Background(), docs, 0.7)

	if len(result.Matches) == 0 {
		t.Fatal("expected at least one match")
	}
	best := result.Matches[0]
	if best.Similarity <= 0.9 {
		t.Errorf("best similarity = %f, want > 0.9", best.Similarity)
	}
	if best.SourceDoc == best.TargetDoc {
		t.Errorf("match within a single document: %+v", best)
	}
	if len(result.GlobalSimilarities) != 1 {
		t.Errorf("expected 1 global pair, got %d", len(result.GlobalSimilarities))
	}
}

func TestSplitSentences(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := a.SplitSentences("One sentence here. And a second one!")
	if len(got) != 2 {
		t.Errorf("expected 2 sentences, got %v", got)
	}
}

func TestAnalyzeCancelledContextShortCircuits(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := a.Analyze(ctx, []Document{
		{Filename: "a.txt", Sentences: []string{"Hello there."}},
		{Filename: "b.txt", Sentences: []string{"Hello there."}},
	}, 0.0)

	if len(result.Matches) != 0 || len(result.GlobalSimilarities) != 0 {
		t.Errorf("cancelled context must not start work, got %+v", result)
	}
}

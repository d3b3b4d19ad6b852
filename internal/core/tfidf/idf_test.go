package tfidf

import (
	"math"
	"testing"

	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
)

func TestComputeIDFSmoothedFormula(t *testing.T) {
	tfs := []domain.TermFrequency{
		{"hello": 0.5, "world": 0.5},
		{"hello": 1.0},
	}
	idf := ComputeIDF(tfs)

	// df(hello)=2, N=2: ln(3/3)+1 = 1
	if !approxEqual(idf["hello"], 1.0) {
		t.Errorf("idf[hello] = %f, want 1.0", idf["hello"])
	}
	// df(world)=1, N=2: ln(3/2)+1
	want := math.Log(3.0/2.0) + 1.0
	if !approxEqual(idf["world"], want) {
		t.Errorf("idf[world] = %f, want %f", idf["world"], want)
	}
}

func TestComputeIDFAlwaysPositive(t *testing.T) {
	tfs := []domain.TermFrequency{
		{"common": 0.5, "rare": 0.5},
		{"common": 1.0},
		{"common": 1.0},
	}
	for term, v := range ComputeIDF(tfs) {
		if v <= 0 {
			t.Errorf("idf[%s] = %f, want > 0", term, v)
		}
	}
}

func TestComputeIDFRarerTermsWeighMore(t *testing.T) {
	tfs := []domain.TermFrequency{
		{"everywhere": 0.5, "rare": 0.5},
		{"everywhere": 1.0},
		{"everywhere": 0.5, "sometimes": 0.5},
	}
	idf := ComputeIDF(tfs)

	if idf["rare"] < idf["sometimes"] {
		t.Errorf("idf[rare]=%f should be >= idf[sometimes]=%f", idf["rare"], idf["sometimes"])
	}
	if idf["sometimes"] < idf["everywhere"] {
		t.Errorf("idf[sometimes]=%f should be >= idf[everywhere]=%f", idf["sometimes"], idf["everywhere"])
	}
}

func TestComputeIDFEmptyCorpus(t *testing.T) {
	if idf := ComputeIDF(nil); len(idf) != 0 {
		t.Errorf("expected empty IDF map for empty corpus, got %v", idf)
	}
}

func TestVocabularySortedAndDistinct(t *testing.T) {
	idf := domain.InverseDocumentFrequency{"zebra": 1, "apple": 1, "mango": 1}
	vocab := Vocabulary(idf)

	want := []string{"apple", "mango", "zebra"}
	if len(vocab) != len(want) {
		t.Fatalf("vocabulary length %d, want %d", len(vocab), len(want))
	}
	for i := range want {
		if vocab[i] != want[i] {
			t.Errorf("vocab[%d] = %s, want %s", i, vocab[i], want[i])
		}
	}
}

// Package sentence provides sentence-level cross-document similarity:
// every sentence of every document is vectorized against one shared
// tf-idf corpus, cross-document sentence pairs are matched against a
// threshold, and per-document-pair means are reported.
package sentence

import (
	"context"

	"github.com/baditaflorin/go_document_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_document_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_document_similarity/internal/adapters/splitter"
	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
	"github.com/baditaflorin/go_document_similarity/internal/core/sentsim"
	"github.com/baditaflorin/go_document_similarity/internal/ports"
	"github.com/baditaflorin/go_document_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Document pairs a label (typically a filename) with its ordered
// sentences.
type Document = domain.SentenceDocument

// Match is one cross-document sentence pair at or above the threshold.
type Match = domain.SentenceMatch

// GlobalSimilarity is the mean similarity of one document pair.
type GlobalSimilarity = domain.GlobalSimilarity

// Analysis bundles matches and global similarities, sorted by score
// descending.
type Analysis = domain.SentenceAnalysis

// DefaultThreshold is the match threshold applied when callers have no
// opinion of their own.
const DefaultThreshold = 0.70

// Analyzer performs sentence-level cross-document similarity analysis.
type Analyzer struct {
	pipeline *sentsim.Pipeline
	split    ports.SentenceSplitter
	logger   ports.Logger
	warmed   bool
}

// Option defines a functional option for configuring the Analyzer.
type Option func(*analyzerConfig)

type analyzerConfig struct {
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	Splitter     ports.SentenceSplitter
	Workers      int
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *analyzerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *analyzerConfig) {
		cfg.Normalizer = n
	}
}

// WithSplitter sets a custom sentence splitter.
func WithSplitter(s ports.SentenceSplitter) Option {
	return func(cfg *analyzerConfig) {
		cfg.Splitter = s
	}
}

// WithWorkers bounds the worker pool used for the parallel pipeline
// stages. Zero or negative selects one worker per CPU.
func WithWorkers(workers int) Option {
	return func(cfg *analyzerConfig) {
		cfg.Workers = workers
	}
}

// WithWarmUp enables analyzer warm-up on construction.
func WithWarmUp(enable bool) Option {
	return func(cfg *analyzerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables
// warm-up.
func WithWarmUpConfig(config warmup.Config) Option {
	return func(cfg *analyzerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new sentence Analyzer. A default logger, normalizer and
// splitter are constructed when none are supplied.
func New(opts ...Option) (*Analyzer, error) {
	config := &analyzerConfig{
		WarmUpConfig: warmup.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}
	if config.Splitter == nil {
		config.Splitter = splitter.NewRegexSplitter()
	}

	a := &Analyzer{
		pipeline: sentsim.NewPipeline(config.Logger, config.Normalizer, config.Workers),
		split:    config.Splitter,
		logger:   config.Logger,
	}

	if config.WarmUp {
		a.WarmUp(config.WarmUpConfig)
	}
	return a, nil
}

// Analyze matches sentences across documents at the given threshold
// (boundary-inclusive) and aggregates per-document-pair similarity.
// The computation itself is total and non-cancellable; a context that
// is already done short-circuits to an empty result before any work
// starts.
func (a *Analyzer) Analyze(ctx context.Context, documents []Document, threshold float64) Analysis {
	if err := ctx.Err(); err != nil {
		a.logger.Warn("Analysis not started, context already done", "error", err)
		return Analysis{
			Matches:            []Match{},
			GlobalSimilarities: []GlobalSimilarity{},
		}
	}
	return a.pipeline.Analyze(documents, threshold)
}

// SplitSentences splits raw document text into the ordered sentence
// list expected by Analyze.
func (a *Analyzer) SplitSentences(text string) []string {
	return a.split.Split(text)
}

// WarmUp pre-exercises the analysis pipeline.
func (a *Analyzer) WarmUp(config warmup.Config) {
	if a.warmed {
		a.logger.Debug("Analyzer already warmed up, skipping")
		return
	}

	sample := []Document{
		{Filename: "warmup-a.txt", Sentences: a.split.Split("The quick brown fox. It jumps over the lazy dog.")},
		{Filename: "warmup-b.txt", Sentences: a.split.Split("The quick brown fox. Something else entirely here.")},
	}
	mgr := warmup.NewManager(a.logger, config)
	mgr.Register(func() { a.pipeline.Analyze(sample, DefaultThreshold) })
	mgr.WarmUp()
	a.warmed = true
}

// Package document provides whole-document similarity analysis: every
// input document is vectorized with tf-idf over a shared vocabulary and
// compared pairwise with cosine similarity into an NxN matrix.
package document

import (
	"context"

	"github.com/baditaflorin/go_document_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_document_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_document_similarity/internal/core/docsim"
	"github.com/baditaflorin/go_document_similarity/internal/core/domain"
	"github.com/baditaflorin/go_document_similarity/internal/ports"
	"github.com/baditaflorin/go_document_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Matrix is the result of a document-level analysis.
type Matrix = domain.SimilarityMatrix

// Analyzer computes NxN document similarity matrices.
type Analyzer struct {
	pipeline *docsim.Pipeline
	logger   ports.Logger
	warmed   bool
}

// Option defines a functional option for configuring the Analyzer.
type Option func(*analyzerConfig)

type analyzerConfig struct {
	Logger       ports.Logger
	Normalizer   ports.Normalizer
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

// New creates a new document Analyzer. A default logger and normalizer
// are constructed when none are supplied.
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

	a := &Analyzer{
		pipeline: docsim.NewPipeline(config.Logger, config.Normalizer, config.Workers),
		logger:   config.Logger,
	}

	if config.WarmUp {
		a.WarmUp(config.WarmUpConfig)
	}
	return a, nil
}

// Analyze computes the similarity matrix of documents, labeled
// doc0..docN-1 in input order. The computation itself is total and
// non-cancellable; a context that is already done short-circuits to an
// empty matrix before any work starts.
func (a *Analyzer) Analyze(ctx context.Context, documents []string) Matrix {
	if err := ctx.Err(); err != nil {
		a.logger.Warn("Analysis not started, context already done", "error", err)
		return Matrix{Matrix: [][]float64{}, Index: []string{}}
	}
	return a.pipeline.Analyze(documents)
}

// WarmUp pre-exercises the analysis pipeline.
func (a *Analyzer) WarmUp(config warmup.Config) {
	if a.warmed {
		a.logger.Debug("Analyzer already warmed up, skipping")
		return
	}

	sample := []string{
		"The quick brown fox jumps over the lazy dog.",
		"A quick brown dog jumps over a lazy fox.",
		"Completely unrelated sample text for warm-up purposes.",
	}
	mgr := warmup.NewManager(a.logger, config)
	mgr.Register(func() { a.pipeline.Analyze(sample) })
	mgr.WarmUp()
	a.warmed = true
}

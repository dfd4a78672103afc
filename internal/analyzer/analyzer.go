// Package analyzer orchestrates strength estimation and breach checking
// for password candidates.
//
// The analyzer never logs, stores, or transmits a candidate. The
// estimator works entirely in memory and the breach check discloses only
// a five-character digest prefix; log records carry outcomes, never
// inputs.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/passcheck/internal/breach"
	"github.com/nao1215/passcheck/internal/estimator"
	"github.com/nao1215/passcheck/internal/model"
)

// Analyzer runs the full analysis for candidates: composition facts,
// pattern-based guess estimation, and the breach-corpus signal.
// An Analyzer is immutable after construction and safe for concurrent
// use.
type Analyzer struct {
	// estimator computes pattern-aware guess estimates.
	estimator *estimator.Estimator

	// corpus answers breach range queries. Nil disables breach checking;
	// analyses then carry an unknown breach status.
	corpus breach.Corpus

	// oracleTimeout bounds each breach lookup.
	oracleTimeout time.Duration

	// strict turns breach-lookup failures into hard errors instead of
	// degrading to an unknown breach status.
	strict bool

	// concurrency limits simultaneous analyses in AnalyzeBatch.
	concurrency int

	// logger receives structured progress and degradation records.
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEstimator replaces the default estimator, e.g. to change the
// assumed attack rate.
func WithEstimator(e *estimator.Estimator) Option {
	return func(a *Analyzer) {
		if e != nil {
			a.estimator = e
		}
	}
}

// WithCorpus sets the breach corpus to query. Without a corpus, breach
// checking is skipped and analyses report the status as unknown.
func WithCorpus(c breach.Corpus) Option {
	return func(a *Analyzer) {
		a.corpus = c
	}
}

// WithOracleTimeout bounds each breach lookup. Non-positive values are
// ignored.
func WithOracleTimeout(timeout time.Duration) Option {
	return func(a *Analyzer) {
		if timeout > 0 {
			a.oracleTimeout = timeout
		}
	}
}

// WithStrict makes breach-lookup failures abort the analysis.
//
// Design decision: Degrading is the default because interactive use
// should not fail on a flaky network, but policy-enforcement callers
// (e.g. signup handlers) need the opposite: no verdict without a breach
// answer.
func WithStrict(strict bool) Option {
	return func(a *Analyzer) {
		a.strict = strict
	}
}

// WithConcurrency sets the maximum number of concurrent analyses in
// AnalyzeBatch. Default is 10 if not specified.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithLogger sets a custom logger. If not set, slog.Default() is used.
// The logger only ever receives outcome metadata, never candidates.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Analyzer with the given options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		estimator:     estimator.New(),
		oracleTimeout: 10 * time.Second,
		concurrency:   10,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Analyze runs the full analysis for one candidate. Estimation and the
// breach lookup run concurrently; the estimate is pure CPU while the
// lookup is network or disk bound, so neither waits on the other.
//
// When the breach lookup fails and strict mode is off, the analysis
// completes with Breach.CountKnown false and a logged warning. The
// strength verdict comes from the estimator alone; breach exposure never
// changes it.
func (a *Analyzer) Analyze(ctx context.Context, candidate string) (*model.Analysis, error) {
	analysis := model.NewAnalysis(candidate)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		analysis.Score = a.estimator.Estimate(candidate)
		return nil
	})

	g.Go(func() error {
		if a.corpus == nil {
			return nil
		}

		lookupCtx, cancel := context.WithTimeout(gctx, a.oracleTimeout)
		defer cancel()

		result, err := breach.Check(lookupCtx, a.corpus, candidate)
		if err != nil {
			if a.strict {
				return fmt.Errorf("breach check failed: %w", err)
			}
			a.logger.Warn("breach lookup failed, continuing without breach data",
				"error", err,
			)
			return nil
		}
		analysis.Breach = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	analysis.Warnings = warningsFor(analysis)
	return analysis, nil
}

// AnalyzeBatch analyzes multiple candidates concurrently, preserving
// input order in the returned slice.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each candidate gets its own goroutine, but only 'concurrency'
// goroutines run simultaneously.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, candidates []string) ([]*model.Analysis, error) {
	a.logger.Debug("starting batch analysis",
		"total", len(candidates),
		"concurrency", a.concurrency,
	)
	start := time.Now()

	results := make([]*model.Analysis, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			analysis, err := a.Analyze(gctx, candidate)
			if err != nil {
				return fmt.Errorf("analysis %d of %d failed: %w", i+1, len(candidates), err)
			}
			results[i] = analysis
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("batch analysis complete",
		"total", len(candidates),
		"elapsed", time.Since(start),
	)
	return results, nil
}

// Package tessella turns raw page-layout primitives produced by external
// PDF text/table extraction tools into a clean, hierarchical document model:
// pages own paragraphs, words, and characters; detected tables own rows and
// cells with inferred column and row spans.
//
// Basic usage:
//
//	doc, err := tessella.ReconstructTables(ctx, doc, myExtractor)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	cfg := tables.DefaultConfig()
//	cfg.CoverageThreshold = 0.6
//	doc, err := tessella.ReconstructTables(ctx, doc, myExtractor,
//	    tessella.WithConfig(cfg),
//	    tessella.WithConcurrency(2),
//	)
//
// For advanced use cases the lower-level model, extract, tables, and
// pipeline packages are also available.
package tessella

import (
	"context"
	"io"

	"github.com/phuslu/log"

	"github.com/tsawler/tessella/extract"
	"github.com/tsawler/tessella/model"
	"github.com/tsawler/tessella/pipeline"
	"github.com/tsawler/tessella/tables"
)

// options holds configuration for the default reconstruction pipeline
type options struct {
	config      tables.Config
	logger      log.Logger
	concurrency int
}

func defaultOptions() options {
	return options{
		config:      tables.DefaultConfig(),
		logger:      log.Logger{Writer: &log.IOWriter{Writer: io.Discard}},
		concurrency: pipeline.DefaultConcurrency,
	}
}

// Option configures the default reconstruction pipeline
type Option func(*options)

// WithConfig overrides the reconstruction tolerances
func WithConfig(cfg tables.Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithLogger directs pipeline diagnostics to the given structured logger
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithConcurrency bounds how many pages have extractor calls in flight at once
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// ReconstructTables runs the table detection stage against the document
// using the given extractor: per page, raw grids are fetched, canonical
// structure is reconstructed, and each table is spliced into the page in
// place of the elements it subsumes. Pages whose extraction fails are left
// as plain text.
func ReconstructTables(ctx context.Context, doc *model.Document, extractor extract.Extractor, opts ...Option) (*model.Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stage, err := pipeline.NewDetectStage(extractor, o.config)
	if err != nil {
		return nil, err
	}
	stage.Concurrency = o.concurrency

	rctx := pipeline.NewContext(ctx, o.logger)
	return pipeline.Run(rctx, doc, stage)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

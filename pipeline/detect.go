package pipeline

import (
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/tessella/extract"
	"github.com/tsawler/tessella/model"
	"github.com/tsawler/tessella/tables"
)

// DefaultConcurrency bounds how many pages have extractor calls in flight at
// once. Extractors typically spawn external processes, so the fan-out is kept
// small to avoid resource exhaustion.
const DefaultConcurrency = 4

// DetectStage runs table detection and reconstruction against every page of
// a document. Extractor calls are issued concurrently across pages, bounded
// by Concurrency; each goroutine splices only its own page's element list,
// so no locking is needed.
//
// The stage is fail-open per page: an extractor failure or malformed payload
// on one page is logged and treated as "no tables on this page", and the
// rest of the document still processes. Individual malformed grids are
// discarded without affecting sibling tables on the same page.
type DetectStage struct {
	extractor     extract.Extractor
	reconstructor *tables.Reconstructor

	// Concurrency bounds concurrent extractor calls; values < 1 use
	// DefaultConcurrency.
	Concurrency int
}

// NewDetectStage creates a detection stage using the given extractor and
// reconstruction configuration.
func NewDetectStage(extractor extract.Extractor, config tables.Config) (*DetectStage, error) {
	r := tables.NewReconstructor()
	if err := r.Configure(config); err != nil {
		return nil, err
	}
	return &DetectStage{
		extractor:     extractor,
		reconstructor: r,
		Concurrency:   DefaultConcurrency,
	}, nil
}

// Name returns the stage identifier
func (s *DetectStage) Name() string {
	return "table-detection"
}

// Process detects and reconstructs tables on every page of the document
func (s *DetectStage) Process(rctx *Context, doc *model.Document) (*model.Document, error) {
	limit := s.Concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(rctx)
	g.SetLimit(limit)

	for _, page := range doc.Pages {
		page := page
		g.Go(func() error {
			grids, err := s.extractor.DetectTables(ctx, page)
			if err != nil {
				// Fail open: a broken extractor result means no tables on
				// this page, not a failed document.
				rctx.Log.Warn().
					Str("run", rctx.RunID).
					Int("page", page.Number).
					Err(err).
					Msg("table extraction failed, treating page as table-free")
				return nil
			}

			for _, grid := range grids {
				if table := s.reconstructor.Apply(page, grid); table == nil {
					rctx.Log.Warn().
						Str("run", rctx.RunID).
						Int("page", page.Number).
						Msg("discarded malformed table grid")
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return doc, nil
}

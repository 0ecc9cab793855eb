// Package pipeline sequences document-transforming stages.
//
// A [Stage] consumes and produces a [model.Document]; [Run] applies stages in
// declared order, one at a time per document. A stage failure aborts the run
// and surfaces as a [StageError] naming the failing stage — no partial
// document is returned in that case. Multiple documents may be processed by
// independent runs concurrently; runs share no mutable state.
//
// Per-run state — cancellation, a structured logger, a run ID — travels in a
// [Context] passed explicitly into every stage; there is no global logger.
//
// [DetectStage] is the table detection stage: it calls the injected
// [extract.Extractor] per page (concurrently, with a small bound, since
// extractors usually shell out to external tools), reconstructs each reported
// grid, and splices the resulting tables into their pages. Extraction
// failures are fail-open per page: the page renders as plain text, exactly as
// if no table extraction had been attempted.
package pipeline

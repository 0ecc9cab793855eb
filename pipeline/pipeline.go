package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/tsawler/tessella/model"
)

// Context carries the per-run state passed explicitly into each stage: the
// cancellation context, a structured logger for diagnostics, and a run ID
// for correlating log lines across stages. There is no process-wide logger
// state.
type Context struct {
	context.Context

	Log   log.Logger
	RunID string
}

// NewContext creates a run context with the given logger
func NewContext(ctx context.Context, logger log.Logger) *Context {
	return &Context{
		Context: ctx,
		Log:     logger,
		RunID:   uuid.NewString(),
	}
}

// NewSilentContext creates a run context that discards diagnostics
func NewSilentContext(ctx context.Context) *Context {
	return NewContext(ctx, log.Logger{Writer: &log.IOWriter{Writer: io.Discard}})
}

// Stage is one document-transforming step. A stage consumes and produces the
// (possibly mutated) document; it may suspend while awaiting an external
// collaborator and it may fail.
type Stage interface {
	// Name identifies the stage in errors and diagnostics
	Name() string

	// Process transforms the document
	Process(rctx *Context, doc *model.Document) (*model.Document, error)
}

// StageError reports a stage failure with the originating stage identified
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: stage %q: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Run applies each stage to the document in declared order. One stage runs
// at a time against the document; a stage failure aborts the remaining
// stages and surfaces as a *StageError, with no partial document returned.
// Independent documents may be processed by independent runs concurrently;
// runs share no mutable state.
func Run(rctx *Context, doc *model.Document, stages ...Stage) (*model.Document, error) {
	for _, stage := range stages {
		if err := rctx.Err(); err != nil {
			return nil, &StageError{Stage: stage.Name(), Err: err}
		}

		rctx.Log.Debug().Str("run", rctx.RunID).Str("stage", stage.Name()).Msg("stage starting")
		next, err := stage.Process(rctx, doc)
		if err != nil {
			return nil, &StageError{Stage: stage.Name(), Err: err}
		}
		doc = next
	}
	return doc, nil
}

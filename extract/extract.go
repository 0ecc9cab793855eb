package extract

import (
	"context"

	"github.com/tsawler/tessella/model"
)

// RawCell is one extractor-reported rectangle with its text. A merged region
// may arrive as one geometrically larger cell, or repeated once per raw row
// it covers; the raw grid carries no explicit span information.
type RawCell struct {
	BBox model.BBox
	Text string
}

// RawTableGrid is the rectangular-ish grid of raw cells reported for one
// detected table: ordered rows, each an ordered run of cells. It is consumed
// by reconstruction and never persisted.
type RawTableGrid struct {
	Rows [][]RawCell
}

// RowCount returns the number of raw rows
func (g RawTableGrid) RowCount() int {
	return len(g.Rows)
}

// IsEmpty reports whether the grid has no rows with cells
func (g RawTableGrid) IsEmpty() bool {
	for _, row := range g.Rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// CellCount returns the total number of raw cells in the grid
func (g RawTableGrid) CellCount() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// Extractor is the capability contract for external table detection tools.
// Given a page, an implementation returns zero or more raw table grids. An
// empty result means "no tables detected" and is not an error. The context
// covers the external-process or I/O boundary; a collaborator-side timeout
// surfaces as an error.
type Extractor interface {
	DetectTables(ctx context.Context, page *model.Page) ([]RawTableGrid, error)
}

// Static is an Extractor serving pre-computed grids keyed by page number.
// Pages without an entry yield no tables. Useful for tests and for payloads
// extracted ahead of time.
type Static struct {
	Grids map[int][]RawTableGrid
}

// NewStatic creates a static extractor from per-page grids
func NewStatic(grids map[int][]RawTableGrid) *Static {
	return &Static{Grids: grids}
}

// DetectTables returns the canned grids for the page
func (s *Static) DetectTables(ctx context.Context, page *model.Page) ([]RawTableGrid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Grids[page.Number], nil
}

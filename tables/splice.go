package tables

import (
	"github.com/tsawler/tessella/extract"
	"github.com/tsawler/tessella/model"
)

// Subsumed returns the indexes of elements that a table with the given
// bounding box replaces: elements fully contained in the box, or covering it
// with more than threshold of their own area. Existing tables are never
// subsumed, which keeps re-running detection idempotent. Pure function of
// its inputs.
func Subsumed(elems []model.Element, table model.BBox, threshold float64) []int {
	var indexes []int
	for i, el := range elems {
		if el.Type() == model.ElementTypeTable {
			continue
		}
		bb := el.BoundingBox()
		if table.Contains(bb) {
			indexes = append(indexes, i)
			continue
		}
		if _, elProportion, _, ok := bb.Overlap(table); ok && elProportion > threshold {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// Apply reconstructs one raw grid and splices the resulting table into the
// page: subsumed elements are removed and the table is inserted at the first
// removed element's position in one atomic splice. Returns the table, or nil
// when the grid was discarded and the page left unchanged.
func (r *Reconstructor) Apply(page *model.Page, grid extract.RawTableGrid) *model.Table {
	table := r.Reconstruct(grid)
	if table == nil {
		return nil
	}

	removed := Subsumed(page.Elements, table.BBox, r.config.SubsumeThreshold)
	page.Splice(removed, table)
	return table
}

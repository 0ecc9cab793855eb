package tables

import (
	"math"
	"sort"

	"github.com/tsawler/tessella/extract"
	"github.com/tsawler/tessella/model"
)

// Reconstructor infers canonical table structure from raw extractor grids.
// The raw grid encodes merged cells only implicitly, as geometrically larger
// or duplicated rectangles; the reconstructor recovers the canonical
// column/row grid and assigns column and row spans.
//
// Reconstruct is a pure function of its input; a single Reconstructor is safe
// for concurrent use once configured.
type Reconstructor struct {
	config Config
}

// NewReconstructor creates a reconstructor with the default configuration
func NewReconstructor() *Reconstructor {
	return &Reconstructor{config: DefaultConfig()}
}

// Configure sets the reconstruction configuration
func (r *Reconstructor) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	r.config = config
	return nil
}

// Config returns the active configuration
func (r *Reconstructor) Config() Config {
	return r.config
}

// placedCell is a raw cell resolved to its canonical grid position and spans
type placedCell struct {
	raw     extract.RawCell
	row     int
	col     int
	rowSpan int
	colSpan int
}

// Reconstruct builds a table from one raw grid. It returns nil when the grid
// is malformed beyond use (no rows, no usable cells, fewer than two canonical
// boundaries on either axis) — the documented "no table detected" outcome,
// not an error. Rows whose span sums cannot be made to match the canonical
// column count degrade to uncorrected single-span cells rather than failing
// the table.
func (r *Reconstructor) Reconstruct(grid extract.RawTableGrid) *model.Table {
	rows := usableRows(grid)
	if len(rows) == 0 {
		return nil
	}

	colBounds := r.columnBoundaries(rows)
	rowBounds := r.rowBoundaries(rows)
	if len(colBounds) < 2 || len(rowBounds) < 2 {
		return nil
	}
	nCols := len(colBounds) - 1
	nRows := len(rowBounds) - 1

	// owner tracks which placed cell occupies each canonical grid position;
	// starts collects the cells beginning in each canonical row.
	owner := make([][]*placedCell, nRows)
	for i := range owner {
		owner[i] = make([]*placedCell, nCols)
	}
	starts := make([][]*placedCell, nRows)
	rawRowFor := make([]int, nRows)
	for i := range rawRowFor {
		rawRowFor[i] = -1
	}

	for ri, rawRow := range rows {
		cells := make([]extract.RawCell, len(rawRow))
		copy(cells, rawRow)
		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i].BBox.Left < cells[j].BBox.Left
		})

		for _, c := range cells {
			col, colSpan := coveredIntervals(c.BBox.Left, c.BBox.Right(), colBounds, r.config.CoverageThreshold)
			row, rowSpan := coveredIntervals(c.BBox.Top, c.BBox.Bottom(), rowBounds, r.config.CoverageThreshold)
			if col+colSpan > nCols {
				colSpan = nCols - col
			}
			if row+rowSpan > nRows {
				rowSpan = nRows - row
			}

			if owner[row][col] != nil {
				// The start position is already claimed: either an active
				// merged region the extractor repeated in a later raw row, or
				// a duplicate record. Absorb it instead of re-emitting.
				continue
			}

			p := &placedCell{raw: c, row: row, col: col, rowSpan: rowSpan, colSpan: colSpan}
			for rr := row; rr < row+rowSpan; rr++ {
				for cc := col; cc < col+colSpan; cc++ {
					if owner[rr][cc] == nil {
						owner[rr][cc] = p
					}
				}
			}
			starts[row] = append(starts[row], p)
			if rawRowFor[row] == -1 {
				rawRowFor[row] = ri
			}
		}
	}

	r.degradeMalformedRows(rows, owner, starts, rawRowFor, nCols)

	tableRows := make([]*model.TableRow, nRows)
	for rr := range starts {
		sort.SliceStable(starts[rr], func(i, j int) bool {
			return starts[rr][i].col < starts[rr][j].col
		})
		cells := make([]*model.TableCell, 0, len(starts[rr]))
		for _, p := range starts[rr] {
			cells = append(cells, model.NewTableCell(p.raw.BBox, p.colSpan, p.rowSpan, cellContent(p.raw)))
		}
		tableRows[rr] = &model.TableRow{Cells: cells}
	}

	boxes := make([]model.BBox, 0, grid.CellCount())
	for _, rawRow := range rows {
		for _, c := range rawRow {
			boxes = append(boxes, c.BBox)
		}
	}
	bbox, err := model.Merge(boxes)
	if err != nil {
		return nil
	}

	return &model.Table{
		Rows:        tableRows,
		BBox:        bbox,
		ColumnCount: nCols,
	}
}

// degradeMalformedRows checks the row invariant — colspans of starting cells
// plus continuation widths from active rowspans must cover the canonical
// column count — and rebuilds any violating row from its raw cells with
// uncorrected single spans. Local recovery: sibling rows are untouched.
func (r *Reconstructor) degradeMalformedRows(rows [][]extract.RawCell, owner [][]*placedCell, starts [][]*placedCell, rawRowFor []int, nCols int) {
	for rr := range starts {
		width := 0
		for _, p := range starts[rr] {
			width += p.colSpan
		}
		for cc := 0; cc < nCols; cc++ {
			if o := owner[rr][cc]; o != nil && o.row < rr && o.col == cc {
				width += o.colSpan
			}
		}
		if width == nCols || rawRowFor[rr] == -1 {
			continue
		}

		raw := rows[rawRowFor[rr]]
		degraded := make([]*placedCell, 0, len(raw))
		for ci, c := range raw {
			degraded = append(degraded, &placedCell{
				raw:     c,
				row:     rr,
				col:     ci,
				rowSpan: 1,
				colSpan: 1,
			})
		}
		sort.SliceStable(degraded, func(i, j int) bool {
			return degraded[i].raw.BBox.Left < degraded[j].raw.BBox.Left
		})
		for ci, p := range degraded {
			p.col = ci
		}
		starts[rr] = degraded
	}
}

// usableRows drops degenerate cells and empty rows from the grid
func usableRows(grid extract.RawTableGrid) [][]extract.RawCell {
	rows := make([][]extract.RawCell, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		cells := make([]extract.RawCell, 0, len(row))
		for _, c := range row {
			if c.BBox.IsValid() && !c.BBox.IsEmpty() {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}

// columnBoundaries derives the canonical column boundary set from the raw
// row with the greatest cell count: that row is assumed to reflect the true
// column structure, coarser rows contain merged cells. Its cells' left and
// right edges, deduplicated within the boundary tolerance, are the canonical
// boundaries.
func (r *Reconstructor) columnBoundaries(rows [][]extract.RawCell) []float64 {
	ref := rows[0]
	for _, row := range rows[1:] {
		if len(row) > len(ref) {
			ref = row
		}
	}

	vals := make([]float64, 0, 2*len(ref))
	for _, c := range ref {
		vals = append(vals, c.BBox.Left, c.BBox.Right())
	}
	return clusterBoundaries(vals, r.config.BoundaryTolerance)
}

// rowBoundaries derives the canonical row boundary set symmetrically: the top
// edge of every cell across the table plus the lowest bottom edge, again
// deduplicated within tolerance. Using all tops keeps vertically merged cells
// from hiding the row bands their neighbors define.
func (r *Reconstructor) rowBoundaries(rows [][]extract.RawCell) []float64 {
	var vals []float64
	bottom := math.Inf(-1)
	for _, row := range rows {
		for _, c := range row {
			vals = append(vals, c.BBox.Top)
			if b := c.BBox.Bottom(); b > bottom {
				bottom = b
			}
		}
	}
	if len(vals) == 0 {
		return nil
	}
	vals = append(vals, bottom)
	return clusterBoundaries(vals, r.config.BoundaryTolerance)
}

// clusterBoundaries sorts boundary coordinates and merges values within the
// tolerance into one boundary at the cluster mean.
func clusterBoundaries(vals []float64, tolerance float64) []float64 {
	if len(vals) == 0 {
		return nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	var bounds []float64
	sum := sorted[0]
	count := 1
	anchor := sorted[0]
	for _, v := range sorted[1:] {
		if v-anchor <= tolerance {
			sum += v
			count++
			continue
		}
		bounds = append(bounds, sum/float64(count))
		sum = v
		count = 1
		anchor = v
	}
	bounds = append(bounds, sum/float64(count))
	return bounds
}

// coveredIntervals counts the canonical intervals between bounds whose width
// the [lo, hi) extent covers beyond the threshold, returning the first
// covered interval and the count. A cell too jittery to cover any interval
// falls back to the single interval containing its center.
func coveredIntervals(lo, hi float64, bounds []float64, threshold float64) (start, count int) {
	start = -1
	for i := 0; i+1 < len(bounds); i++ {
		width := bounds[i+1] - bounds[i]
		if width <= 0 {
			continue
		}
		overlap := math.Min(hi, bounds[i+1]) - math.Max(lo, bounds[i])
		if overlap/width > threshold {
			if start == -1 {
				start = i
			}
			count++
		}
	}
	if start != -1 {
		return start, count
	}

	center := (lo + hi) / 2
	start = len(bounds) - 2
	for i := 0; i+1 < len(bounds); i++ {
		if center < bounds[i+1] {
			start = i
			break
		}
	}
	if start < 0 {
		start = 0
	}
	return start, 1
}

// cellContent wraps a raw cell's text as the cell's owned text elements
func cellContent(c extract.RawCell) []model.Element {
	if c.Text == "" {
		return nil
	}
	return []model.Element{model.ParagraphFromText(c.Text, c.BBox, model.Font{})}
}

package model

import "strings"

// Table represents a reconstructed table with cells organized in rows.
// Tables are built once by the reconstruction algorithm and never mutated
// afterward.
type Table struct {
	Rows []*TableRow
	BBox BBox

	// ColumnCount is the canonical column count inferred from the raw grid.
	ColumnCount int
}

func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) BoundingBox() BBox { return t.BBox }

func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row.Cells {
			sb.WriteString(cell.GetText())
			if j < len(row.Cells)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// TableRow holds the cells that begin in one canonical row, left to right.
// A cell from a prior row whose rowspan extends into this row is not
// re-listed here; it is known by position only.
type TableRow struct {
	Cells []*TableCell
}

// TableCell represents one reconstructed cell. ColSpan and RowSpan count the
// canonical columns and rows the cell occupies and are always at least 1.
type TableCell struct {
	BBox    BBox
	ColSpan int
	RowSpan int
	Content []Element
}

// NewTableCell creates a cell with the given spans, clamped to a minimum of 1
func NewTableCell(bbox BBox, colSpan, rowSpan int, content []Element) *TableCell {
	if colSpan < 1 {
		colSpan = 1
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	return &TableCell{BBox: bbox, ColSpan: colSpan, RowSpan: rowSpan, Content: content}
}

func (c *TableCell) GetText() string {
	parts := make([]string, 0, len(c.Content))
	for _, el := range c.Content {
		if te, ok := el.(TextElement); ok {
			parts = append(parts, te.GetText())
		}
	}
	return strings.Join(parts, " ")
}

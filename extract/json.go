package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/tessella/model"
)

// Normalizer converts an extractor-native bbox [x0, y0, x1, y1] to the
// model's top-down convention. Corner order is not assumed.
type Normalizer func(x0, y0, x1, y1 float64) model.BBox

// TopDown returns a Normalizer for payloads already in top-down coordinates
// (y grows toward the bottom of the page).
func TopDown() Normalizer {
	return func(x0, y0, x1, y1 float64) model.BBox {
		return model.NewBBoxFromCorners(
			model.Point{X: x0, Y: y0},
			model.Point{X: x1, Y: y1},
		)
	}
}

// BottomUp returns a Normalizer for PDF-style payloads where y grows upward
// from the bottom of a page of the given height.
func BottomUp(pageHeight float64) Normalizer {
	return func(x0, y0, x1, y1 float64) model.BBox {
		return model.NewBBoxFromCorners(
			model.Point{X: x0, Y: pageHeight - y0},
			model.Point{X: x1, Y: pageHeight - y1},
		)
	}
}

// cellPayload mirrors one raw cell record in the wire format:
// {"bbox": [x0, y0, x1, y1], "text": "..."}
type cellPayload struct {
	BBox [4]float64 `json:"bbox"`
	Text string     `json:"text"`
}

// DecodePage decodes one page's table payload: an array of tables, each an
// array of rows, each an array of cell records. An empty array means "no
// tables detected" and decodes to a nil slice. Cell text is NFC-normalized
// with collapsed whitespace.
func DecodePage(r io.Reader, normalize Normalizer) ([]RawTableGrid, error) {
	var payload [][][]cellPayload
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("extract: decoding table payload: %w", err)
	}

	if len(payload) == 0 {
		return nil, nil
	}

	grids := make([]RawTableGrid, 0, len(payload))
	for _, table := range payload {
		grid := RawTableGrid{Rows: make([][]RawCell, 0, len(table))}
		for _, row := range table {
			cells := make([]RawCell, 0, len(row))
			for _, c := range row {
				cells = append(cells, RawCell{
					BBox: normalize(c.BBox[0], c.BBox[1], c.BBox[2], c.BBox[3]),
					Text: CleanText(c.Text),
				})
			}
			grid.Rows = append(grid.Rows, cells)
		}
		grids = append(grids, grid)
	}
	return grids, nil
}

// CleanText normalizes extractor-reported text to NFC and collapses runs of
// whitespace to single spaces.
func CleanText(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

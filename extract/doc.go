// Package extract defines the extractor capability boundary: the contract
// between the document core and the external tools that detect tables on a
// page.
//
// The core depends only on the [Extractor] interface, never on a concrete
// tool. Concrete collaborators (wrapping pdfminer-, pdf.js-, or
// camelot-backed extraction) are swapped by dependency injection.
//
// # Raw grids
//
// An extractor reports each detected table as a [RawTableGrid]: ordered rows
// of [RawCell] rectangles with text. Merged cells are not encoded explicitly;
// they appear as geometrically larger or duplicated rectangles, and span
// inference is the reconstruction algorithm's job (see the tables package).
//
// # Wire format
//
// [DecodePage] reads the JSON payload exchanged with collaborators: one array
// per page, each table an array of rows, each row an array of
// {"bbox": [x0, y0, x1, y1], "text": ...} records. Coordinates are normalized
// to the model's top-down convention by a [Normalizer]; [TopDown] and
// [BottomUp] cover the two native conventions in the wild. An empty array is
// "no tables detected", not an error.
package extract

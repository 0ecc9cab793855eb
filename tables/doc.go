// Package tables reconstructs canonical table structure from the raw cell
// grids reported by external table extractors.
//
// Extractors report a grid of plain rectangles: merged cells are not encoded
// explicitly, they appear as geometrically larger rectangles or as the same
// region repeated once per raw row it covers. The [Reconstructor] recovers
// the true structure in five steps:
//
//  1. Canonical column boundaries from the raw row with the greatest cell
//     count, deduplicated within a tolerance.
//  2. Colspan per cell: the number of canonical column intervals the cell
//     covers beyond the coverage threshold.
//  3. Canonical row boundaries symmetrically, then rowspan per cell. A cell
//     spanning several rows is recorded once, in its topmost row; repeats of
//     the same merged region in later raw rows are absorbed.
//  4. Assembly of [model.TableRow] values top-to-bottom, cells left-to-right,
//     maintaining the row invariant: starting colspans plus rowspan
//     continuation widths equal the canonical column count.
//  5. Splicing: elements subsumed by the table's bounding box are removed
//     from the page and the table takes the first removed element's position.
//
// # Failure policy
//
// A grid with no usable rows or fewer than two boundaries on either axis is
// discarded — the documented "no table detected" outcome, never an error. A
// row whose span sum cannot match the canonical column count degrades to
// uncorrected single-span cells; the rest of the table reconstructs normally.
// Partial, degraded reconstruction is preferred to failing the document.
//
// # Configuration
//
// Tolerances are controlled by [Config]:
//
//	cfg := tables.DefaultConfig()
//	cfg.CoverageThreshold = 0.6
//	r := tables.NewReconstructor()
//	r.Configure(cfg)
//
// [LoadConfig] reads YAML overrides from a file.
package tables

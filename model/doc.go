// Package model provides the hierarchical document model produced from raw
// page-layout primitives.
//
// This package defines the user-facing data structures that all extraction
// and reconstruction operations ultimately produce, making them the primary
// API for consuming structured content.
//
// # Document Structure
//
// The [Document] type owns ordered pages:
//
//	doc := model.NewDocument()
//	doc.AddPage(page)
//
// Each [Page] contains dimensions, a 1-based page number, and an ordered list
// of [Element] values in extraction order.
//
// # Elements
//
// All page content implements the [Element] interface. The concrete types
// form an ownership tree:
//
//   - [Paragraph] - ordered words
//   - [Word] - ordered characters with a representative [Font]
//   - [Character] - a single glyph
//   - [Table] - rows of cells with column and row spans
//   - [Image] - placed image
//
// Each container exclusively owns its children. Container bounding boxes are
// derived from their children at construction and are never independently
// authoritative afterward.
//
// # Tables
//
// [Table] owns ordered [TableRow] values; each row owns the [TableCell]
// values that begin in it. A cell spanning r rows appears once, in its
// topmost row; the rows it extends into do not re-list it. For every row,
// the colspan sum of its own cells plus the widths of rowspan continuations
// from prior rows equals the table's canonical column count.
//
// # Geometry
//
// [BBox] is an immutable rectangle in a top-down coordinate convention (Top
// grows toward the bottom of the page) with intersection, containment,
// overlap-proportion, and merge operations. [Merge] of an empty list is an
// error, never a guessed degenerate box.
//
// # Typed queries
//
// [ElementsOf] and [DocumentElementsOf] perform an ordered, type-filtered
// traversal over a page or document:
//
//	words := model.ElementsOf[*model.Word](page)
package model

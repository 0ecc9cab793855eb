package model

import (
	"errors"
	"math"
)

// ErrEmptyMerge is returned by Merge when called with no boxes. The smallest
// box containing nothing is undefined, so callers must guard the empty case.
var ErrEmptyMerge = errors.New("model: merge of empty bounding box list")

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box (rectangle) in a top-down page coordinate
// system: Top increases toward the bottom of the page, Left increases
// rightward. Sources that report bottom-up coordinates must be normalized
// before a BBox is constructed; the algebra itself is convention-agnostic.
type BBox struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from its left/top corner and dimensions
func NewBBox(left, top, width, height float64) BBox {
	return BBox{Left: left, Top: top, Width: width, Height: height}
}

// NewBBoxFromCorners creates a bounding box from two opposite corners
func NewBBoxFromCorners(p1, p2 Point) BBox {
	left := math.Min(p1.X, p2.X)
	top := math.Min(p1.Y, p2.Y)
	return BBox{
		Left:   left,
		Top:    top,
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the bottom edge Y coordinate (below Top in page order)
func (b BBox) Bottom() float64 {
	return b.Top + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.Left + b.Width/2,
		Y: b.Top + b.Height/2,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IsValid returns true if the bounding box has non-negative dimensions
func (b BBox) IsValid() bool {
	return b.Width >= 0 && b.Height >= 0
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left ||
		b.Left > other.Right() ||
		b.Bottom() < other.Top ||
		b.Top > other.Bottom())
}

// Contains checks if another bounding box lies entirely inside this one
func (b BBox) Contains(other BBox) bool {
	return other.Left >= b.Left && other.Right() <= b.Right() &&
		other.Top >= b.Top && other.Bottom() <= b.Bottom()
}

// ContainsPoint checks if a point is inside the bounding box
func (b BBox) ContainsPoint(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right() &&
		p.Y >= b.Top && p.Y <= b.Bottom()
}

// Overlap returns the intersection of two bounding boxes together with, for
// each input, the fraction of that input's own area covered by the
// intersection. Both proportions are in [0, 1]. ok is false when the boxes
// do not intersect or when either box is degenerate.
func (b BBox) Overlap(other BBox) (intersection BBox, bProportion, otherProportion float64, ok bool) {
	if !b.Intersects(other) {
		return BBox{}, 0, 0, false
	}

	left := math.Max(b.Left, other.Left)
	top := math.Max(b.Top, other.Top)
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	intersection = BBox{
		Left:   left,
		Top:    top,
		Width:  right - left,
		Height: bottom - top,
	}

	if b.Area() == 0 || other.Area() == 0 {
		return BBox{}, 0, 0, false
	}

	return intersection,
		intersection.Area() / b.Area(),
		intersection.Area() / other.Area(),
		true
}

// Union returns the smallest bounding box containing both boxes
func (b BBox) Union(other BBox) BBox {
	left := math.Min(b.Left, other.Left)
	top := math.Min(b.Top, other.Top)
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		Left:   left,
		Top:    top,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		Left:   b.Left - margin,
		Top:    b.Top - margin,
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}

// Merge returns the smallest bounding box containing all input boxes.
// It returns ErrEmptyMerge for an empty input rather than guessing a
// degenerate box.
func Merge(boxes []BBox) (BBox, error) {
	if len(boxes) == 0 {
		return BBox{}, ErrEmptyMerge
	}

	merged := boxes[0]
	for _, box := range boxes[1:] {
		merged = merged.Union(box)
	}
	return merged, nil
}

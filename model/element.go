package model

import "strings"

// ElementType represents the type of page element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeWord
	ElementTypeCharacter
	ElementTypeTable
	ElementTypeImage
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeWord:
		return "Word"
	case ElementTypeCharacter:
		return "Character"
	case ElementTypeTable:
		return "Table"
	case ElementTypeImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Element is the interface for all page elements
type Element interface {
	Type() ElementType
	BoundingBox() BBox
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Font identifies the typeface and size of a piece of text
type Font struct {
	Name string
	Size float64
}

// Character represents a single glyph with its position and font
type Character struct {
	Glyph rune
	BBox  BBox
	Font  Font
}

// NewCharacter creates a character element
func NewCharacter(glyph rune, bbox BBox, font Font) *Character {
	return &Character{Glyph: glyph, BBox: bbox, Font: font}
}

func (c *Character) Type() ElementType { return ElementTypeCharacter }
func (c *Character) BoundingBox() BBox { return c.BBox }
func (c *Character) GetText() string   { return string(c.Glyph) }

// Word represents an ordered run of characters sharing a representative font.
// The bounding box and font are derived from the characters at construction;
// the word exclusively owns its characters afterward.
type Word struct {
	Characters []*Character
	Font       Font

	bbox BBox
}

// NewWord creates a word from its characters. The word's bounding box is the
// merge of the character boxes and its font is the most frequent character
// font. A word with no characters has a zero bounding box.
func NewWord(chars []*Character) *Word {
	w := &Word{Characters: chars}
	if len(chars) == 0 {
		return w
	}

	boxes := make([]BBox, len(chars))
	for i, c := range chars {
		boxes[i] = c.BBox
	}
	merged, _ := Merge(boxes)
	w.bbox = merged
	w.Font = DominantFont(chars)
	return w
}

func (w *Word) Type() ElementType { return ElementTypeWord }
func (w *Word) BoundingBox() BBox { return w.bbox }

func (w *Word) GetText() string {
	var sb strings.Builder
	for _, c := range w.Characters {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// Paragraph represents an ordered run of words. Its bounding box is derived
// from the word boxes at construction.
type Paragraph struct {
	Words []*Word

	bbox BBox
}

// NewParagraph creates a paragraph from its words
func NewParagraph(words []*Word) *Paragraph {
	p := &Paragraph{Words: words}
	boxes := make([]BBox, 0, len(words))
	for _, w := range words {
		boxes = append(boxes, w.BoundingBox())
	}
	if len(boxes) > 0 {
		merged, _ := Merge(boxes)
		p.bbox = merged
	}
	return p
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) BoundingBox() BBox { return p.bbox }

func (p *Paragraph) GetText() string {
	parts := make([]string, len(p.Words))
	for i, w := range p.Words {
		parts[i] = w.GetText()
	}
	return strings.Join(parts, " ")
}

// Image represents an embedded image placed on the page. Decoding image
// content is a collaborator concern; the model records placement only.
type Image struct {
	BBox    BBox
	AltText string
}

func (i *Image) Type() ElementType { return ElementTypeImage }
func (i *Image) BoundingBox() BBox { return i.BBox }

// ParagraphFromText builds a paragraph from run-level text and geometry, for
// sources that report text without per-glyph positions. The run box is divided
// among words proportionally to rune count, and each word box is divided
// equally among its characters. Approximate by construction.
func ParagraphFromText(text string, bbox BBox, font Font) *Paragraph {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return NewParagraph(nil)
	}

	// Total runes including single separating spaces, for width allocation.
	total := len(fields) - 1
	for _, f := range fields {
		total += len([]rune(f))
	}

	perRune := bbox.Width / float64(total)
	words := make([]*Word, 0, len(fields))
	x := bbox.Left
	for _, f := range fields {
		runes := []rune(f)
		chars := make([]*Character, len(runes))
		for i, r := range runes {
			chars[i] = NewCharacter(r, BBox{
				Left:   x + float64(i)*perRune,
				Top:    bbox.Top,
				Width:  perRune,
				Height: bbox.Height,
			}, font)
		}
		words = append(words, NewWord(chars))
		x += float64(len(runes)+1) * perRune
	}
	return NewParagraph(words)
}

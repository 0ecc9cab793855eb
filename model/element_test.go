package model

import (
	"testing"
)

// charRun builds a run of characters starting at x with the given width each
func charRun(text string, x, y, charWidth, height float64, font Font) []*Character {
	chars := make([]*Character, 0, len(text))
	for i, r := range []rune(text) {
		chars = append(chars, NewCharacter(r, BBox{
			Left:   x + float64(i)*charWidth,
			Top:    y,
			Width:  charWidth,
			Height: height,
		}, font))
	}
	return chars
}

func TestWordConstruction(t *testing.T) {
	font := Font{Name: "Helvetica", Size: 12}
	word := NewWord(charRun("table", 10, 20, 5, 10, font))

	if got := word.GetText(); got != "table" {
		t.Errorf("GetText() = %q, want %q", got, "table")
	}
	wantBox := BBox{10, 20, 25, 10}
	if word.BoundingBox() != wantBox {
		t.Errorf("BoundingBox() = %+v, want %+v", word.BoundingBox(), wantBox)
	}
	if word.Font != font {
		t.Errorf("Font = %+v, want %+v", word.Font, font)
	}
}

func TestWordDominantFont(t *testing.T) {
	regular := Font{Name: "Helvetica", Size: 12}
	bold := Font{Name: "Helvetica-Bold", Size: 12}

	chars := charRun("abc", 0, 0, 5, 10, regular)
	chars = append(chars, charRun("d", 15, 0, 5, 10, bold)...)

	word := NewWord(chars)
	if word.Font != regular {
		t.Errorf("Font = %+v, want dominant %+v", word.Font, regular)
	}
}

func TestFontsByFrequency(t *testing.T) {
	a := Font{Name: "A", Size: 10}
	b := Font{Name: "B", Size: 10}
	c := Font{Name: "C", Size: 10}

	var chars []*Character
	for _, f := range []Font{a, b, b, c, b, a} {
		chars = append(chars, NewCharacter('x', BBox{0, 0, 1, 1}, f))
	}

	ranked := FontsByFrequency(chars)
	if len(ranked) != 3 {
		t.Fatalf("FontsByFrequency() returned %d fonts, want 3", len(ranked))
	}
	if ranked[0].Font != b || ranked[0].Count != 3 {
		t.Errorf("ranked[0] = %+v, want {B 3}", ranked[0])
	}
	// a and c tie at counts 2 and 1; a appears first in input order
	if ranked[1].Font != a || ranked[1].Count != 2 {
		t.Errorf("ranked[1] = %+v, want {A 2}", ranked[1])
	}
	if ranked[2].Font != c || ranked[2].Count != 1 {
		t.Errorf("ranked[2] = %+v, want {C 1}", ranked[2])
	}
}

func TestDominantFontEmpty(t *testing.T) {
	if got := DominantFont(nil); got != (Font{}) {
		t.Errorf("DominantFont(nil) = %+v, want zero Font", got)
	}
}

func TestParagraphText(t *testing.T) {
	font := Font{Name: "Times", Size: 10}
	words := []*Word{
		NewWord(charRun("hello", 0, 0, 5, 10, font)),
		NewWord(charRun("world", 30, 0, 5, 10, font)),
	}
	para := NewParagraph(words)

	if got := para.GetText(); got != "hello world" {
		t.Errorf("GetText() = %q, want %q", got, "hello world")
	}
	wantBox := BBox{0, 0, 55, 10}
	if para.BoundingBox() != wantBox {
		t.Errorf("BoundingBox() = %+v, want %+v", para.BoundingBox(), wantBox)
	}
}

func TestParagraphFromText(t *testing.T) {
	bbox := BBox{0, 0, 110, 10}
	para := ParagraphFromText("  ab   cde ", bbox, Font{Name: "F", Size: 9})

	if got := para.GetText(); got != "ab cde" {
		t.Errorf("GetText() = %q, want %q", got, "ab cde")
	}
	if len(para.Words) != 2 {
		t.Fatalf("len(Words) = %d, want 2", len(para.Words))
	}
	// Paragraph box stays within the source box
	pb := para.BoundingBox()
	if pb.Left < bbox.Left-epsilon || pb.Right() > bbox.Right()+epsilon {
		t.Errorf("paragraph box %+v escapes source box %+v", pb, bbox)
	}
	if len(para.Words[0].Characters) != 2 || len(para.Words[1].Characters) != 3 {
		t.Errorf("character counts = %d, %d, want 2, 3",
			len(para.Words[0].Characters), len(para.Words[1].Characters))
	}
}

func TestElementTypeString(t *testing.T) {
	tests := []struct {
		et   ElementType
		want string
	}{
		{ElementTypeParagraph, "Paragraph"},
		{ElementTypeWord, "Word"},
		{ElementTypeCharacter, "Character"},
		{ElementTypeTable, "Table"},
		{ElementTypeImage, "Image"},
		{ElementTypeUnknown, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTableGetText(t *testing.T) {
	cellA := NewTableCell(BBox{0, 0, 10, 10}, 1, 1,
		[]Element{ParagraphFromText("a", BBox{0, 0, 10, 10}, Font{})})
	cellB := NewTableCell(BBox{10, 0, 10, 10}, 1, 1,
		[]Element{ParagraphFromText("b", BBox{10, 0, 10, 10}, Font{})})

	table := &Table{
		Rows:        []*TableRow{{Cells: []*TableCell{cellA, cellB}}},
		BBox:        BBox{0, 0, 20, 10},
		ColumnCount: 2,
	}

	if got := table.GetText(); got != "a\tb\n" {
		t.Errorf("GetText() = %q, want %q", got, "a\tb\n")
	}
}

func TestNewTableCellClampsSpans(t *testing.T) {
	cell := NewTableCell(BBox{0, 0, 10, 10}, 0, -1, nil)
	if cell.ColSpan != 1 || cell.RowSpan != 1 {
		t.Errorf("spans = %d, %d, want 1, 1", cell.ColSpan, cell.RowSpan)
	}
}

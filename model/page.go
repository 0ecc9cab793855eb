package model

// Page represents a single page with its dimensions and an ordered list of
// elements in extraction order. Readers may re-derive reading order; the
// model does not require it.
type Page struct {
	Number   int  // 1-indexed page number
	BBox     BBox // Page dimensions
	Elements []Element
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		BBox:     BBox{Width: width, Height: height},
		Elements: make([]Element, 0),
	}
}

// AddElement adds an element to the page
func (p *Page) AddElement(elem Element) {
	p.Elements = append(p.Elements, elem)
}

// Splice atomically removes the elements at the given indexes and inserts one
// element at the position of the first removed index. With no removals the
// element is appended. Out-of-range and duplicate indexes are ignored. One
// rebuild of the list, no incremental deletion.
func (p *Page) Splice(remove []int, insert Element) {
	if len(remove) == 0 {
		p.Elements = append(p.Elements, insert)
		return
	}

	drop := make(map[int]bool, len(remove))
	for _, idx := range remove {
		if idx >= 0 && idx < len(p.Elements) {
			drop[idx] = true
		}
	}
	if len(drop) == 0 {
		p.Elements = append(p.Elements, insert)
		return
	}

	first := len(p.Elements)
	for idx := range drop {
		if idx < first {
			first = idx
		}
	}

	result := make([]Element, 0, len(p.Elements)-len(drop)+1)
	for i, el := range p.Elements {
		if i == first {
			result = append(result, insert)
		}
		if drop[i] {
			continue
		}
		result = append(result, el)
	}
	p.Elements = result
}

// ExtractText concatenates the text of all text elements on the page
func (p *Page) ExtractText() string {
	var text string
	for _, elem := range p.Elements {
		if te, ok := elem.(TextElement); ok {
			text += te.GetText() + "\n"
		}
	}
	return text
}

// Tables returns all table elements on the page in element order
func (p *Page) Tables() []*Table {
	var tables []*Table
	for _, elem := range p.Elements {
		if table, ok := elem.(*Table); ok {
			tables = append(tables, table)
		}
	}
	return tables
}

// ElementsInRegion returns elements whose bounding boxes intersect the region
func (p *Page) ElementsInRegion(bbox BBox) []Element {
	var elements []Element
	for _, elem := range p.Elements {
		if bbox.Intersects(elem.BoundingBox()) {
			elements = append(elements, elem)
		}
	}
	return elements
}

// ElementsOf returns all elements of type T on the page in original element
// order, descending into paragraphs, words, and table cells.
func ElementsOf[T Element](p *Page) []T {
	var result []T
	for _, elem := range p.Elements {
		walkElement(elem, func(e Element) {
			if typed, ok := e.(T); ok {
				result = append(result, typed)
			}
		})
	}
	return result
}

// walkElement visits an element and its owned descendants in order
func walkElement(elem Element, visit func(Element)) {
	visit(elem)
	switch e := elem.(type) {
	case *Paragraph:
		for _, w := range e.Words {
			walkElement(w, visit)
		}
	case *Word:
		for _, c := range e.Characters {
			walkElement(c, visit)
		}
	case *Table:
		for _, row := range e.Rows {
			for _, cell := range row.Cells {
				for _, content := range cell.Content {
					walkElement(content, visit)
				}
			}
		}
	}
}

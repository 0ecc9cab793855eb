package model

// Document represents a complete document with its extracted structure
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and assigns its 1-based page number
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// ExtractText returns all text content concatenated page by page
func (d *Document) ExtractText() string {
	var text string
	for _, page := range d.Pages {
		text += page.ExtractText() + "\n"
	}
	return text
}

// Tables returns all tables from all pages in page then element order
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, page := range d.Pages {
		tables = append(tables, page.Tables()...)
	}
	return tables
}

// DocumentElementsOf returns all elements of type T across the document in
// page then element order.
func DocumentElementsOf[T Element](d *Document) []T {
	var result []T
	for _, page := range d.Pages {
		result = append(result, ElementsOf[T](page)...)
	}
	return result
}

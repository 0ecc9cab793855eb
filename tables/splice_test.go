package tables

import (
	"testing"

	"github.com/tsawler/tessella/extract"
	"github.com/tsawler/tessella/model"
)

func para(text string, bbox model.BBox) *model.Paragraph {
	return model.ParagraphFromText(text, bbox, model.Font{Name: "Test", Size: 10})
}

func TestSubsumed(t *testing.T) {
	table := model.BBox{Left: 0, Top: 0, Width: 60, Height: 30}

	elems := []model.Element{
		para("inside", model.BBox{Left: 5, Top: 5, Width: 20, Height: 10}),
		para("outside", model.BBox{Left: 100, Top: 100, Width: 20, Height: 10}),
		para("mostly inside", model.BBox{Left: 50, Top: 0, Width: 12, Height: 10}),
		para("mostly outside", model.BBox{Left: 58, Top: 0, Width: 40, Height: 10}),
		&model.Table{BBox: model.BBox{Left: 0, Top: 0, Width: 60, Height: 30}},
	}

	got := Subsumed(elems, table, 0.5)
	want := []int{0, 2}
	if len(got) != len(want) {
		t.Fatalf("Subsumed() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Subsumed()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSubsumedNeverRemovesTables(t *testing.T) {
	region := model.BBox{Left: 0, Top: 0, Width: 100, Height: 100}
	elems := []model.Element{
		&model.Table{BBox: model.BBox{Left: 10, Top: 10, Width: 20, Height: 20}},
	}
	if got := Subsumed(elems, region, 0.5); len(got) != 0 {
		t.Errorf("Subsumed() removed an existing table: %v", got)
	}
}

func TestApplySplicesTableIntoPage(t *testing.T) {
	page := model.NewPage(612, 792)
	page.AddElement(para("heading", model.BBox{Left: 0, Top: 0, Width: 60, Height: 10}))
	page.AddElement(para("row text a", model.BBox{Left: 0, Top: 20, Width: 25, Height: 10}))
	page.AddElement(para("row text b", model.BBox{Left: 30, Top: 20, Width: 25, Height: 10}))
	page.AddElement(para("footer", model.BBox{Left: 0, Top: 100, Width: 60, Height: 10}))

	grid := extract.RawTableGrid{Rows: [][]extract.RawCell{
		{cell(0, 20, 30, 30, "a"), cell(30, 20, 60, 30, "b")},
		{cell(0, 30, 30, 40, "c"), cell(30, 30, 60, 40, "d")},
	}}

	table := NewReconstructor().Apply(page, grid)
	if table == nil {
		t.Fatal("Apply() returned nil")
	}

	// heading, table (at the first removed element's position), footer
	if len(page.Elements) != 3 {
		t.Fatalf("page has %d elements, want 3", len(page.Elements))
	}
	if _, ok := page.Elements[1].(*model.Table); !ok {
		t.Errorf("Elements[1] = %T, want *model.Table", page.Elements[1])
	}

	// Splice correctness: no remaining non-table element overlaps the table
	// region above the subsumption threshold.
	threshold := NewReconstructor().Config().SubsumeThreshold
	for i, el := range page.Elements {
		if el.Type() == model.ElementTypeTable {
			continue
		}
		bb := el.BoundingBox()
		if table.BBox.Contains(bb) {
			t.Errorf("Elements[%d] still contained in table region", i)
		}
		if _, prop, _, ok := bb.Overlap(table.BBox); ok && prop > threshold {
			t.Errorf("Elements[%d] overlaps table region at %v", i, prop)
		}
	}
}

func TestApplyDiscardedGridLeavesPageUnchanged(t *testing.T) {
	page := model.NewPage(612, 792)
	page.AddElement(para("text", model.BBox{Left: 0, Top: 0, Width: 30, Height: 10}))

	if table := NewReconstructor().Apply(page, extract.RawTableGrid{}); table != nil {
		t.Fatalf("Apply() = %+v for an empty grid, want nil", table)
	}
	if len(page.Elements) != 1 {
		t.Errorf("page has %d elements, want 1 (unchanged)", len(page.Elements))
	}
}

func TestApplyAppendsWhenNothingSubsumed(t *testing.T) {
	page := model.NewPage(612, 792)
	page.AddElement(para("far away", model.BBox{Left: 500, Top: 700, Width: 30, Height: 10}))

	grid := extract.RawTableGrid{Rows: [][]extract.RawCell{
		{cell(0, 0, 10, 10, "a"), cell(10, 0, 20, 10, "b")},
	}}
	if table := NewReconstructor().Apply(page, grid); table == nil {
		t.Fatal("Apply() returned nil")
	}
	if len(page.Elements) != 2 {
		t.Fatalf("page has %d elements, want 2", len(page.Elements))
	}
	if _, ok := page.Elements[1].(*model.Table); !ok {
		t.Errorf("table not appended at end of element list")
	}
}

package model

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewInterval_Valid(t *testing.T) {
	iv, err := NewInterval(1.5, 3.0, "CLAY", "Firm clay", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.Thickness() != 1.5 {
		t.Errorf("expected thickness 1.5, got %f", iv.Thickness())
	}
	if iv.SourceIndex != 4 {
		t.Errorf("expected source index 4, got %d", iv.SourceIndex)
	}
}

func TestNewInterval_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		top, base float64
	}{
		{"base equals top", 2, 2},
		{"base above top", 3, 2},
		{"negative top", -1, 2},
		{"NaN base", 0, math.NaN()},
		{"infinite base", 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInterval(tt.top, tt.base, "X", "", 0)
			if !errors.Is(err, ErrInvalidInterval) {
				t.Errorf("expected ErrInvalidInterval, got %v", err)
			}
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	iv := Interval{Top: 8, Base: 15}

	tests := []struct {
		top, bottom float64
		want        bool
	}{
		{0, 10, true},
		{10, 20, true},
		{15, 25, false},
		{0, 8, false},
	}

	for _, tt := range tests {
		if got := iv.Overlaps(tt.top, tt.bottom); got != tt.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.top, tt.bottom, got, tt.want)
		}
	}
}

func TestInterval_Caption(t *testing.T) {
	iv := Interval{Top: 0, Base: 9.5, Code: "101"}
	got := iv.Caption()
	if got != "Depth 0.00–9.50m (Code: 101)" {
		t.Errorf("unexpected caption %q", got)
	}
}

func TestClass_String(t *testing.T) {
	if ClassOnPage.String() != "on_page" {
		t.Errorf("got %s", ClassOnPage.String())
	}
	if ClassLayerContinues.String() != "layer_continues" {
		t.Errorf("got %s", ClassLayerContinues.String())
	}
	if ClassLayerComplete.String() != "layer_complete" {
		t.Errorf("got %s", ClassLayerComplete.String())
	}
	if Class(99).String() != "unknown" {
		t.Errorf("got %s", Class(99).String())
	}
}

func TestSegment_Continues(t *testing.T) {
	seg := Segment{Top: 8, Base: 10, Interval: Interval{Top: 8, Base: 15}}
	if !seg.Continues(10) {
		t.Error("expected layer to continue past 10")
	}

	edge := Segment{Top: 8, Base: 10, Interval: Interval{Top: 8, Base: 10}}
	if edge.Continues(10) {
		t.Error("layer ending exactly on the page bottom must not continue")
	}
}

func TestTextBox_Overlaps(t *testing.T) {
	above := TextBox{YTop: 100, YBottom: 80}
	if (TextBox{YTop: 80, YBottom: 60}).Overlaps(above) {
		t.Error("touching boxes should not overlap")
	}
	if !(TextBox{YTop: 85, YBottom: 60}).Overlaps(above) {
		t.Error("expected overlap")
	}
}

func TestLayout_SheetAccessors(t *testing.T) {
	layout := &Layout{
		Sheets: []Sheet{
			&Page{Number: 1},
			&Page{Number: 2},
			&OverflowPage{SourcePage: 1, Title: OverflowLabel(1)},
		},
	}

	if layout.PageCount() != 2 {
		t.Errorf("expected 2 pages, got %d", layout.PageCount())
	}
	if layout.SheetCount() != 3 {
		t.Errorf("expected 3 sheets, got %d", layout.SheetCount())
	}

	overflow := layout.OverflowPages()
	if len(overflow) != 1 || overflow[0].Label() != "1 Overflow" {
		t.Errorf("unexpected overflow pages: %+v", overflow)
	}
	if overflow[0].Kind() != SheetKindOverflow {
		t.Errorf("expected overflow kind, got %s", overflow[0].Kind())
	}
}

func TestPage_RowsByClass(t *testing.T) {
	page := &Page{
		Rows: []LayoutRow{
			{Class: ClassOnPage},
			{Class: ClassLayerComplete},
			{Class: ClassOnPage},
		},
	}

	if n := len(page.RowsByClass(ClassOnPage)); n != 2 {
		t.Errorf("expected 2 on-page rows, got %d", n)
	}
	if n := len(page.RowsByClass(ClassLayerContinues)); n != 0 {
		t.Errorf("expected 0 continuing rows, got %d", n)
	}
}

func TestNewBBoxFromEdges(t *testing.T) {
	b := NewBBoxFromEdges(30, 10, 100, 12)
	if b.X != 10 || b.Y != 12 || b.Width != 20 || b.Height != 88 {
		t.Errorf("swapped edges should normalise, got %+v", b)
	}
	if b.Right() != 30 || b.Top() != 100 {
		t.Errorf("unexpected edges right=%f top=%f", b.Right(), b.Top())
	}
}

func TestPage_Rect(t *testing.T) {
	page := &Page{Columns: []Column{
		{Name: "Legend", X: 10, Width: 19},
		{Name: "Description", X: 29, Width: 66.5},
	}}

	r, ok := page.Rect("Legend", 12, 100)
	if !ok {
		t.Fatal("expected a legend rectangle")
	}
	if r.X != 10 || r.Right() != 29 || r.Y != 12 || r.Top() != 100 {
		t.Errorf("unexpected rectangle %+v", r)
	}

	if _, ok := page.Rect("Water", 12, 100); ok {
		t.Error("expected no rectangle for a missing column")
	}
	if _, ok := page.Rect("Legend", 50, 50); ok {
		t.Error("expected no rectangle for an empty span")
	}

	op := &OverflowPage{Column: Column{Name: "Description", X: 10, Width: 190}}
	r, ok = op.Rect(83.5, 258.5)
	if !ok || r.Width != 190 || r.Height != 175 {
		t.Errorf("unexpected overflow rectangle %+v", r)
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{Kind: WarningOverflowSkipped, Page: 3, Message: "no room"}
	if !strings.HasPrefix(w.String(), "page 3:") {
		t.Errorf("unexpected warning text %q", w.String())
	}
	if WarningResidualOverlap.String() != "residual_overlap" {
		t.Errorf("got %s", WarningResidualOverlap.String())
	}
}

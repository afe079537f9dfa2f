package model

import "fmt"

// Column is one vertical column of a log sheet, in absolute page millimetres.
type Column struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// Right returns the right edge of the column.
func (c Column) Right() float64 {
	return c.X + c.Width
}

// Page is one regular log sheet. Its rows are ordered top to bottom.
type Page struct {
	Number int // 1-indexed page number

	// Depth window of the page in metres.
	Top    float64
	Bottom float64

	// DataBottom is min(Bottom, total borehole depth).
	DataBottom float64

	// LogAreaLength is the height of the log area in millimetres; y runs
	// from 0 (bottom) to LogAreaLength (top).
	LogAreaLength float64

	// ToeY is the printable limit of the lithology and description columns.
	ToeY float64

	Columns []Column
	Rows    []LayoutRow

	// OverflowNeeded is set when at least one row is ClassLayerComplete.
	OverflowNeeded bool
}

// Kind returns SheetKindPage.
func (p *Page) Kind() SheetKind { return SheetKindPage }

// Label returns the page number as text.
func (p *Page) Label() string { return fmt.Sprintf("%d", p.Number) }

// Origin returns the page number.
func (p *Page) Origin() int { return p.Number }

// RowsByClass returns the rows carrying the given class, in page order.
func (p *Page) RowsByClass(c Class) []LayoutRow {
	var rows []LayoutRow
	for _, r := range p.Rows {
		if r.Class == c {
			rows = append(rows, r)
		}
	}
	return rows
}

// Column returns the named column.
func (p *Page) Column(name string) (Column, bool) {
	for _, c := range p.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Rect returns the rectangle spanning [yBottom, yTop] in the named column.
// It reports false for an unknown column or an empty span.
func (p *Page) Rect(column string, yBottom, yTop float64) (BBox, bool) {
	c, ok := p.Column(column)
	if !ok || yTop <= yBottom {
		return BBox{}, false
	}
	return NewBBoxFromEdges(c.X, c.Right(), yBottom, yTop), true
}

// OverflowEntry is one rescued description on an overflow page.
type OverflowEntry struct {
	Caption  string  // "Depth 0.00–9.50m (Code: CLAY)"
	CaptionY float64 // baseline area top of the caption
	Box      TextBox

	Interval Interval
}

// OverflowPage holds descriptions that could not be placed beside their layer
// on the originating regular page.
type OverflowPage struct {
	// SourcePage is the regular page number the entries come from.
	SourcePage int

	// Title is the synthetic label, "<page> Overflow".
	Title string

	AreaHeight float64
	Column     Column
	Entries    []OverflowEntry

	// Skipped lists the intervals that did not fit on the page.
	Skipped []Interval
}

// OverflowLabel returns the label of the overflow page for a regular page.
func OverflowLabel(page int) string {
	return fmt.Sprintf("%d Overflow", page)
}

// Kind returns SheetKindOverflow.
func (o *OverflowPage) Kind() SheetKind { return SheetKindOverflow }

// Label returns the synthetic overflow label.
func (o *OverflowPage) Label() string { return o.Title }

// Origin returns the originating regular page number.
func (o *OverflowPage) Origin() int { return o.SourcePage }

// Rect returns the rectangle spanning [yBottom, yTop] in the text column.
func (o *OverflowPage) Rect(yBottom, yTop float64) (BBox, bool) {
	if yTop <= yBottom {
		return BBox{}, false
	}
	return NewBBoxFromEdges(o.Column.X, o.Column.Right(), yBottom, yTop), true
}

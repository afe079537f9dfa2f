package model

// Class is the overflow classification of a text box on a regular page.
type Class int

const (
	// ClassOnPage means the box fits above the toe line.
	ClassOnPage Class = iota
	// ClassLayerContinues means the box runs past the toe line but its layer
	// reappears on a later page, where the text gets fresh space.
	ClassLayerContinues
	// ClassLayerComplete means the layer ends on this page and its text does
	// not fit; the text is rescued onto an overflow page.
	ClassLayerComplete
)

func (c Class) String() string {
	switch c {
	case ClassOnPage:
		return "on_page"
	case ClassLayerContinues:
		return "layer_continues"
	case ClassLayerComplete:
		return "layer_complete"
	default:
		return "unknown"
	}
}

// Segment is the part of an interval that falls inside one page's depth window.
type Segment struct {
	Top  float64 // max(interval top, page top)
	Base float64 // min(interval base, page data bottom)

	// Interval is the original, un-clipped interval.
	Interval Interval
}

// Thickness returns the clipped depth extent of the segment.
func (s Segment) Thickness() float64 {
	return s.Base - s.Top
}

// Continues reports whether the segment's layer extends below pageBottom.
func (s Segment) Continues(pageBottom float64) bool {
	return s.Interval.Base > pageBottom
}

// LegendPosition is the vertical extent of a segment in the lithology column,
// in page-local millimetres (y grows upward, 0 is the log-area bottom).
// Segments hidden by toe-line clipping carry the zero value with Visible false.
type LegendPosition struct {
	YTop    float64
	YBottom float64
	YCenter float64
	Visible bool
}

// Height returns the drawn height of the legend segment.
func (l LegendPosition) Height() float64 {
	return l.YTop - l.YBottom
}

// TextBox is the geometry of an interval's description in the description column.
type TextBox struct {
	YTop    float64
	YBottom float64

	// Lines holds the wrapped description.
	Lines []string

	// NaturalHeight is the pure word-wrap height (with the minimum floor).
	NaturalHeight float64

	// ExtendedHeight is the height after alignment and push-down.
	ExtendedHeight float64

	// VisibleLines is how many of Lines can be drawn above the toe line.
	VisibleLines int

	// Abbreviated is set when the full text was moved to an overflow page.
	Abbreviated bool

	// Reference labels the overflow page holding the full text, if any.
	Reference string

	// RightToLeft is set for descriptions written in an RTL script.
	RightToLeft bool

	Visible bool
}

// Overlaps reports whether b intrudes above the bottom of the box above it.
func (b TextBox) Overlaps(above TextBox) bool {
	return b.YTop > above.YBottom
}

// LayoutRow combines every facet of one interval on one page, so that the
// segment, its legend position and its text box can never drift apart.
type LayoutRow struct {
	Segment Segment
	Legend  LegendPosition
	Text    TextBox
	Class   Class
}

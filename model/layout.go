package model

// Layout is the complete, ordered output for one borehole: regular pages
// first, then overflow pages by ascending originating page.
type Layout struct {
	// Borehole identifies the log; informational only.
	Borehole string

	// DepthPerPage is the depth span of one regular page in metres.
	DepthPerPage float64

	// TotalDepth is the deepest interval base in metres.
	TotalDepth float64

	Sheets []Sheet
}

// Pages returns the regular pages in order.
func (l *Layout) Pages() []*Page {
	var pages []*Page
	for _, s := range l.Sheets {
		if p, ok := s.(*Page); ok {
			pages = append(pages, p)
		}
	}
	return pages
}

// OverflowPages returns the overflow pages in order.
func (l *Layout) OverflowPages() []*OverflowPage {
	var pages []*OverflowPage
	for _, s := range l.Sheets {
		if p, ok := s.(*OverflowPage); ok {
			pages = append(pages, p)
		}
	}
	return pages
}

// PageCount returns the number of regular pages.
func (l *Layout) PageCount() int {
	return len(l.Pages())
}

// SheetCount returns the number of output sheets.
func (l *Layout) SheetCount() int {
	return len(l.Sheets)
}

package model

// SheetKind represents the type of output sheet
type SheetKind int

const (
	SheetKindUnknown SheetKind = iota
	SheetKindPage
	SheetKindOverflow
)

func (k SheetKind) String() string {
	switch k {
	case SheetKindPage:
		return "page"
	case SheetKindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Sheet is the interface for all output sheets: *Page and *OverflowPage.
type Sheet interface {
	Kind() SheetKind
	Label() string
	// Origin is the regular page number the sheet belongs to.
	Origin() int
}

var (
	_ Sheet = (*Page)(nil)
	_ Sheet = (*OverflowPage)(nil)
)

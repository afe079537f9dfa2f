package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/width"
)

// Measurer returns the printed width of a string in millimetres.
type Measurer interface {
	Measure(s string) float64
}

// DefaultCellWidth is the width of one character cell in millimetres, roughly
// a 7pt condensed sans face.
const DefaultCellWidth = 1.6

// CellMeasurer measures text as a run of fixed-width character cells, which
// gives a fixed number of characters per line for a given column width.
// East Asian wide and fullwidth runes take two cells; combining marks take none.
type CellMeasurer struct {
	CellWidth float64
}

// NewCellMeasurer creates a cell measurer with DefaultCellWidth.
func NewCellMeasurer() CellMeasurer {
	return CellMeasurer{CellWidth: DefaultCellWidth}
}

// Measure implements Measurer.
func (m CellMeasurer) Measure(s string) float64 {
	return float64(Cells(s)) * m.CellWidth
}

// Cells returns the number of character cells s occupies.
func Cells(s string) int {
	n := 0
	for _, r := range s {
		n += runeCells(r)
	}
	return n
}

func runeCells(r rune) int {
	if r < 0x20 {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	if isCombining(r) {
		return 0
	}
	return 1
}

func isCombining(r rune) bool {
	return (r >= 0x0300 && r <= 0x036F) || (r >= 0x1AB0 && r <= 0x1AFF) ||
		(r >= 0x1DC0 && r <= 0x1DFF) || (r >= 0x20D0 && r <= 0x20FF)
}

// FaceMeasurer measures text with the glyph advances of a font face.
type FaceMeasurer struct {
	face font.Face

	// mmPerPixel converts face units (pixels at the face's native size) to millimetres.
	mmPerPixel float64
}

// NewFaceMeasurer creates a measurer for face. mmPerPixel scales the face's
// pixel advances to page millimetres.
func NewFaceMeasurer(face font.Face, mmPerPixel float64) *FaceMeasurer {
	return &FaceMeasurer{face: face, mmPerPixel: mmPerPixel}
}

// NewBasicFaceMeasurer measures with the built-in 7x13 bitmap face, scaled so
// one glyph advance equals DefaultCellWidth.
func NewBasicFaceMeasurer() *FaceMeasurer {
	face := basicfont.Face7x13
	return NewFaceMeasurer(face, DefaultCellWidth/float64(face.Advance))
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(s string) float64 {
	adv := font.MeasureString(m.face, s)
	return float64(adv) / 64 * m.mmPerPixel
}

// LineHeight returns the face's line height in millimetres.
func (m *FaceMeasurer) LineHeight() float64 {
	metrics := m.face.Metrics()
	return float64(metrics.Height) / 64 * m.mmPerPixel
}

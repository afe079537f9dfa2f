// Package font provides advance widths for the standard PDF fonts.
//
// Description text is usually drawn by a PDF renderer in one of the standard
// fonts, so measuring with the same widths makes wrapped lines match what is
// printed:
//
//	m, err := font.Standard("Helvetica")
//	w := m.MeasureMM("Firm brown CLAY", 8) // width in mm at 8pt
//
// # Character Widths
//
// Widths are in 1000ths of an em. Runes outside the tables fall back to an
// em for East Asian wide characters, zero for control and combining
// characters, and half an em otherwise.
package font

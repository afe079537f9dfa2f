// Package text prepares interval descriptions for the description column:
// normalisation, measurement and greedy word wrapping.
//
// # Wrapping
//
// A [Wrapper] breaks text into lines no wider than a given width in
// millimetres, measuring with a [Measurer]:
//
//	w := text.NewWrapper()
//	lines := w.Wrap("Firm brown sandy CLAY with rare gravel", 40)
//
// Three measurers are provided:
//
//   - [CellMeasurer] - fixed character cells; wide East Asian runes take two cells
//   - [FaceMeasurer] - glyph advances from a font.Face
//   - [StandardMeasurer] - widths of a standard PDF font such as Helvetica
//
// # Normalisation
//
// [Normalize] strips inline markup left by rich-text exports, decodes
// entities, applies Unicode NFC and collapses whitespace.
//
// # Direction
//
// [DetectDirection] reports the dominant writing direction so a renderer can
// right-align RTL descriptions.
package text

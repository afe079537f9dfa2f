// Package export writes a computed borehole layout as JSON, JSON Lines, CSV or
// TSV so that a separate renderer, or a spreadsheet, can consume the geometry.
//
// JSON writes the whole layout as one document with its sheets in output
// order. The other formats write one flat record per text box: every row of
// every regular page, then every entry of every overflow page.
package export

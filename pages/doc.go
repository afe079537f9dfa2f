// Package pages assembles the final sheet sequence of a borehole log.
//
// # Overflow pages
//
// Descriptions whose layer ends on a page but whose text runs past the toe
// line are rescued by an [OverflowBuilder]. Each regular page that needs it
// gets exactly one overflow page labelled "<page> Overflow", holding the full
// text of every rescued description under a back-reference caption:
//
//	builder := pages.NewOverflowBuilder(geo, planner)
//	overflow, warnings := builder.BuildAll(regular)
//
// Entries that no longer fit on the overflow page are skipped with a warning.
//
// # Sequencing
//
// [Sequence] emits the regular pages in order followed by the overflow pages
// ordered by originating page. The two kinds are never interleaved.
package pages

// Package model provides the data types shared by every stage of the borehole
// log layout pipeline.
//
// # Input
//
// The [Interval] type is one geological layer as supplied by the parsing
// collaborator. Use [NewInterval] to build validated values:
//
//	iv, err := model.NewInterval(0, 2.5, "CLAY", "Firm brown clay", 0)
//
// # Per-page layout
//
// Each regular [Page] carries one [LayoutRow] per interval that overlaps its
// depth window. A row bundles the clipped [Segment], the [LegendPosition] in
// the lithology column, the description [TextBox] and its overflow [Class].
//
// # Output
//
// A [Layout] is an ordered list of [Sheet] values: all regular pages first,
// then every [OverflowPage] ordered by originating page number. Sheets expose
// geometry only; colours and hatch patterns are resolved by the renderer.
//
// # Geometry
//
// Page-local coordinates are millimetres with y growing upward from the
// bottom of the log area. [BBox] is the rectangle primitive.
package model

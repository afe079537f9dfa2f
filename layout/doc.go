// Package layout computes the geometry of regular borehole log pages.
//
// The [Paginator] runs the per-page pipeline for a normalised interval list:
//
//	pages, warnings := layout.NewPaginator(geo).Paginate(intervals)
//
// Each page goes through the same stages:
//
//   - [Clip] cuts the intervals to the page's depth window
//   - [Positioner] converts segment depths to legend rectangles, clipped at the toe line
//   - [Planner] wraps descriptions and pushes overlapping text boxes down
//   - [Classifier] decides which boxes stay, wait for the next page, or move to an overflow page
//
// # Coordinates
//
// Depths are metres below ground. Page-local y is millimetres measured up
// from the bottom of the log area, so the page top depth maps to the
// log-area length and deeper material has smaller y.
//
// # Input Repair
//
// [Normalize] drops invalid intervals and restores depth order before
// pagination. Both are reported as warnings; the pipeline never fails on data.
package layout

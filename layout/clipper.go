package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/tsawler/borelog/model"
)

// Normalize returns a validated copy of intervals sorted by top depth.
// Invalid intervals (base not below top, negative or non-finite depths) are
// dropped and unsorted input is re-sorted; both cases are reported as
// warnings rather than failing the borehole. The input slice is not modified.
func Normalize(intervals []model.Interval) ([]model.Interval, []model.Warning) {
	var warnings []model.Warning

	valid := make([]model.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if err := iv.Validate(); err != nil {
			warnings = append(warnings, model.Warning{
				Kind:        model.WarningDroppedInterval,
				SourceIndex: iv.SourceIndex,
				Message:     err.Error(),
			})
			continue
		}
		valid = append(valid, iv)
	}

	if !isSorted(valid) {
		sortIntervals(valid)
		warnings = append(warnings, model.Warning{
			Kind:        model.WarningUnsorted,
			SourceIndex: -1,
			Message:     fmt.Sprintf("%d intervals were not sorted by top depth and have been re-sorted", len(valid)),
		})
	}

	return valid, warnings
}

// TotalDepth returns the deepest base of intervals, or 0 when there are none.
func TotalDepth(intervals []model.Interval) float64 {
	total := 0.0
	for _, iv := range intervals {
		total = math.Max(total, iv.Base)
	}
	return total
}

// Clip returns one segment for every interval overlapping the page window
// [pageTop, pageBottom]. Segment bases are capped at min(pageBottom,
// totalDepth), the true end of data on the final page. Segments that end up
// empty are excluded.
func Clip(intervals []model.Interval, pageTop, pageBottom, totalDepth float64) []model.Segment {
	if !isSorted(intervals) {
		sorted := append([]model.Interval(nil), intervals...)
		sortIntervals(sorted)
		intervals = sorted
	}

	dataBottom := math.Min(pageBottom, totalDepth)

	var segments []model.Segment
	for _, iv := range intervals {
		if iv.Top >= dataBottom {
			break
		}
		if !iv.Overlaps(pageTop, dataBottom) {
			continue
		}

		seg := model.Segment{
			Top:      math.Max(iv.Top, pageTop),
			Base:     math.Min(iv.Base, dataBottom),
			Interval: iv,
		}
		if seg.Top < seg.Base {
			segments = append(segments, seg)
		}
	}
	return segments
}

func isSorted(intervals []model.Interval) bool {
	return sort.SliceIsSorted(intervals, func(i, j int) bool {
		return intervals[i].Top < intervals[j].Top
	})
}

// sortIntervals orders by top depth, breaking ties by source index so the
// result does not depend on the input permutation.
func sortIntervals(intervals []model.Interval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		if intervals[i].Top != intervals[j].Top {
			return intervals[i].Top < intervals[j].Top
		}
		return intervals[i].SourceIndex < intervals[j].SourceIndex
	})
}

package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/model"
)

// Paginator runs the per-page pipeline (clip, position, plan, classify) over
// every regular page of a borehole.
type Paginator struct {
	geo     *geometry.Geometry
	planner *Planner
}

// NewPaginator creates a paginator with a default planner sized to the
// geometry's description column.
func NewPaginator(geo *geometry.Geometry) *Paginator {
	return NewPaginatorWithPlanner(geo, NewPlanner(geo.DescriptionWidth()))
}

// NewPaginatorWithPlanner creates a paginator with a custom planner.
func NewPaginatorWithPlanner(geo *geometry.Geometry, planner *Planner) *Paginator {
	return &Paginator{geo: geo, planner: planner}
}

// Paginate lays out the regular pages for intervals. Malformed or unsorted
// input is repaired with warnings; it never fails.
func (p *Paginator) Paginate(intervals []model.Interval) ([]*model.Page, []model.Warning) {
	clean, warnings := Normalize(intervals)

	total := TotalDepth(clean)
	count := p.geo.PageCount(total)

	pages := make([]*model.Page, 0, count)
	for n := 1; n <= count; n++ {
		page, pageWarnings := p.buildPage(clean, n, total, n == count)
		pages = append(pages, page)
		warnings = append(warnings, pageWarnings...)
	}

	return pages, warnings
}

func (p *Paginator) buildPage(intervals []model.Interval, number int, total float64, last bool) (*model.Page, []model.Warning) {
	top, bottom := p.geo.PageWindow(number)

	segments := Clip(intervals, top, bottom, total)
	positioner := NewPositioner(p.geo.LogAreaLength, p.geo.ToeY, top, bottom)
	rows := positioner.Rows(segments)

	var warnings []model.Warning

	result := p.planner.Plan(rows, p.geo.ToeY)
	if result.ResidualOverlaps > 0 {
		warnings = append(warnings, model.Warning{
			Kind:        model.WarningResidualOverlap,
			Page:        number,
			SourceIndex: -1,
			Message: fmt.Sprintf("%d text boxes still overlap after %d push-down passes",
				result.ResidualOverlaps, result.Iterations),
		})
	}

	// no later page shows a layer that runs past the last one
	classifyBottom := bottom
	if last {
		classifyBottom = math.Max(bottom, total)
	}
	classes := NewClassifier(p.geo.ToeY).Classify(rows, number, classifyBottom)

	page := &model.Page{
		Number:         number,
		Top:            top,
		Bottom:         bottom,
		DataBottom:     math.Min(bottom, total),
		LogAreaLength:  p.geo.LogAreaLength,
		ToeY:           p.geo.ToeY,
		Columns:        p.geo.ColumnsCopy(),
		Rows:           rows,
		OverflowNeeded: classes.OverflowNeeded,
	}
	return page, warnings
}

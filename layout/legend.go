package layout

import (
	"math"

	"github.com/tsawler/borelog/model"
)

// Positioner maps depths on one page to page-local y in the lithology column.
// The shallowest depth of the page sits at the top of the log area.
type Positioner struct {
	logArea    float64
	toeY       float64
	pageTop    float64
	pageBottom float64
}

// NewPositioner creates a positioner for the page window [pageTop, pageBottom].
func NewPositioner(logArea, toeY, pageTop, pageBottom float64) *Positioner {
	return &Positioner{
		logArea:    logArea,
		toeY:       toeY,
		pageTop:    pageTop,
		pageBottom: pageBottom,
	}
}

// DepthToY converts a depth in metres to page-local y in millimetres.
// It is non-increasing in depth.
func (p *Positioner) DepthToY(depth float64) float64 {
	return p.logArea * (1 - (depth-p.pageTop)/(p.pageBottom-p.pageTop))
}

// Position returns the legend position of seg. The bottom edge is clipped to
// the toe line; a segment left with no height is returned as the zero
// position with Visible false so rows stay aligned with their segments.
func (p *Positioner) Position(seg model.Segment) model.LegendPosition {
	yTop := p.DepthToY(seg.Top)
	yBottom := math.Max(p.DepthToY(seg.Base), p.toeY)

	if yTop <= yBottom {
		return model.LegendPosition{}
	}

	return model.LegendPosition{
		YTop:    yTop,
		YBottom: yBottom,
		YCenter: (yTop + yBottom) / 2,
		Visible: true,
	}
}

// Rows builds one layout row per segment with its legend position filled in.
func (p *Positioner) Rows(segments []model.Segment) []model.LayoutRow {
	rows := make([]model.LayoutRow, len(segments))
	for i, seg := range segments {
		rows[i] = model.LayoutRow{
			Segment: seg,
			Legend:  p.Position(seg),
		}
	}
	return rows
}

package layout

import (
	"math"

	"github.com/tsawler/borelog/model"
	"github.com/tsawler/borelog/text"
)

// PlannerConfig holds configuration for description text boxes.
type PlannerConfig struct {
	// LineHeight is the height of one wrapped line in mm (default: 3.5)
	LineHeight float64 `toml:"line_height"`

	// MinHeight is the floor applied to every box, including empty
	// descriptions (default: 5.0)
	MinHeight float64 `toml:"min_height"`

	// BoxGap is the gap left above a pushed-down box in mm (default: 0.5)
	BoxGap float64 `toml:"box_gap"`

	// IterationFactor bounds the push-down scans at IterationFactor × rows (default: 2)
	IterationFactor int `toml:"iteration_factor"`
}

// DefaultPlannerConfig returns sensible default configuration
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		LineHeight:      3.5,
		MinHeight:       5.0,
		BoxGap:          0.5,
		IterationFactor: 2,
	}
}

// PlanResult reports how the push-down relaxation ended.
type PlanResult struct {
	// Iterations is the number of full scans performed.
	Iterations int

	// Converged is false when the iteration cap was reached while boxes were
	// still moving.
	Converged bool

	// ResidualOverlaps counts box pairs still overlapping afterwards.
	ResidualOverlaps int
}

// Planner places description text boxes beside their legend segments.
type Planner struct {
	config  PlannerConfig
	wrapper *text.Wrapper
	width   float64
}

// NewPlanner creates a planner with default configuration for a description
// column width in millimetres.
func NewPlanner(width float64) *Planner {
	return NewPlannerWithConfig(DefaultPlannerConfig(), text.NewWrapper(), width)
}

// NewPlannerWithConfig creates a planner with custom configuration.
func NewPlannerWithConfig(config PlannerConfig, wrapper *text.Wrapper, width float64) *Planner {
	if wrapper == nil {
		wrapper = text.NewWrapper()
	}
	if config.IterationFactor < 1 {
		config.IterationFactor = 1
	}
	return &Planner{
		config:  config,
		wrapper: wrapper,
		width:   width,
	}
}

// Config returns the planner configuration.
func (p *Planner) Config() PlannerConfig {
	return p.config
}

// Wrap returns the wrapped lines of a description and their natural height.
func (p *Planner) Wrap(description string, width float64) ([]string, float64) {
	lines := p.wrapper.Wrap(text.Normalize(description), width)
	return lines, p.NaturalHeight(len(lines))
}

// NaturalHeight returns the height of n lines, never less than MinHeight.
func (p *Planner) NaturalHeight(n int) float64 {
	return math.Max(float64(n)*p.config.LineHeight, p.config.MinHeight)
}

// Plan fills in the text box of every row and resolves overlaps by pushing
// boxes down. Rows must be ordered top to bottom. toeY is used to count the
// lines that remain drawable.
func (p *Planner) Plan(rows []model.LayoutRow, toeY float64) PlanResult {
	for i := range rows {
		rows[i].Text = p.place(rows[i])
	}

	result := p.pushDown(rows)

	for i := range rows {
		box := &rows[i].Text
		if !box.Visible {
			continue
		}
		box.ExtendedHeight = box.YTop - box.YBottom
		box.VisibleLines = p.fitLines(*box, toeY)
	}

	return result
}

// place computes the default geometry: top aligned with the legend segment,
// filling the layer when the text is shorter than it.
func (p *Planner) place(row model.LayoutRow) model.TextBox {
	lines, natural := p.Wrap(row.Segment.Interval.Description, p.width)

	box := model.TextBox{
		Lines:         lines,
		NaturalHeight: natural,
		RightToLeft:   text.DetectDirection(row.Segment.Interval.Description) == text.RTL,
	}
	if !row.Legend.Visible {
		return box
	}

	box.Visible = true
	box.YTop = row.Legend.YTop
	if natural <= row.Legend.Height() {
		box.YBottom = row.Legend.YBottom
	} else {
		box.YBottom = box.YTop - natural
	}
	return box
}

// pushDown repeatedly scans the visible boxes top to bottom, moving any box
// whose top intrudes above the previous box's bottom. It stops when a scan
// changes nothing or after IterationFactor × len(rows) scans.
func (p *Planner) pushDown(rows []model.LayoutRow) PlanResult {
	limit := p.config.IterationFactor * len(rows)

	var result PlanResult
	for result.Iterations < limit {
		result.Iterations++

		changed := false
		prev := -1
		for i := range rows {
			if !rows[i].Text.Visible {
				continue
			}
			if prev >= 0 && rows[i].Text.Overlaps(rows[prev].Text) {
				p.push(&rows[i], rows[prev].Text.YBottom-p.config.BoxGap)
				changed = true
			}
			prev = i
		}

		if !changed {
			result.Converged = true
			break
		}
	}
	if limit == 0 {
		result.Converged = true
	}

	result.ResidualOverlaps = countOverlaps(rows)
	return result
}

// push moves a box so its top is at top, recomputing the bottom from the
// natural height and re-extending it to the layer bottom when there is room.
func (p *Planner) push(row *model.LayoutRow, top float64) {
	box := &row.Text
	box.YTop = top
	box.YBottom = top - box.NaturalHeight
	if box.YBottom > row.Legend.YBottom {
		box.YBottom = row.Legend.YBottom
	}
}

// fitLines returns the number of lines drawable between the box top and the
// lower of its bottom and the toe line.
func (p *Planner) fitLines(box model.TextBox, toeY float64) int {
	if p.config.LineHeight <= 0 {
		return len(box.Lines)
	}
	avail := box.YTop - math.Max(box.YBottom, toeY)
	if avail <= 0 {
		return 0
	}
	n := int(math.Floor(avail/p.config.LineHeight + 1e-9))
	if n > len(box.Lines) {
		n = len(box.Lines)
	}
	return n
}

func countOverlaps(rows []model.LayoutRow) int {
	count := 0
	prev := -1
	for i := range rows {
		if !rows[i].Text.Visible {
			continue
		}
		if prev >= 0 && rows[i].Text.Overlaps(rows[prev].Text) {
			count++
		}
		prev = i
	}
	return count
}

package borelog

import (
	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/layout"
	"github.com/tsawler/borelog/pages"
	"github.com/tsawler/borelog/text"
)

// Options holds the complete layout configuration.
type Options struct {
	Geometry geometry.Config
	Planner  layout.PlannerConfig
	Overflow pages.OverflowConfig

	// Measurer measures description text. LayoutAll shares it between
	// goroutines, so it must be safe for concurrent use. nil selects a
	// text.CellMeasurer.
	Measurer text.Measurer
}

// DefaultOptions returns an A4 portrait page at 1:50 with default text and
// overflow settings.
func DefaultOptions() Options {
	return Options{
		Geometry: geometry.DefaultConfig(),
		Planner:  layout.DefaultPlannerConfig(),
		Overflow: pages.DefaultOverflowConfig(),
		Measurer: text.NewCellMeasurer(),
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := o
	newOpts.Geometry = o.Geometry.WithScale(o.Geometry.Scale)
	return newOpts
}

// validate checks everything geometry.Calculate does not.
func (o Options) validate() error {
	if o.Planner.LineHeight <= 0 {
		return &geometry.ConfigurationError{Field: "text.line_height", Value: o.Planner.LineHeight, Reason: "must be positive"}
	}
	nonNegative := []struct {
		field string
		value float64
	}{
		{"text.min_height", o.Planner.MinHeight},
		{"text.box_gap", o.Planner.BoxGap},
		{"overflow.header_height", o.Overflow.HeaderHeight},
		{"overflow.entry_gap", o.Overflow.EntryGap},
		{"overflow.caption_height", o.Overflow.CaptionHeight},
	}
	for _, chk := range nonNegative {
		if chk.value < 0 {
			return &geometry.ConfigurationError{Field: chk.field, Value: chk.value, Reason: "must not be negative"}
		}
	}
	return o.Geometry.Validate()
}

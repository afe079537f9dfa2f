package borelog

import (
	"fmt"

	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/layout"
	"github.com/tsawler/borelog/model"
	"github.com/tsawler/borelog/pages"
	"github.com/tsawler/borelog/text"
)

// Borehole is one log to lay out.
type Borehole struct {
	ID        string
	Intervals []model.Interval
}

// Log provides a fluent interface for configuring and running the layout of
// one borehole. Each configuration method returns a new Log, so a configured
// Log can be shared and reused.
type Log struct {
	borehole Borehole
	options  Options
}

// New creates a Log for intervals with default options. The intervals are
// copied; the caller's slice is never modified.
func New(intervals []model.Interval) *Log {
	return &Log{
		borehole: Borehole{Intervals: append([]model.Interval(nil), intervals...)},
		options:  DefaultOptions(),
	}
}

// clone creates a copy of the Log with a deep copy of options.
func (l *Log) clone() *Log {
	return &Log{
		borehole: l.borehole,
		options:  l.options.clone(),
	}
}

// ID sets the borehole identifier carried into the layout.
func (l *Log) ID(id string) *Log {
	newLog := l.clone()
	newLog.borehole.ID = id
	return newLog
}

// Options replaces the whole configuration.
func (l *Log) Options(opts Options) *Log {
	newLog := l.clone()
	newLog.options = opts.clone()
	return newLog
}

// Geometry sets the page geometry.
func (l *Log) Geometry(cfg geometry.Config) *Log {
	newLog := l.clone()
	newLog.options.Geometry = cfg.WithScale(cfg.Scale)
	return newLog
}

// Scale sets the vertical scale denominator, 50 for 1:50.
//
// Example:
//
//	layout, _, err := borelog.New(intervals).Scale(100).Layout()
func (l *Log) Scale(denominator float64) *Log {
	newLog := l.clone()
	newLog.options.Geometry.Scale = denominator
	return newLog
}

// PageSize sets the page width and height in millimetres.
func (l *Log) PageSize(width, height float64) *Log {
	newLog := l.clone()
	newLog.options.Geometry.PageWidth = width
	newLog.options.Geometry.PageHeight = height
	return newLog
}

// Planner sets the text-box configuration.
func (l *Log) Planner(cfg layout.PlannerConfig) *Log {
	newLog := l.clone()
	newLog.options.Planner = cfg
	return newLog
}

// Overflow sets the overflow page configuration.
func (l *Log) Overflow(cfg pages.OverflowConfig) *Log {
	newLog := l.clone()
	newLog.options.Overflow = cfg
	return newLog
}

// Measurer sets the text measurer used for word wrapping.
func (l *Log) Measurer(m text.Measurer) *Log {
	newLog := l.clone()
	newLog.options.Measurer = m
	return newLog
}

// Layout runs the full pipeline and returns the ordered sheets. The error is
// non-nil only for an invalid configuration (*geometry.ConfigurationError);
// data problems and degraded layouts are reported as warnings.
func (l *Log) Layout() (*model.Layout, []Warning, error) {
	return LayoutBorehole(l.borehole, l.options)
}

// Sheets is a shorthand for Layout that returns only the sheet sequence.
func (l *Log) Sheets() ([]model.Sheet, []Warning, error) {
	result, warnings, err := l.Layout()
	if err != nil {
		return nil, warnings, err
	}
	return result.Sheets, warnings, nil
}

// LayoutBorehole lays out one borehole with opts.
func LayoutBorehole(b Borehole, opts Options) (*model.Layout, []Warning, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	geo, err := geometry.Calculate(opts.Geometry)
	if err != nil {
		return nil, nil, fmt.Errorf("calculating page geometry: %w", err)
	}

	wrapper := text.NewWrapperWithMeasurer(opts.Measurer)
	planner := layout.NewPlannerWithConfig(opts.Planner, wrapper, geo.DescriptionWidth())

	regular, warnings := layout.NewPaginatorWithPlanner(geo, planner).Paginate(b.Intervals)

	overflow, overflowWarnings := pages.NewOverflowBuilderWithConfig(opts.Overflow, geo, planner).BuildAll(regular)
	warnings = append(warnings, overflowWarnings...)

	result := &model.Layout{
		Borehole:     b.ID,
		DepthPerPage: geo.DepthPerPage,
		Sheets:       pages.Sequence(regular, overflow),
	}
	if n := len(regular); n > 0 {
		result.TotalDepth = regular[n-1].DataBottom
	}

	return result, warnings, nil
}

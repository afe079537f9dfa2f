package geometry

import (
	"math"

	"github.com/tsawler/borelog/model"
)

// fractionTolerance is the allowed deviation of the template sum from 1.0.
const fractionTolerance = 1e-6

// MinDepthPerPage is the smallest depth span, in metres, one page may cover.
const MinDepthPerPage = 0.01

// Geometry is the validated, derived page frame.
type Geometry struct {
	config Config

	// LogAreaLength is the height of the log area in millimetres.
	LogAreaLength float64

	// DepthPerPage is the depth span of one page in metres.
	DepthPerPage float64

	// UsableWidth is the page width between the side margins.
	UsableWidth float64

	// ToeY is the toe line in page-local y.
	ToeY float64

	// Columns holds absolute column offsets and widths.
	Columns []model.Column
}

// Calculate validates cfg and derives the page frame.
func Calculate(cfg Config) (*Geometry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logArea := cfg.PageHeight - (cfg.Margins.Top + cfg.HeaderHeight + cfg.Margins.Bottom)
	usable := cfg.PageWidth - (cfg.Margins.Left + cfg.Margins.Right)

	g := &Geometry{
		config:        cfg.WithScale(cfg.Scale),
		LogAreaLength: logArea,
		DepthPerPage:  logArea * (cfg.Scale / 1000),
		UsableWidth:   usable,
		ToeY:          cfg.ToeLine,
		Columns:       make([]model.Column, len(cfg.Columns)),
	}

	x := cfg.Margins.Left
	for i, spec := range cfg.Columns {
		w := spec.Fraction * usable
		g.Columns[i] = model.Column{Name: spec.Name, X: x, Width: w}
		x += w
	}

	return g, nil
}

// Validate checks the configuration without deriving anything.
func (c Config) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"page_width", c.PageWidth},
		{"page_height", c.PageHeight},
		{"scale", c.Scale},
		{"margins.top", c.Margins.Top},
		{"margins.right", c.Margins.Right},
		{"margins.bottom", c.Margins.Bottom},
		{"margins.left", c.Margins.Left},
	}
	for _, chk := range positive {
		if !finite(chk.value) || chk.value <= 0 {
			return configError(chk.field, chk.value, "must be positive")
		}
	}

	offsets := []struct {
		field string
		value float64
	}{
		{"header_height", c.HeaderHeight},
		{"toe_line", c.ToeLine},
	}
	for _, off := range offsets {
		if !finite(off.value) || off.value < 0 {
			return configError(off.field, off.value, "must not be negative")
		}
	}

	vertical := c.Margins.Top + c.HeaderHeight + c.Margins.Bottom
	if vertical >= c.PageHeight {
		return configError("page_height", c.PageHeight, "margins and header leave no log area")
	}
	if c.Margins.Left+c.Margins.Right >= c.PageWidth {
		return configError("page_width", c.PageWidth, "side margins leave no usable width")
	}
	if c.ToeLine >= c.PageHeight-vertical {
		return configError("toe_line", c.ToeLine, "toe line above the log area")
	}
	if (c.PageHeight-vertical)*c.Scale/1000 < MinDepthPerPage {
		return configError("scale", c.Scale, "page covers less than the minimum depth span")
	}

	return validateColumns(c.Columns)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateColumns(cols []ColumnSpec) error {
	if len(cols) == 0 {
		return configError("columns", 0, "template is empty")
	}

	sum := 0.0
	seen := make(map[string]bool, len(cols))
	for _, col := range cols {
		if col.Fraction <= 0 || !finite(col.Fraction) {
			return configError("columns."+col.Name, col.Fraction, "fraction must be positive")
		}
		if seen[col.Name] {
			return configError("columns."+col.Name, col.Fraction, "duplicate column")
		}
		seen[col.Name] = true
		sum += col.Fraction
	}

	if math.Abs(sum-1.0) > fractionTolerance {
		return configError("columns", sum, "fractions must sum to 1.0")
	}
	if !seen[ColumnLegend] {
		return configError("columns", float64(len(cols)), "missing "+ColumnLegend+" column")
	}
	if !seen[ColumnDescription] {
		return configError("columns", float64(len(cols)), "missing "+ColumnDescription+" column")
	}
	return nil
}

// Config returns a copy of the configuration the geometry was derived from.
func (g *Geometry) Config() Config {
	return g.config.WithScale(g.config.Scale)
}

// Column returns the named column.
func (g *Geometry) Column(name string) model.Column {
	for _, c := range g.Columns {
		if c.Name == name {
			return c
		}
	}
	return model.Column{}
}

// DescriptionWidth returns the width of the description column.
func (g *Geometry) DescriptionWidth() float64 {
	return g.Column(ColumnDescription).Width
}

// PageCount returns the number of regular pages needed for totalDepth.
func (g *Geometry) PageCount(totalDepth float64) int {
	if totalDepth <= 0 {
		return 0
	}
	n := int(math.Ceil(totalDepth/g.DepthPerPage - fractionTolerance))
	if n < 1 {
		n = 1
	}
	return n
}

// PageWindow returns the depth window [top, bottom] of a 1-indexed page.
// Both edges are multiples of DepthPerPage so adjacent pages share an edge.
func (g *Geometry) PageWindow(number int) (top, bottom float64) {
	return float64(number-1) * g.DepthPerPage, float64(number) * g.DepthPerPage
}

// ColumnsCopy returns a copy of the column offsets, safe to hand to a page.
func (g *Geometry) ColumnsCopy() []model.Column {
	return append([]model.Column(nil), g.Columns...)
}

// OverflowArea returns the writable height and the text column of an overflow
// page with the given header height.
func (g *Geometry) OverflowArea(header float64) (height float64, col model.Column) {
	cfg := g.config
	height = cfg.PageHeight - cfg.Margins.Top - cfg.Margins.Bottom - header
	col = model.Column{Name: ColumnDescription, X: cfg.Margins.Left, Width: g.UsableWidth}
	return height, col
}

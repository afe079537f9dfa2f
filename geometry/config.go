package geometry

// Column names used by the default template. The layout engine needs a legend
// column and a description column; the rest are passed through to the renderer.
const (
	ColumnSampleDepth = "SampleDepth"
	ColumnSampleType  = "SampleType"
	ColumnTestResults = "TestResults"
	ColumnWater       = "Water"
	ColumnLevel       = "Level"
	ColumnDepth       = "Depth"
	ColumnLegend      = "Legend"
	ColumnThickness   = "Thickness"
	ColumnDescription = "Description"
)

// A4 portrait dimensions in millimetres.
const (
	A4Width  = 210.0
	A4Height = 297.0
)

// Margins holds the four page margins in millimetres.
type Margins struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// ColumnSpec is one entry of the proportional column-width template.
type ColumnSpec struct {
	Name     string  `toml:"name"`
	Fraction float64 `toml:"fraction"`
}

// Config describes the physical page. It is a plain value; Calculate copies
// everything it keeps.
type Config struct {
	// PageWidth and PageHeight in millimetres (default: A4 portrait)
	PageWidth  float64 `toml:"page_width"`
	PageHeight float64 `toml:"page_height"`

	Margins Margins `toml:"margins"`

	// HeaderHeight is the title block above the log area (default: 40mm)
	HeaderHeight float64 `toml:"header_height"`

	// Scale is the denominator of the vertical scale, 50 for 1:50 (default: 50)
	Scale float64 `toml:"scale"`

	// ToeLine is the height of the toe line above the log-area bottom (default: 12mm)
	ToeLine float64 `toml:"toe_line"`

	// Columns is the proportional width template; fractions sum to 1.0
	Columns []ColumnSpec `toml:"columns"`
}

// DefaultColumns returns the standard 9-column borehole log template.
func DefaultColumns() []ColumnSpec {
	return []ColumnSpec{
		{Name: ColumnSampleDepth, Fraction: 0.10},
		{Name: ColumnSampleType, Fraction: 0.06},
		{Name: ColumnTestResults, Fraction: 0.12},
		{Name: ColumnWater, Fraction: 0.05},
		{Name: ColumnLevel, Fraction: 0.08},
		{Name: ColumnDepth, Fraction: 0.08},
		{Name: ColumnLegend, Fraction: 0.10},
		{Name: ColumnThickness, Fraction: 0.06},
		{Name: ColumnDescription, Fraction: 0.35},
	}
}

// DefaultConfig returns an A4 portrait page at 1:50.
func DefaultConfig() Config {
	return Config{
		PageWidth:  A4Width,
		PageHeight: A4Height,
		Margins: Margins{
			Top:    10,
			Right:  10,
			Bottom: 10,
			Left:   10,
		},
		HeaderHeight: 40,
		Scale:        50,
		ToeLine:      12,
		Columns:      DefaultColumns(),
	}
}

// WithScale returns a copy of c using a 1:scale vertical scale.
func (c Config) WithScale(scale float64) Config {
	c.Columns = append([]ColumnSpec(nil), c.Columns...)
	c.Scale = scale
	return c
}

package text

import (
	"github.com/tsawler/borelog/font"
)

// DefaultFontSize is the description font size in points.
const DefaultFontSize = 8.0

// StandardMeasurer measures text with the widths of a standard PDF font.
type StandardMeasurer struct {
	metrics *font.Metrics
	size    float64
}

// NewStandardMeasurer creates a measurer for the named standard font at size
// points. It fails for names font.Standard does not know.
func NewStandardMeasurer(name string, size float64) (*StandardMeasurer, error) {
	m, err := font.Standard(name)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return &StandardMeasurer{metrics: m, size: size}, nil
}

// Measure implements Measurer.
func (m *StandardMeasurer) Measure(s string) float64 {
	return m.metrics.MeasureMM(s, m.size)
}

package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInterval is returned when an interval fails validation.
var ErrInvalidInterval = errors.New("invalid interval")

// Interval is one geological layer of a borehole, as produced by the parsing
// collaborator. Depths are in metres below the borehole top.
type Interval struct {
	Top         float64 // Top depth (shallowest)
	Base        float64 // Base depth (deepest); always greater than Top
	Code        string  // Geology code, resolved to colour/hatch by the renderer
	Description string  // Free-text description; may be empty

	// SourceIndex is the position of the interval in the upstream record list.
	// It is stable across sorting and filtering.
	SourceIndex int
}

// NewInterval creates a validated interval. It rejects non-finite or negative
// depths and any interval whose base is not strictly below its top.
func NewInterval(top, base float64, code, description string, sourceIndex int) (Interval, error) {
	iv := Interval{
		Top:         top,
		Base:        base,
		Code:        code,
		Description: description,
		SourceIndex: sourceIndex,
	}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Validate checks the depth invariants of the interval.
func (iv Interval) Validate() error {
	switch {
	case math.IsNaN(iv.Top) || math.IsNaN(iv.Base) || math.IsInf(iv.Top, 0) || math.IsInf(iv.Base, 0):
		return fmt.Errorf("%w: non-finite depth (source %d)", ErrInvalidInterval, iv.SourceIndex)
	case iv.Top < 0:
		return fmt.Errorf("%w: negative top depth %.2f (source %d)", ErrInvalidInterval, iv.Top, iv.SourceIndex)
	case iv.Base <= iv.Top:
		return fmt.Errorf("%w: base %.2f not below top %.2f (source %d)", ErrInvalidInterval, iv.Base, iv.Top, iv.SourceIndex)
	}
	return nil
}

// Thickness returns the vertical extent of the interval in metres.
func (iv Interval) Thickness() float64 {
	return iv.Base - iv.Top
}

// Overlaps reports whether the interval shares a non-empty depth range with
// [top, bottom].
func (iv Interval) Overlaps(top, bottom float64) bool {
	return iv.Top < bottom && iv.Base > top
}

// Caption returns the reference caption used on overflow pages.
func (iv Interval) Caption() string {
	return fmt.Sprintf("Depth %.2f–%.2fm (Code: %s)", iv.Top, iv.Base, iv.Code)
}

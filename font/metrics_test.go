package font

import (
	"errors"
	"math"
	"testing"
)

func TestStandard(t *testing.T) {
	for _, name := range Names() {
		m, err := Standard(name)
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
			continue
		}
		if m.Name != name {
			t.Errorf("expected name %s, got %s", name, m.Name)
		}
	}

	if _, err := Standard("Comic Sans"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}
}

func TestWidth(t *testing.T) {
	helvetica, _ := Standard("Helvetica")
	courier, _ := Standard("Courier")

	tests := []struct {
		name     string
		metrics  *Metrics
		r        rune
		expected float64
	}{
		{"helvetica space", helvetica, ' ', 278},
		{"helvetica W", helvetica, 'W', 944},
		{"helvetica a", helvetica, 'a', 556},
		{"courier monospaced", courier, 'i', 600},
		{"wide ideograph", helvetica, '\u7c98', 1000},
		{"combining accent", helvetica, '\u0301', 0},
		{"fallback", helvetica, 'é', 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.Width(tt.r); got != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	courier, _ := Standard("Courier")
	if got := courier.StringWidth("CLAY"); got != 2400 {
		t.Errorf("expected 2400, got %f", got)
	}
	if got := courier.StringWidth(""); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestMeasureMM(t *testing.T) {
	courier, _ := Standard("Courier")

	// ten Courier characters at 10pt are 60pt wide
	got := courier.MeasureMM("abcdefghij", 10)
	want := 60 * PointsToMM
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f mm, got %f mm", want, got)
	}
}

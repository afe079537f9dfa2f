package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/model"
)

// testGeometry returns an A4 frame with a 200mm log area: 10m per page at
// 1:50, toe line at 12mm, 41 characters per description line.
func testGeometry(t *testing.T) *geometry.Geometry {
	t.Helper()
	cfg := geometry.DefaultConfig()
	cfg.HeaderHeight = 77
	geo, err := geometry.Calculate(cfg)
	if err != nil {
		t.Fatalf("unexpected geometry error: %v", err)
	}
	return geo
}

// words returns n ten-letter words; three fit on one 41-character line.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("abcdefghij ", n))
}

func makeInterval(top, base float64, code, desc string, idx int) model.Interval {
	return model.Interval{Top: top, Base: base, Code: code, Description: desc, SourceIndex: idx}
}

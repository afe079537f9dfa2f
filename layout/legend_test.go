package layout

import (
	"testing"

	"github.com/tsawler/borelog/model"
)

func TestDepthToY_Endpoints(t *testing.T) {
	p := NewPositioner(200, 12, 10, 20)

	if y := p.DepthToY(10); y != 200 {
		t.Errorf("page top should map to the log-area top, got %f", y)
	}
	if y := p.DepthToY(20); y != 0 {
		t.Errorf("page bottom should map to 0, got %f", y)
	}
	if y := p.DepthToY(15); y != 100 {
		t.Errorf("mid depth should map to 100, got %f", y)
	}
}

func TestDepthToY_Monotonic(t *testing.T) {
	p := NewPositioner(237, 12, 11.85, 23.7)

	prev := p.DepthToY(11.85)
	for d := 11.85; d <= 23.7; d += 0.013 {
		y := p.DepthToY(d)
		if y > prev {
			t.Fatalf("y increased with depth at %f: %f > %f", d, y, prev)
		}
		prev = y
	}
}

func TestPosition_Visible(t *testing.T) {
	p := NewPositioner(200, 12, 0, 10)

	pos := p.Position(model.Segment{Top: 2, Base: 5})
	if !pos.Visible {
		t.Fatal("expected visible segment")
	}
	if pos.YTop != 160 || pos.YBottom != 100 || pos.YCenter != 130 {
		t.Errorf("unexpected position %+v", pos)
	}
}

func TestPosition_ClipsAtToeLine(t *testing.T) {
	p := NewPositioner(200, 12, 0, 10)

	pos := p.Position(model.Segment{Top: 0, Base: 9.5})
	if pos.YBottom != 12 {
		t.Errorf("expected bottom clipped to toe 12, got %f", pos.YBottom)
	}
	if pos.Height() != 188 {
		t.Errorf("expected height 188, got %f", pos.Height())
	}
}

func TestPosition_InvisibleBelowToe(t *testing.T) {
	p := NewPositioner(200, 12, 0, 10)

	pos := p.Position(model.Segment{Top: 9.6, Base: 10})
	if pos.Visible {
		t.Error("segment below the toe line should be invisible")
	}
	if pos != (model.LegendPosition{}) {
		t.Errorf("expected zero sentinel position, got %+v", pos)
	}
}

func TestRows_KeepsAlignment(t *testing.T) {
	p := NewPositioner(200, 12, 0, 10)
	segs := []model.Segment{
		{Top: 0, Base: 5, Interval: makeInterval(0, 5, "A", "", 0)},
		{Top: 9.7, Base: 9.8, Interval: makeInterval(9.7, 9.8, "B", "", 1)},
		{Top: 9.8, Base: 10, Interval: makeInterval(9.8, 10, "C", "", 2)},
	}

	rows := p.Rows(segs)
	if len(rows) != len(segs) {
		t.Fatalf("expected %d rows, got %d", len(segs), len(rows))
	}
	for i := range rows {
		if rows[i].Segment.Interval.Code != segs[i].Interval.Code {
			t.Errorf("row %d misaligned", i)
		}
	}
	if !rows[0].Legend.Visible || rows[1].Legend.Visible || rows[2].Legend.Visible {
		t.Errorf("unexpected visibility: %v %v %v",
			rows[0].Legend.Visible, rows[1].Legend.Visible, rows[2].Legend.Visible)
	}
}

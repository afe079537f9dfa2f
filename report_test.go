package borelog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/model"
)

func testBoreholes(n int) []Borehole {
	boreholes := make([]Borehole, n)
	for i := range boreholes {
		depth := float64(i + 1)
		boreholes[i] = Borehole{
			ID: fmt.Sprintf("BH%02d", i+1),
			Intervals: []model.Interval{
				iv(0, depth, "A", words(i*20), 0),
				iv(depth, depth*6, "B", "Chalk", 1),
			},
		}
	}
	return boreholes
}

func TestLayoutAll_MatchesSequential(t *testing.T) {
	boreholes := testBoreholes(12)
	opts := testOptions()

	results, err := LayoutAll(context.Background(), boreholes, opts, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(boreholes) {
		t.Fatalf("expected %d results, got %d", len(boreholes), len(results))
	}

	for i, res := range results {
		if res.Err != nil {
			t.Errorf("%s: unexpected error %v", res.Borehole, res.Err)
			continue
		}
		if res.Borehole != boreholes[i].ID {
			t.Errorf("result %d: expected %s, got %s", i, boreholes[i].ID, res.Borehole)
		}
		want, _, _ := LayoutBorehole(boreholes[i], opts)
		if res.Layout.SheetCount() != want.SheetCount() {
			t.Errorf("%s: expected %d sheets, got %d", res.Borehole, want.SheetCount(), res.Layout.SheetCount())
		}
	}
}

func TestLayoutAll_InvalidConfiguration(t *testing.T) {
	opts := testOptions()
	opts.Geometry.Scale = 0

	results, err := LayoutAll(context.Background(), testBoreholes(3), opts, 2)
	if !errors.Is(err, geometry.ErrInvalidConfiguration) {
		t.Errorf("expected a configuration error, got %v", err)
	}
	if results != nil {
		t.Error("expected no results")
	}
}

func TestLayoutAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := LayoutAll(ctx, testBoreholes(5), testOptions(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, res := range results {
		if res.Err == nil {
			// a worker may win the race for the first borehole
			continue
		}
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", res.Borehole, res.Err)
		}
	}
}

type panicMeasurer struct{}

func (panicMeasurer) Measure(string) float64 { panic("broken font") }

func TestLayoutAll_RecoversPanics(t *testing.T) {
	opts := testOptions()
	opts.Measurer = panicMeasurer{}

	results, err := LayoutAll(context.Background(), testBoreholes(2), opts, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, res := range results {
		if res.Err == nil || res.Layout != nil {
			t.Errorf("%s: expected a recovered failure, got %+v", res.Borehole, res)
		}
	}
}

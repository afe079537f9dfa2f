package layout

import (
	"testing"

	"github.com/tsawler/borelog/model"
)

func classifyPage(t *testing.T, intervals []model.Interval, page int) ([]model.LayoutRow, Classification) {
	t.Helper()
	geo := testGeometry(t)
	planner := NewPlanner(geo.DescriptionWidth())

	top, bottom := geo.PageWindow(page)
	rows, _ := planPage(t, planner, intervals, top)
	classes := NewClassifier(geo.ToeY).Classify(rows, page, bottom)
	return rows, classes
}

func TestClassify_AllOnPage(t *testing.T) {
	intervals := []model.Interval{
		makeInterval(0, 2, "A", "Firm brown CLAY", 0),
		makeInterval(2, 5, "B", "Medium dense SAND", 1),
		makeInterval(5, 9, "C", "Stiff grey CLAY", 2),
	}

	_, classes := classifyPage(t, intervals, 1)

	if len(classes.OnPage) != 3 {
		t.Errorf("expected 3 on-page rows, got %d", len(classes.OnPage))
	}
	if classes.OverflowNeeded {
		t.Error("no overflow expected")
	}
}

func TestClassify_LayerContinues(t *testing.T) {
	intervals := []model.Interval{
		makeInterval(0, 8, "A", "Made ground", 0),
		makeInterval(8, 15, "B", words(45), 1),
	}

	rows, classes := classifyPage(t, intervals, 1)

	if rows[1].Text.YBottom >= 12 {
		t.Fatalf("test setup: box should run past the toe, bottom %f", rows[1].Text.YBottom)
	}
	if rows[1].Class != model.ClassLayerContinues {
		t.Errorf("expected layer_continues, got %s", rows[1].Class)
	}
	if classes.OverflowNeeded {
		t.Error("a continuing layer must not request an overflow page")
	}
	if rows[1].Text.Abbreviated {
		t.Error("continuing layers are not abbreviated")
	}
}

func TestClassify_BaseOnPageBottomIsComplete(t *testing.T) {
	intervals := []model.Interval{
		makeInterval(0, 8, "A", "Made ground", 0),
		makeInterval(8, 10, "B", words(45), 1),
		makeInterval(10, 12, "C", "Chalk", 2),
	}

	rows, classes := classifyPage(t, intervals, 1)

	if rows[1].Class != model.ClassLayerComplete {
		t.Errorf("base == page bottom must be layer_complete, got %s", rows[1].Class)
	}
	if !classes.OverflowNeeded {
		t.Error("expected overflow page request")
	}
	if !rows[1].Text.Abbreviated || rows[1].Text.Reference != "1 Overflow" {
		t.Errorf("expected abbreviated box referencing 1 Overflow, got %+v", rows[1].Text)
	}
}

func TestClassify_InvisibleRowWithText(t *testing.T) {
	intervals := []model.Interval{
		makeInterval(0, 9.7, "A", "Made ground", 0),
		makeInterval(9.7, 10, "B", "Topsoil", 1),
	}

	rows, classes := classifyPage(t, intervals, 1)

	if rows[1].Class != model.ClassLayerComplete {
		t.Errorf("hidden layer ending on the page should be rescued, got %s", rows[1].Class)
	}
	if len(classes.LayerComplete) != 1 || classes.LayerComplete[0] != 1 {
		t.Errorf("unexpected partition %+v", classes)
	}
}

func TestClassify_EmptyDescriptionNeverOverflows(t *testing.T) {
	intervals := []model.Interval{
		makeInterval(0, 9.7, "A", "", 0),
		makeInterval(9.7, 10, "B", "", 1),
	}

	rows, classes := classifyPage(t, intervals, 1)

	for i, row := range rows {
		if row.Class != model.ClassOnPage {
			t.Errorf("row %d: expected on_page, got %s", i, row.Class)
		}
	}
	if classes.OverflowNeeded {
		t.Error("empty descriptions must never request overflow")
	}
}

func TestClassify_PartitionIsExclusive(t *testing.T) {
	intervals := []model.Interval{
		makeInterval(0, 1, "A", words(120), 0),
		makeInterval(1, 2, "B", words(9), 1),
		makeInterval(2, 9.9, "C", words(30), 2),
		makeInterval(9.9, 14, "D", words(3), 3),
	}

	rows, classes := classifyPage(t, intervals, 1)

	seen := make(map[int]int)
	for _, set := range [][]int{classes.OnPage, classes.LayerContinues, classes.LayerComplete} {
		for _, idx := range set {
			seen[idx]++
		}
	}
	if len(seen) != len(rows) {
		t.Errorf("expected every row classified, got %d of %d", len(seen), len(rows))
	}
	for idx, n := range seen {
		if n != 1 {
			t.Errorf("row %d classified %d times", idx, n)
		}
	}
}

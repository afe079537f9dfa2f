package layout

import (
	"github.com/tsawler/borelog/model"
)

// Classification partitions a page's rows by overflow class. The slices hold
// row indices in page order; every row appears in exactly one of them.
type Classification struct {
	OnPage         []int
	LayerContinues []int
	LayerComplete  []int

	// OverflowNeeded is true when LayerComplete is not empty.
	OverflowNeeded bool
}

// Classifier decides whether each text box fits above the toe line, can wait
// for its layer to reappear on a later page, or has to be rescued onto an
// overflow page.
type Classifier struct {
	toeY float64
}

// NewClassifier creates a classifier for the given toe line.
func NewClassifier(toeY float64) *Classifier {
	return &Classifier{toeY: toeY}
}

// Classify assigns a class to every row of page number pageNumber, whose
// nominal depth window ends at pageBottom. The un-clipped interval base decides
// between continuing and complete layers, so a layer whose base equals
// pageBottom is complete. Rows with no description are always on the page.
func (c *Classifier) Classify(rows []model.LayoutRow, pageNumber int, pageBottom float64) Classification {
	var result Classification

	for i := range rows {
		row := &rows[i]
		row.Class = c.classify(*row, pageBottom)

		switch row.Class {
		case model.ClassOnPage:
			result.OnPage = append(result.OnPage, i)
		case model.ClassLayerContinues:
			result.LayerContinues = append(result.LayerContinues, i)
		case model.ClassLayerComplete:
			result.LayerComplete = append(result.LayerComplete, i)
			row.Text.Abbreviated = true
			row.Text.Reference = model.OverflowLabel(pageNumber)
		}
	}

	result.OverflowNeeded = len(result.LayerComplete) > 0
	return result
}

func (c *Classifier) classify(row model.LayoutRow, pageBottom float64) model.Class {
	box := row.Text
	switch {
	case len(box.Lines) == 0:
		return model.ClassOnPage
	case box.Visible && box.YBottom >= c.toeY:
		return model.ClassOnPage
	case row.Segment.Continues(pageBottom):
		return model.ClassLayerContinues
	default:
		return model.ClassLayerComplete
	}
}

package pages

import (
	"fmt"

	"github.com/tsawler/borelog/geometry"
	"github.com/tsawler/borelog/layout"
	"github.com/tsawler/borelog/model"
)

// OverflowConfig holds configuration for overflow pages.
type OverflowConfig struct {
	// HeaderHeight is the title block of an overflow page in mm (default: 15)
	HeaderHeight float64 `toml:"header_height"`

	// EntryGap is the vertical space between entries in mm (default: 4)
	EntryGap float64 `toml:"entry_gap"`

	// CaptionHeight is the height of a caption line in mm; 0 uses the
	// planner's line height
	CaptionHeight float64 `toml:"caption_height"`
}

// DefaultOverflowConfig returns sensible default configuration
func DefaultOverflowConfig() OverflowConfig {
	return OverflowConfig{
		HeaderHeight: 15,
		EntryGap:     4,
	}
}

// OverflowBuilder builds overflow pages for regular pages with rescued text.
type OverflowBuilder struct {
	config  OverflowConfig
	geo     *geometry.Geometry
	planner *layout.Planner
}

// NewOverflowBuilder creates a builder with default configuration.
func NewOverflowBuilder(geo *geometry.Geometry, planner *layout.Planner) *OverflowBuilder {
	return NewOverflowBuilderWithConfig(DefaultOverflowConfig(), geo, planner)
}

// NewOverflowBuilderWithConfig creates a builder with custom configuration.
func NewOverflowBuilderWithConfig(config OverflowConfig, geo *geometry.Geometry, planner *layout.Planner) *OverflowBuilder {
	if config.CaptionHeight <= 0 {
		config.CaptionHeight = planner.Config().LineHeight
	}
	return &OverflowBuilder{
		config:  config,
		geo:     geo,
		planner: planner,
	}
}

// BuildAll builds one overflow page per regular page that needs one, in the
// order of pages.
func (b *OverflowBuilder) BuildAll(pages []*model.Page) ([]*model.OverflowPage, []model.Warning) {
	var overflow []*model.OverflowPage
	var warnings []model.Warning

	for _, page := range pages {
		op, w := b.Build(page)
		warnings = append(warnings, w...)
		if op != nil {
			overflow = append(overflow, op)
		}
	}
	return overflow, warnings
}

// Build lays out the overflow page for one regular page, or returns nil when
// the page has no complete layer to rescue. Entries are stacked in a single
// column from the top; an entry that does not fit below the previous ones is
// skipped with a warning and the remaining entries are still tried.
func (b *OverflowBuilder) Build(page *model.Page) (*model.OverflowPage, []model.Warning) {
	rescued := page.RowsByClass(model.ClassLayerComplete)
	if len(rescued) == 0 {
		return nil, nil
	}

	height, col := b.geo.OverflowArea(b.config.HeaderHeight)
	op := &model.OverflowPage{
		SourcePage: page.Number,
		Title:      model.OverflowLabel(page.Number),
		AreaHeight: height,
		Column:     col,
	}

	var warnings []model.Warning
	cursor := height

	for _, row := range rescued {
		iv := row.Segment.Interval
		lines, natural := b.planner.Wrap(iv.Description, col.Width)

		need := b.config.CaptionHeight + natural
		if cursor-need < 0 {
			op.Skipped = append(op.Skipped, iv)
			warnings = append(warnings, model.Warning{
				Kind:        model.WarningOverflowSkipped,
				Page:        page.Number,
				SourceIndex: iv.SourceIndex,
				Message: fmt.Sprintf("%s needs %.1fmm but only %.1fmm remain on %s",
					iv.Caption(), need, cursor, op.Title),
			})
			continue
		}

		boxTop := cursor - b.config.CaptionHeight
		op.Entries = append(op.Entries, model.OverflowEntry{
			Caption:  iv.Caption(),
			CaptionY: cursor,
			Box: model.TextBox{
				YTop:           boxTop,
				YBottom:        boxTop - natural,
				Lines:          lines,
				NaturalHeight:  natural,
				ExtendedHeight: natural,
				VisibleLines:   len(lines),
				RightToLeft:    row.Text.RightToLeft,
				Visible:        true,
			},
			Interval: iv,
		})
		cursor = boxTop - natural - b.config.EntryGap
	}

	return op, warnings
}

package pages

import (
	"sort"

	"github.com/tsawler/borelog/model"
)

// Sequence returns the output order: regular pages by page number, then
// overflow pages by originating page number. Neither input is modified.
func Sequence(regular []*model.Page, overflow []*model.OverflowPage) []model.Sheet {
	pages := append([]*model.Page(nil), regular...)
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Number < pages[j].Number
	})

	extra := append([]*model.OverflowPage(nil), overflow...)
	sort.SliceStable(extra, func(i, j int) bool {
		return extra[i].SourcePage < extra[j].SourcePage
	})

	sheets := make([]model.Sheet, 0, len(pages)+len(extra))
	for _, p := range pages {
		sheets = append(sheets, p)
	}
	for _, o := range extra {
		sheets = append(sheets, o)
	}
	return sheets
}

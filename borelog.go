// Package borelog lays out geotechnical borehole logs: it paginates an
// ordered list of geological intervals into regular log pages, keeping the
// lithology, depth and description columns aligned across page breaks, and
// rescues descriptions too long for their layer onto overflow pages.
//
// Basic usage:
//
//	layout, warnings, err := borelog.New(intervals).Layout()
//	if err != nil {
//	    // invalid page geometry
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", borelog.FormatWarnings(warnings))
//	}
//	for _, sheet := range layout.Sheets {
//	    fmt.Println(sheet.Label())
//	}
//
// With options:
//
//	layout, _, err := borelog.New(intervals).
//	    ID("BH01").
//	    Scale(100).
//	    Measurer(text.NewBasicFaceMeasurer()).
//	    Layout()
//
// The output exposes geometry only; resolving geology codes to colours and
// hatch patterns, and drawing, is left to the renderer.
package borelog

import (
	"fmt"
	"strings"

	"github.com/tsawler/borelog/model"
)

// Warning describes a non-fatal issue. The layout is still returned.
type Warning = model.Warning

// FormatWarnings joins warnings into a single line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Must is a helper that wraps a call returning (layout, warnings, error) and
// panics if the error is non-nil. It discards warnings and is intended for
// scripts and tests.
//
// Example:
//
//	layout := borelog.Must(borelog.New(intervals).Layout())
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(fmt.Sprintf("borelog: %v", err))
	}
	return val
}

package model

import "fmt"

// WarningKind classifies a non-fatal issue.
type WarningKind int

const (
	// WarningDroppedInterval: an interval failed validation and was skipped.
	WarningDroppedInterval WarningKind = iota
	// WarningUnsorted: the input was not sorted by top depth and was re-sorted.
	WarningUnsorted
	// WarningResidualOverlap: text boxes still overlap after the push-down cap.
	WarningResidualOverlap
	// WarningOverflowSkipped: an overflow page could not seat a deferred box.
	WarningOverflowSkipped
)

func (k WarningKind) String() string {
	switch k {
	case WarningDroppedInterval:
		return "dropped_interval"
	case WarningUnsorted:
		return "unsorted"
	case WarningResidualOverlap:
		return "residual_overlap"
	case WarningOverflowSkipped:
		return "overflow_skipped"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue found while laying out a borehole.
// The layout is still returned when warnings are present.
type Warning struct {
	Kind WarningKind

	// Page is the regular page number the warning relates to, or 0.
	Page int

	// SourceIndex is the interval's upstream index, or -1.
	SourceIndex int

	Message string
}

func (w Warning) String() string {
	switch {
	case w.Page > 0:
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	default:
		return w.Message
	}
}

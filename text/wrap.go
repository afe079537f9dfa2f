package text

import (
	"strings"
)

// Wrapper breaks text into lines using greedy word wrapping.
type Wrapper struct {
	measurer Measurer
}

// NewWrapper creates a wrapper that measures with a CellMeasurer.
func NewWrapper() *Wrapper {
	return &Wrapper{measurer: NewCellMeasurer()}
}

// NewWrapperWithMeasurer creates a wrapper using a custom measurer.
func NewWrapperWithMeasurer(m Measurer) *Wrapper {
	if m == nil {
		m = NewCellMeasurer()
	}
	return &Wrapper{measurer: m}
}

// Measurer returns the measurer used by the wrapper.
func (w *Wrapper) Measurer() Measurer {
	return w.measurer
}

// Wrap breaks s into lines no wider than width millimetres. Words wider than
// a whole line are hard-broken. Whitespace runs collapse to a single space.
// An empty or blank string yields no lines.
func (w *Wrapper) Wrap(s string, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current strings.Builder

	for _, word := range words {
		if current.Len() == 0 {
			lines = w.placeFirst(word, width, lines, &current)
			continue
		}

		candidate := current.String() + " " + word
		if w.measurer.Measure(candidate) <= width {
			current.WriteString(" ")
			current.WriteString(word)
			continue
		}

		lines = append(lines, current.String())
		current.Reset()
		lines = w.placeFirst(word, width, lines, &current)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// placeFirst starts a new line with word, hard-breaking it if it is wider
// than the line. Full pieces are appended to lines; the remainder is left in
// current.
func (w *Wrapper) placeFirst(word string, width float64, lines []string, current *strings.Builder) []string {
	if w.measurer.Measure(word) <= width {
		current.WriteString(word)
		return lines
	}

	pieces := w.breakWord(word, width)
	lines = append(lines, pieces[:len(pieces)-1]...)
	current.WriteString(pieces[len(pieces)-1])
	return lines
}

// breakWord splits word into pieces that each fit width. Every piece holds at
// least one rune, so a width narrower than a single glyph still terminates.
func (w *Wrapper) breakWord(word string, width float64) []string {
	var pieces []string
	runes := []rune(word)

	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && w.measurer.Measure(string(runes[start:end+1])) <= width {
			end++
		}
		pieces = append(pieces, string(runes[start:end]))
		start = end
	}
	return pieces
}

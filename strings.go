package gridview

import "github.com/rivo/uniseg"

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	state.grossLength = len(cluster)

	newState = state
	return
}

// StringWidth returns the width of the given string needed to print it on
// screen.
func StringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}

// graphemeBounds returns the byte offsets of all grapheme cluster boundaries
// in text, including 0 and len(text).
func graphemeBounds(text string) []int {
	bounds := []int{0}
	var state *stepState
	offset := 0
	for len(text) > 0 {
		_, text, state = step(text, state)
		offset += state.GrossLength()
		bounds = append(bounds, offset)
	}
	return bounds
}

// fitText shortens text to at most width cells, marking the cut with an
// ellipsis when there is room for one. Grapheme clusters are never split.
func fitText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(text) <= width {
		return text
	}

	ellipsis := SemigraphicsHorizontalEllipsis
	if width == 1 {
		ellipsis = ""
	}
	limit := width - StringWidth(ellipsis)

	var (
		state *stepState
		used  int
		end   int
	)
	for rest := text; len(rest) > 0; {
		_, rest, state = step(rest, state)
		if used+state.Width() > limit {
			break
		}
		used += state.Width()
		end += state.GrossLength()
	}
	return text[:end] + ellipsis
}

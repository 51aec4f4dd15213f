package gridview

import "github.com/ayn2op/gridview/viewport"

// DragSpan returns the columns covered when a value is dragged from column
// idx over column over, not including idx itself. ok is false when nothing
// is covered.
func DragSpan(idx, over int) (span viewport.Span, ok bool) {
	switch {
	case over < 0 || idx == over:
		return viewport.Span{}, false
	case idx < over:
		return viewport.Span{Start: idx + 1, End: over + 1}, true
	}
	return viewport.Span{Start: over, End: idx}, true
}

// dragState is an in-progress drag-fill gesture.
type dragState struct {
	active bool
	rowIdx int
	idx    int
	over   int
	value  any
}

func (d dragState) span() (viewport.Span, bool) {
	if !d.active {
		return viewport.Span{}, false
	}
	return DragSpan(d.idx, d.over)
}

// covers reports whether the cell at (rowIdx, idx) lies under the drag mask.
func (d dragState) covers(rowIdx, idx int) bool {
	span, ok := d.span()
	return ok && rowIdx == d.rowIdx && span.Contains(idx)
}

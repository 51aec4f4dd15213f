package viewport

// ColumnScrollPosition returns how far the horizontal scroll offset must move
// so that the column at idx is fully visible in a viewport clientWidth cells
// wide, given the current scrollLeft. Frozen columns left of idx cover part of
// the viewport and are taken into account. ok is false when the column is
// already in view, or idx is out of range.
func ColumnScrollPosition(columns []Column, idx, scrollLeft, clientWidth int) (delta int, ok bool) {
	if idx < 0 || idx >= len(columns) {
		return 0, false
	}

	left, frozen := 0, 0
	for _, c := range columns[:idx] {
		left += c.Cells()
		if IsFrozen(c) {
			frozen += c.Cells()
		}
	}

	selected := columns[idx]
	scrollLeftEdge := left - frozen - scrollLeft
	scrollRightEdge := left + selected.Cells() - scrollLeft

	if scrollLeftEdge < 0 {
		return scrollLeftEdge, true
	}
	if scrollRightEdge > clientWidth {
		return scrollRightEdge - clientWidth, true
	}
	return 0, false
}

package viewport

import "fmt"

// Span is a half-open index interval [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of indexes in the span.
func (s Span) Len() int {
	return max(s.End-s.Start, 0)
}

// Contains reports whether i lies within the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// VisibleRowRange returns the rows intersecting a container of the given
// height scrolled to scrollTop. All rows are rowHeight cells tall.
func VisibleRowRange(scrollTop, rowHeight, containerHeight, rowCount int) (Span, error) {
	if rowHeight <= 0 {
		return Span{}, fmt.Errorf("%w: row height %d must be positive", ErrInvalidInput, rowHeight)
	}
	if containerHeight < 0 {
		return Span{}, fmt.Errorf("%w: negative container height %d", ErrInvalidInput, containerHeight)
	}
	if rowCount < 0 {
		return Span{}, fmt.Errorf("%w: negative row count %d", ErrInvalidInput, rowCount)
	}

	rendered := ceilDiv(containerHeight, rowHeight)
	start := max(0, floorDiv(scrollTop, rowHeight))
	end := min(start+rendered, rowCount)
	// Scrolled past the end: nothing is visible.
	start = min(start, end)
	return Span{Start: start, End: end}, nil
}

// NonFrozenVisibleColStart returns the render index of the first non-frozen
// column that is drawn at horizontal offset scrollLeft: the first column,
// walking right from the frozen region, whose right edge lies beyond
// scrollLeft. It returns len(columns) when there are no non-frozen columns.
func NonFrozenVisibleColStart(columns []Column, scrollLeft int) int {
	start := LastFrozenIndex(columns) + 1
	if start >= len(columns) {
		return len(columns)
	}

	edge := TotalFrozenWidth(columns)
	for i := start; i < len(columns); i++ {
		edge += columns[i].Cells()
		if edge > scrollLeft {
			return i
		}
	}
	return len(columns) - 1
}

// NonFrozenRenderedColCount returns how many non-frozen columns, starting at
// [NonFrozenVisibleColStart], fit completely into the part of the viewport
// not covered by the frozen region. The part of the first column that is
// hidden behind the frozen region is credited back, so the count reaches the
// right edge of the viewport. A non-positive viewportWidth falls back to the
// total column width.
func NonFrozenRenderedColCount(m Metrics, viewportWidth, scrollLeft int) int {
	columns := m.Columns
	if len(columns) == 0 {
		return 0
	}
	start := NonFrozenVisibleColStart(columns, scrollLeft)
	if start >= len(columns) {
		return 0
	}

	frozenWidth := TotalFrozenWidth(columns)
	if viewportWidth <= 0 {
		viewportWidth = m.TotalColumnWidth
	}

	first := columns[start]
	hidden := 0
	if scrolledFrozen := frozenWidth + scrollLeft; scrolledFrozen > first.Left {
		hidden = scrolledFrozen - first.Left
	}

	remaining := viewportWidth - frozenWidth + hidden
	count := 0
	for _, c := range columns[start:] {
		remaining -= c.Cells()
		if remaining < 0 {
			break
		}
		count++
	}
	return count
}

// VisibleColumnRange returns the non-frozen columns to draw. The span also
// covers the column cut by the right edge of the viewport, which
// [NonFrozenRenderedColCount] leaves out.
func VisibleColumnRange(m Metrics, viewportWidth, scrollLeft int) Span {
	n := len(m.Columns)
	start := NonFrozenVisibleColStart(m.Columns, scrollLeft)
	if start >= n {
		return Span{Start: n, End: n}
	}
	count := NonFrozenRenderedColCount(m, viewportWidth, scrollLeft)
	return Span{Start: start, End: min(start+count+1, n)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

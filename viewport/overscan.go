package viewport

import "fmt"

// OverscanRows is the number of rows (and columns) drawn beyond the visible
// range on the leading edge of scroll travel.
const OverscanRows = 2

// Range is a visible index range together with its overscan expansion.
//
//	0 <= OverscanStart <= VisibleStart <= VisibleEnd <= OverscanEnd <= count
type Range struct {
	VisibleStart  int
	VisibleEnd    int
	OverscanStart int
	OverscanEnd   int
}

// Visible returns the visible part of the range.
func (r Range) Visible() Span {
	return Span{Start: r.VisibleStart, End: r.VisibleEnd}
}

// Overscan returns the full range to draw.
func (r Range) Overscan() Span {
	return Span{Start: r.OverscanStart, End: r.OverscanEnd}
}

// RowOverscanRange expands the visible rows [visibleStart, visibleEnd) by
// [OverscanRows] in the direction of travel only: upwards when scrolling up,
// downwards when scrolling down, not at all otherwise.
func RowOverscanRange(direction Direction, visibleStart, visibleEnd, rowCount int) (Range, error) {
	visibleStart = max(0, visibleStart)
	if err := checkVisible(visibleStart, visibleEnd, rowCount); err != nil {
		return Range{}, err
	}

	r := Range{
		VisibleStart:  visibleStart,
		VisibleEnd:    visibleEnd,
		OverscanStart: visibleStart,
		OverscanEnd:   visibleEnd,
	}
	switch direction {
	case DirectionUp:
		r.OverscanStart = max(0, visibleStart-OverscanRows)
	case DirectionDown:
		r.OverscanEnd = min(visibleEnd+OverscanRows, rowCount)
	}
	return r, nil
}

// ColOverscanRange works like [RowOverscanRange] for the non-frozen columns
// [visibleStart, visibleEnd), keyed on left and right travel. The overscan
// never reaches into the frozen region, which is always drawn in full.
func ColOverscanRange(direction Direction, visibleStart, visibleEnd, totalColumns, lastFrozenIdx int) (Range, error) {
	if err := checkVisible(visibleStart, visibleEnd, totalColumns); err != nil {
		return Range{}, err
	}
	minStart := max(lastFrozenIdx+1, 0)
	if visibleStart < minStart {
		return Range{}, fmt.Errorf("%w: visible column %d lies in the frozen region ending at %d", ErrInvalidInput, visibleStart, lastFrozenIdx)
	}

	r := Range{
		VisibleStart:  visibleStart,
		VisibleEnd:    visibleEnd,
		OverscanStart: visibleStart,
		OverscanEnd:   visibleEnd,
	}
	switch direction {
	case DirectionLeft:
		r.OverscanStart = max(minStart, visibleStart-OverscanRows)
	case DirectionRight:
		r.OverscanEnd = min(visibleEnd+OverscanRows, totalColumns)
	}
	return r, nil
}

func checkVisible(start, end, count int) error {
	if start < 0 || start > end || end > count {
		return fmt.Errorf("%w: visible range [%d,%d) outside [0,%d)", ErrInvalidInput, start, end, count)
	}
	return nil
}

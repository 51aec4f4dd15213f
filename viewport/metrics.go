package viewport

import "fmt"

// Metrics is a snapshot of the column layout for a given total width.
//
// A Metrics value is never modified in place: [Recalculate] and
// [ResizeColumn] return a new snapshot with its own column slice, so a
// committed snapshot and a transient resizing snapshot never alias.
type Metrics struct {
	// Columns in render order (frozen first) once recalculated.
	Columns []Column
	// Width is the sum of the widths that were resolved before deferred
	// columns received their share.
	Width int
	// TotalWidth is the width of the grid container.
	TotalWidth int
	// TotalColumnWidth is the sum of all resolved column widths.
	TotalColumnWidth int
	// MinColumnWidth is the lower bound for deferred and resized columns.
	MinColumnWidth int
	// ScrollbarWidth is reserved from the unallocated space before it is
	// shared between deferred columns.
	ScrollbarWidth int
}

// Column returns the column with the given key and its position.
func (m Metrics) Column(key string) (Column, int, bool) {
	for i, c := range m.Columns {
		if c.Key == key {
			return c, i, true
		}
	}
	return Column{}, -1, false
}

// Recalculate resolves column widths, assigns left offsets and orders the
// columns frozen-first.
//
// Percentage widths become floor(p/100*TotalWidth). Deferred columns share
// TotalWidth minus everything already resolved minus the scrollbar
// reservation, each receiving floor(unallocated/count) but never less than
// MinColumnWidth. Left offsets are assigned in authored order before the
// frozen-first partition, Idx after it, so Left is not monotonic in Idx when
// frozen columns are authored after non-frozen ones.
func Recalculate(m Metrics) (Metrics, error) {
	if err := validateMetrics(m); err != nil {
		return Metrics{}, err
	}

	columns := setColumnWidths(m.Columns, m.TotalWidth)
	width := totalColumnWidth(columns)
	unallocated := m.TotalWidth - width - m.ScrollbarWidth
	columns = setDeferredColumnWidths(columns, unallocated, m.MinColumnWidth)
	columns = setColumnOffsets(columns)
	columns = partitionFrozen(columns)

	return Metrics{
		Columns:          columns,
		Width:            width,
		TotalWidth:       m.TotalWidth,
		TotalColumnWidth: totalColumnWidth(columns),
		MinColumnWidth:   m.MinColumnWidth,
		ScrollbarWidth:   m.ScrollbarWidth,
	}, nil
}

// ResizeColumn returns a new snapshot in which the column at index has the
// given width, clamped to MinColumnWidth, and the layout is recalculated.
func ResizeColumn(m Metrics, index, width int) (Metrics, error) {
	if index < 0 || index >= len(m.Columns) {
		return Metrics{}, fmt.Errorf("%w: column index %d out of range [0,%d)", ErrInvalidInput, index, len(m.Columns))
	}

	clone := m
	clone.Columns = make([]Column, len(m.Columns))
	copy(clone.Columns, m.Columns)

	updated := clone.Columns[index]
	updated.Width = Cells(max(width, m.MinColumnWidth))
	clone.Columns[index] = updated

	return Recalculate(clone)
}

func validateMetrics(m Metrics) error {
	if m.TotalWidth < 0 {
		return fmt.Errorf("%w: negative total width %d", ErrInvalidInput, m.TotalWidth)
	}
	if m.MinColumnWidth < 0 {
		return fmt.Errorf("%w: negative minimum column width %d", ErrInvalidInput, m.MinColumnWidth)
	}
	if m.ScrollbarWidth < 0 {
		return fmt.Errorf("%w: negative scrollbar width %d", ErrInvalidInput, m.ScrollbarWidth)
	}
	_, err := indexByKey(m.Columns)
	return err
}

func setColumnWidths(columns []Column, totalWidth int) []Column {
	out := make([]Column, len(columns))
	for i, c := range columns {
		if c.Width.IsPercent() {
			// Integer math is exact here: floor(p*total/100) == floor(p/100*total).
			c.Width = Cells(c.Width.Value() * totalWidth / 100)
		}
		out[i] = c
	}
	return out
}

func setDeferredColumnWidths(columns []Column, unallocated, minColumnWidth int) []Column {
	// Columns resolved to zero are counted as deferred but keep their width.
	deferred := 0
	for _, c := range columns {
		if c.Cells() == 0 {
			deferred++
		}
	}

	out := make([]Column, len(columns))
	for i, c := range columns {
		if c.Width.IsDeferred() {
			if unallocated <= 0 {
				c.Width = Cells(minColumnWidth)
			} else {
				c.Width = Cells(max(unallocated/deferred, minColumnWidth))
			}
		}
		out[i] = c
	}
	return out
}

func setColumnOffsets(columns []Column) []Column {
	out := make([]Column, len(columns))
	left := 0
	for i, c := range columns {
		c.Left = left
		left += c.Cells()
		out[i] = c
	}
	return out
}

func partitionFrozen(columns []Column) []Column {
	out := make([]Column, 0, len(columns))
	for _, c := range columns {
		if IsFrozen(c) {
			out = append(out, c)
		}
	}
	for _, c := range columns {
		if !IsFrozen(c) {
			out = append(out, c)
		}
	}
	for i := range out {
		out[i].Idx = i
	}
	return out
}

func totalColumnWidth(columns []Column) int {
	total := 0
	for _, c := range columns {
		total += c.Cells()
	}
	return total
}

func indexByKey(columns []Column) (map[string]Column, error) {
	byKey := make(map[string]Column, len(columns))
	for _, c := range columns {
		if _, ok := byKey[c.Key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, c.Key)
		}
		byKey[c.Key] = c
	}
	return byKey, nil
}

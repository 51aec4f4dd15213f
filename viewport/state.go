package viewport

// State is the outcome of one viewport computation: what to draw and where
// the viewport is.
type State struct {
	Rows    Range
	Columns Range
	Frozen  FrozenBoundary

	Direction  Direction
	ScrollTop  int
	ScrollLeft int

	// Width and Height are the viewport dimensions the state was computed
	// for, after fallbacks were applied.
	Width  int
	Height int
}

// InitialState returns the state of a grid that has not been scrolled yet. It
// assumes every column is at least MinColumnWidth wide and overscans both
// rows and columns by a full viewport so the first scroll does not show blank
// cells.
func InitialState(m Metrics, rowCount, rowHeight, minHeight, headerHeight int) State {
	columnCount := len(m.Columns)
	frozen := Boundary(m.Columns)

	renderedRows := 0
	if rowHeight > 0 {
		renderedRows = max(ceilDiv(minHeight-rowHeight, rowHeight), 0)
	}
	renderedCols := columnCount
	if m.MinColumnWidth > 0 {
		renderedCols = max(ceilDiv(m.TotalWidth-m.MinColumnWidth, m.MinColumnWidth), 0)
	}

	rowEnd := min(renderedRows, rowCount)
	colStart := min(frozen.FirstNonFrozenIndex(), columnCount)
	colEnd := min(max(renderedCols, colStart), columnCount)

	return State{
		Rows: Range{
			VisibleStart:  0,
			VisibleEnd:    rowEnd,
			OverscanStart: 0,
			OverscanEnd:   min(rowCount, max(renderedRows*2, rowEnd)),
		},
		Columns: Range{
			VisibleStart:  colStart,
			VisibleEnd:    colEnd,
			OverscanStart: colStart,
			OverscanEnd:   min(columnCount, max(renderedCols*2, colEnd)),
		},
		Frozen:    frozen,
		Direction: DirectionNone,
		Width:     m.TotalWidth,
		Height:    max(minHeight-headerHeight, 0),
	}
}

// Input carries everything one viewport computation needs. Metrics must have
// been produced by [Recalculate].
type Input struct {
	Metrics Metrics

	RowCount  int
	RowHeight int

	// Width and Height of the scrollable body, in cells.
	Width  int
	Height int

	ScrollTop  int
	ScrollLeft int
}

// Viewport is the entry point a widget calls on every scroll or resize
// notification. It remembers the previous scroll offsets, for direction
// classification, and the last usable width.
//
// The zero value is ready to use. A Viewport is not safe for concurrent use;
// it belongs to the goroutine that draws the grid.
type Viewport struct {
	scroll    ScrollState
	lastWidth int
}

// Update classifies the scroll movement since the previous call and computes
// visible and overscan ranges for rows and columns. A non-positive width
// falls back to the last width that was positive.
//
// On error the previous scroll offsets are kept, so a rejected tick does not
// influence the next classification.
func (v *Viewport) Update(in Input) (State, error) {
	width := in.Width
	if width > 0 {
		v.lastWidth = width
	} else {
		width = v.lastWidth
	}

	rows, err := VisibleRowRange(in.ScrollTop, in.RowHeight, in.Height, in.RowCount)
	if err != nil {
		return State{}, err
	}

	direction, next := v.scroll.Advance(in.ScrollTop, in.ScrollLeft)

	rowRange, err := RowOverscanRange(direction, rows.Start, rows.End, in.RowCount)
	if err != nil {
		return State{}, err
	}

	frozen := Boundary(in.Metrics.Columns)
	cols := VisibleColumnRange(in.Metrics, width, in.ScrollLeft)
	colRange, err := ColOverscanRange(direction, cols.Start, cols.End, len(in.Metrics.Columns), frozen.LastFrozenIndex)
	if err != nil {
		return State{}, err
	}

	v.scroll = next
	return State{
		Rows:       rowRange,
		Columns:    colRange,
		Frozen:     frozen,
		Direction:  direction,
		ScrollTop:  in.ScrollTop,
		ScrollLeft: in.ScrollLeft,
		Width:      width,
		Height:     in.Height,
	}, nil
}

// Scroll returns the recorded scroll offsets.
func (v *Viewport) Scroll() ScrollState {
	return v.scroll
}

// Reset forgets the previous scroll offsets and width. The next Update
// classifies as [DirectionNone].
func (v *Viewport) Reset() {
	*v = Viewport{}
}

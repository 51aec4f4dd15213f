package gridview

import (
	"io"
	"log/slog"
	"slices"

	"github.com/ayn2op/gridview/viewport"
	"github.com/gdamore/tcell/v2"
)

// CellExpandEvent is passed to the cell expand handler.
type CellExpandEvent struct {
	RowIdx  int
	Idx     int
	Row     any
	Details *SubRowDetails
}

// SubRowDeleteEvent is passed to the sub-row delete handler. Details carry
// the position of the row among its siblings.
type SubRowDeleteEvent struct {
	RowIdx  int
	Idx     int
	Row     any
	Details *SubRowDetails
}

// CellsDraggedEvent is passed to the drag-fill handler when a value was
// dragged from one cell across neighbouring cells of the same row.
type CellsDraggedEvent struct {
	RowIdx int
	// FromKey is the key of the source column, Value its value.
	FromKey string
	Value   any
	// Span holds the render indexes of the covered columns, ToKeys their keys.
	Span   viewport.Span
	ToKeys []string
}

// Grid is a virtualized table. Only the rows and columns intersecting the
// viewport, plus a small overscan in the direction of travel, are drawn, so
// the number of rows does not affect drawing time.
//
// Columns may be frozen to the left edge, resized with the mouse or the
// keyboard, and sorted by clicking their header. Cells of editable columns
// are edited in place.
type Grid struct {
	*Box

	// Authored columns, in authored order.
	columns []viewport.Column
	// Committed metrics for the current width.
	metrics      viewport.Metrics
	metricsStale bool

	viewport viewport.Viewport
	state    viewport.State
	hasState bool

	rows       RowSource
	access     RowAccess
	formatters map[string]Formatter
	formatter  Formatter
	selection  RowSelection
	subRows    SubRowFunc

	enableCellSelect bool
	rowEditable      func(rowIdx int, row any, column viewport.Column) bool
	multiSort        bool

	rowHeight      int
	headerHeight   int
	minColumnWidth int
	scrollbarWidth int

	scrollTop  int
	scrollLeft int

	selectedRow int
	selectedKey string

	sort []SortColumn

	editor     *CellEditor
	editing    bool
	editRow    int
	editColumn string

	drag   dragState
	resize resizeState

	vScroll *ScrollBar
	hScroll *ScrollBar

	keyMap GridKeyMap
	logger *slog.Logger

	sortFunc      func(key string, direction SortDirection)
	columnResize  func(index, width int)
	cellUpdate    func(rowIdx int, key string, value any)
	cellsDragged  func(event CellsDraggedEvent)
	cellExpand    func(event CellExpandEvent)
	deleteSubRow  func(event SubRowDeleteEvent)
	selected      func(rowIdx int, column viewport.Column)
	rowSelectFunc func(rowIdx int, row any, selected bool)
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	g := &Grid{
		Box:            NewBox(),
		rows:           RowSlice[any](nil),
		formatters:     make(map[string]Formatter),
		formatter:      SimpleFormatter{},
		rowHeight:      1,
		headerHeight:   1,
		minColumnWidth: 4,
		scrollbarWidth: 1,
		vScroll:        NewScrollBar(Vertical),
		hScroll:        NewScrollBar(Horizontal),
		keyMap:         DefaultGridKeyMap(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	g.editor = NewCellEditor().SetDoneFunc(g.finishEdit)
	track := tcell.StyleDefault.Foreground(Styles.ScrollBarTrackColor)
	for _, bar := range []*ScrollBar{g.vScroll, g.hScroll} {
		bar.SetTrackStyle(track.Dim(true)).
			SetArrowStyle(track).
			SetThumbStyle(tcell.StyleDefault.Foreground(Styles.ScrollBarThumbColor))
	}
	g.hScroll.SetScrollStep(4)
	return g
}

// SetScrollBarGlyphs sets the glyphs both scroll bars are drawn with.
func (g *Grid) SetScrollBarGlyphs(glyphs GlyphSet) *Grid {
	g.vScroll.SetGlyphSet(glyphs)
	g.hScroll.SetGlyphSet(glyphs)
	g.MarkDirty()
	return g
}

// SetScrollBarAutoHide sets whether scroll bars are hidden while everything
// fits. The space of the vertical bar stays reserved either way.
func (g *Grid) SetScrollBarAutoHide(autoHide bool) *Grid {
	g.vScroll.SetAutoHide(autoHide)
	g.hScroll.SetAutoHide(autoHide)
	g.MarkDirty()
	return g
}

// SetColumns sets the authored columns. Metrics are recalculated on the next
// draw unless the new columns describe the same column set in the same order.
// Column sets with repeated keys are rejected and logged.
func (g *Grid) SetColumns(columns []viewport.Column) *Grid {
	same, err := viewport.SameColumns(g.columns, columns, viewport.SameColumn)
	if err != nil {
		g.logger.Warn("columns rejected", slog.Any("err", err))
		return g
	}
	if same && slices.EqualFunc(g.columns, columns, func(a, b viewport.Column) bool { return a.Key == b.Key }) {
		return g
	}

	g.columns = slices.Clone(columns)
	g.metricsStale = true
	g.cancelGestures()
	if _, ok := g.authoredIndex(g.selectedKey); !ok {
		g.selectedKey = ""
		if len(columns) > 0 {
			g.selectedKey = columns[0].Key
		}
	}
	g.MarkDirty()
	return g
}

// GetColumns returns a copy of the authored columns.
func (g *Grid) GetColumns() []viewport.Column {
	return slices.Clone(g.columns)
}

// SetRows sets the row source and scrolls back to the top.
func (g *Grid) SetRows(rows RowSource) *Grid {
	if rows == nil {
		rows = RowSlice[any](nil)
	}
	g.rows = rows
	g.selectedRow = min(g.selectedRow, max(rows.RowCount()-1, 0))
	g.scrollTop = 0
	g.viewport.Reset()
	g.hasState = false
	g.cancelGestures()
	g.MarkDirty()
	return g
}

// SetRowAccess sets how cell values are read from rows.
func (g *Grid) SetRowAccess(access RowAccess) *Grid {
	g.access = access
	g.MarkDirty()
	return g
}

// SetRowHeight sets the height of every row in cells.
func (g *Grid) SetRowHeight(height int) *Grid {
	height = max(height, 1)
	if g.rowHeight != height {
		g.rowHeight = height
		g.viewport.Reset()
		g.MarkDirty()
	}
	return g
}

// SetHeaderHeight sets the height of the header in cells. Zero hides it.
func (g *Grid) SetHeaderHeight(height int) *Grid {
	g.headerHeight = max(height, 0)
	g.MarkDirty()
	return g
}

// SetMinColumnWidth sets the minimum width of deferred and resized columns.
func (g *Grid) SetMinColumnWidth(width int) *Grid {
	width = max(width, 1)
	if g.minColumnWidth != width {
		g.minColumnWidth = width
		g.metricsStale = true
		g.MarkDirty()
	}
	return g
}

// SetFormatter sets the formatter of the column with the given key. A nil
// formatter restores the default.
func (g *Grid) SetFormatter(key string, formatter Formatter) *Grid {
	if formatter == nil {
		delete(g.formatters, key)
	} else {
		g.formatters[key] = formatter
	}
	g.MarkDirty()
	return g
}

// SetDefaultFormatter sets the formatter of columns without their own.
func (g *Grid) SetDefaultFormatter(formatter Formatter) *Grid {
	if formatter == nil {
		formatter = SimpleFormatter{}
	}
	g.formatter = formatter
	g.MarkDirty()
	return g
}

// SetSelection sets which rows are selected.
func (g *Grid) SetSelection(selection RowSelection) *Grid {
	g.selection = selection
	g.MarkDirty()
	return g
}

// GetSelection returns the row selection.
func (g *Grid) GetSelection() RowSelection {
	return g.selection
}

// SetSubRowFunc sets the function describing the tree position of rows.
func (g *Grid) SetSubRowFunc(f SubRowFunc) *Grid {
	g.subRows = f
	g.MarkDirty()
	return g
}

// SetEnableCellSelect enables cell editing. Without it no cell is editable.
func (g *Grid) SetEnableCellSelect(enable bool) *Grid {
	g.enableCellSelect = enable
	return g
}

// SetRowEditableFunc sets a per-row predicate that replaces the Editable
// flag of columns.
func (g *Grid) SetRowEditableFunc(f func(rowIdx int, row any, column viewport.Column) bool) *Grid {
	g.rowEditable = f
	return g
}

// SetMultiSort makes header clicks add to the sort instead of replacing it.
func (g *Grid) SetMultiSort(multiSort bool) *Grid {
	g.multiSort = multiSort
	return g
}

// SetSort sets the sort shown in the header.
func (g *Grid) SetSort(sort []SortColumn) *Grid {
	if !SortColumnsEqual(g.sort, sort) {
		g.sort = slices.Clone(sort)
		g.MarkDirty()
	}
	return g
}

// GetSort returns the sort shown in the header.
func (g *Grid) GetSort() []SortColumn {
	return slices.Clone(g.sort)
}

// SetKeyMap replaces the key bindings. DeleteSubRow stays enabled only while
// a sub-row delete handler is set.
func (g *Grid) SetKeyMap(keyMap GridKeyMap) *Grid {
	g.keyMap = keyMap
	g.keyMap.DeleteSubRow.SetEnabled(g.deleteSubRow != nil)
	return g
}

// GetKeyMap returns the key bindings.
func (g *Grid) GetKeyMap() GridKeyMap {
	return g.keyMap
}

// SetLogger sets the logger for layout failures and column changes.
func (g *Grid) SetLogger(logger *slog.Logger) *Grid {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// SetSortFunc sets the handler called when a header cycles its sort.
func (g *Grid) SetSortFunc(handler func(key string, direction SortDirection)) *Grid {
	g.sortFunc = handler
	return g
}

// SetColumnResizeFunc sets the handler called with the render index and the
// new width when a column resize is committed.
func (g *Grid) SetColumnResizeFunc(handler func(index, width int)) *Grid {
	g.columnResize = handler
	return g
}

// SetCellUpdateFunc sets the handler called when an edit is committed.
func (g *Grid) SetCellUpdateFunc(handler func(rowIdx int, key string, value any)) *Grid {
	g.cellUpdate = handler
	return g
}

// SetCellsDraggedFunc sets the handler called when a drag-fill ends.
func (g *Grid) SetCellsDraggedFunc(handler func(event CellsDraggedEvent)) *Grid {
	g.cellsDragged = handler
	return g
}

// SetCellExpandFunc sets the handler called when an expandable cell is
// activated.
func (g *Grid) SetCellExpandFunc(handler func(event CellExpandEvent)) *Grid {
	g.cellExpand = handler
	return g
}

// SetDeleteSubRowFunc sets the handler that deletes child rows. Child rows
// show a delete glyph in the expander column while a handler is set, and the
// DeleteSubRow key is enabled.
func (g *Grid) SetDeleteSubRowFunc(handler func(event SubRowDeleteEvent)) *Grid {
	g.deleteSubRow = handler
	g.keyMap.DeleteSubRow.SetEnabled(handler != nil)
	g.MarkDirty()
	return g
}

// SetSelectedFunc sets the handler called when the cursor moves.
func (g *Grid) SetSelectedFunc(handler func(rowIdx int, column viewport.Column)) *Grid {
	g.selected = handler
	return g
}

// SetRowSelectFunc sets the handler called when a row's selection is
// toggled. The grid does not change its RowSelection itself.
func (g *Grid) SetRowSelectFunc(handler func(rowIdx int, row any, selected bool)) *Grid {
	g.rowSelectFunc = handler
	return g
}

// GetCursor returns the selected row and the key of the selected column.
func (g *Grid) GetCursor() (rowIdx int, key string) {
	return g.selectedRow, g.selectedKey
}

// SetCursor moves the cursor and scrolls it into view.
func (g *Grid) SetCursor(rowIdx int, key string) *Grid {
	if _, ok := g.authoredIndex(key); ok {
		g.selectedKey = key
	}
	g.selectedRow = min(max(rowIdx, 0), max(g.rows.RowCount()-1, 0))
	g.scrollToCursor()
	g.MarkDirty()
	return g
}

// GetScroll returns the scroll offsets in cells.
func (g *Grid) GetScroll() (top, left int) {
	return g.scrollTop, g.scrollLeft
}

// SetScroll sets the scroll offsets in cells. They are clamped on the next
// draw.
func (g *Grid) SetScroll(top, left int) *Grid {
	g.scrollTop, g.scrollLeft = max(top, 0), max(left, 0)
	g.MarkDirty()
	return g
}

// GetMetrics returns the committed column metrics of the last layout.
func (g *Grid) GetMetrics() viewport.Metrics {
	return g.metrics
}

// GetState returns the viewport state of the last draw.
func (g *Grid) GetState() viewport.State {
	return g.state
}

// IsEditing reports whether the cell editor is open.
func (g *Grid) IsEditing() bool {
	return g.editing
}

// gridLayout holds the screen regions of one frame.
type gridLayout struct {
	x, y, width, height int

	bodyX, bodyY          int
	bodyWidth, bodyHeight int

	showHScroll bool
}

// layout computes the regions for the current rect and returns the metrics
// to draw with: the transient resize snapshot during a resize gesture, the
// committed metrics otherwise.
func (g *Grid) layout() (gridLayout, viewport.Metrics) {
	x, y, width, height := g.GetInnerRect()
	m := g.committedMetrics(width)
	if g.resize.active {
		m = g.resize.snapshot
	}

	l := gridLayout{x: x, y: y, width: width, height: height}
	l.bodyX = x
	l.bodyY = y + g.headerHeight
	l.bodyWidth = max(width-g.scrollbarWidth, 0)
	l.bodyHeight = max(height-g.headerHeight, 0)
	if m.TotalColumnWidth > l.bodyWidth && l.bodyHeight > 1 {
		l.showHScroll = true
		l.bodyHeight--
	}
	return l, m
}

// committedMetrics returns the metrics for totalWidth, recalculating them if
// the columns or the width changed. On failure the last good metrics are
// kept.
func (g *Grid) committedMetrics(totalWidth int) viewport.Metrics {
	if !g.metricsStale && g.metrics.TotalWidth == totalWidth && len(g.metrics.Columns) > 0 {
		return g.metrics
	}

	visible := make([]viewport.Column, 0, len(g.columns))
	for _, c := range g.columns {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}
	m, err := viewport.Recalculate(viewport.Metrics{
		// Frozen columns are moved to the front first so that offsets grow
		// with the render index.
		Columns:        frozenFirst(visible),
		TotalWidth:     totalWidth,
		MinColumnWidth: g.minColumnWidth,
		ScrollbarWidth: g.scrollbarWidth,
	})
	if err != nil {
		g.logger.Warn("column metrics rejected", slog.Any("err", err), slog.Int("width", totalWidth))
		return g.metrics
	}

	g.logger.Debug("column metrics recalculated",
		slog.Int("width", totalWidth),
		slog.Int("columns", len(m.Columns)),
		slog.Int("total_column_width", m.TotalColumnWidth),
	)
	g.metrics = m
	g.metricsStale = false
	return m
}

func frozenFirst(columns []viewport.Column) []viewport.Column {
	out := make([]viewport.Column, 0, len(columns))
	for _, c := range columns {
		if viewport.IsFrozen(c) {
			out = append(out, c)
		}
	}
	for _, c := range columns {
		if !viewport.IsFrozen(c) {
			out = append(out, c)
		}
	}
	return out
}

func (g *Grid) authoredIndex(key string) (int, bool) {
	for i, c := range g.columns {
		if c.Key == key {
			return i, true
		}
	}
	return -1, false
}

// updateViewport runs the viewport computation for this frame. When it
// fails, the last good state is drawn again.
func (g *Grid) updateViewport(l gridLayout, m viewport.Metrics) viewport.State {
	state, err := g.viewport.Update(viewport.Input{
		Metrics:    m,
		RowCount:   g.rows.RowCount(),
		RowHeight:  g.rowHeight,
		Width:      l.bodyWidth,
		Height:     l.bodyHeight,
		ScrollTop:  g.scrollTop,
		ScrollLeft: g.scrollLeft,
	})
	if err != nil {
		g.logger.Warn("viewport update failed", slog.Any("err", err))
		if !g.hasState {
			g.state = viewport.InitialState(m, g.rows.RowCount(), g.rowHeight, l.height, g.headerHeight)
			g.hasState = true
		}
		return g.state
	}
	g.state = state
	g.hasState = true
	return state
}

// maxScroll returns the largest scroll offsets for the layout.
func (g *Grid) maxScroll(l gridLayout, m viewport.Metrics) (top, left int) {
	top = max(g.rows.RowCount()*g.rowHeight-l.bodyHeight, 0)
	contentWidth := m.TotalColumnWidth
	if g.resize.active {
		// A resize gesture must not pull the content back under the mouse.
		contentWidth = max(contentWidth, g.metrics.TotalColumnWidth)
	}
	left = max(contentWidth-l.bodyWidth, 0)
	return top, left
}

func (g *Grid) clampScroll(l gridLayout, m viewport.Metrics) {
	maxTop, maxLeft := g.maxScroll(l, m)
	g.scrollTop = min(max(g.scrollTop, 0), maxTop)
	g.scrollLeft = min(max(g.scrollLeft, 0), maxLeft)
}

// selectedColumn returns the selected column and its render index.
func (g *Grid) selectedColumn(m viewport.Metrics) (viewport.Column, int, bool) {
	return m.Column(g.selectedKey)
}

// scrollToCursor scrolls just enough to show the selected cell.
func (g *Grid) scrollToCursor() {
	l, m := g.layout()
	if l.bodyHeight <= 0 {
		return
	}

	top := g.selectedRow * g.rowHeight
	if top < g.scrollTop {
		g.scrollTop = top
	} else if bottom := top + g.rowHeight; bottom > g.scrollTop+l.bodyHeight {
		g.scrollTop = bottom - l.bodyHeight
	}

	if c, idx, ok := g.selectedColumn(m); ok && !viewport.IsFrozen(c) {
		if delta, ok := viewport.ColumnScrollPosition(m.Columns, idx, g.scrollLeft, l.bodyWidth); ok {
			g.scrollLeft += delta
		}
	}
	g.clampScroll(l, m)
}

// columnX returns the screen column at which c starts.
func (g *Grid) columnX(l gridLayout, c viewport.Column) int {
	if viewport.IsFrozen(c) {
		return l.bodyX + c.Left
	}
	return l.bodyX + c.Left - g.scrollLeft
}

// columnAt returns the render index of the column drawn at screen column x.
func (g *Grid) columnAt(l gridLayout, m viewport.Metrics, x int) int {
	if x < l.bodyX || x >= l.bodyX+l.bodyWidth {
		return -1
	}
	frozen := viewport.Boundary(m.Columns)
	for i, c := range m.Columns {
		left := g.columnX(l, c)
		if !viewport.IsFrozen(c) && x < l.bodyX+frozen.FrozenWidth {
			continue
		}
		if x >= left && x < left+c.Cells() {
			return i
		}
	}
	return -1
}

// rowAt returns the row drawn at screen row y.
func (g *Grid) rowAt(l gridLayout, y int) int {
	if y < l.bodyY || y >= l.bodyY+l.bodyHeight {
		return -1
	}
	row := (y - l.bodyY + g.scrollTop) / g.rowHeight
	if row >= g.rows.RowCount() {
		return -1
	}
	return row
}

func (g *Grid) cellValue(rowIdx int, row any, key string) any {
	if key == SelectRowKey {
		return IsRowSelected(g.selection, g.access, row, rowIdx)
	}
	return g.access.Value(row, key)
}

func (g *Grid) formatterFor(key string, value any) Formatter {
	if f, ok := g.formatters[key]; ok {
		return f
	}
	if _, ok := value.(bool); ok {
		return CheckboxFormatter{}
	}
	return g.formatter
}

func (g *Grid) subRowDetails(rowIdx int, row any) *SubRowDetails {
	if g.subRows == nil {
		return nil
	}
	return g.subRows(rowIdx, row)
}

func (g *Grid) canEdit(rowIdx int, row any, c viewport.Column) bool {
	var rowEditable func(viewport.Column) bool
	if g.rowEditable != nil {
		rowEditable = func(c viewport.Column) bool {
			return g.rowEditable(rowIdx, row, c)
		}
	}
	return viewport.CanEdit(c, rowEditable, g.enableCellSelect)
}

// Focus is called when the grid receives focus.
func (g *Grid) Focus(delegate func(p Primitive)) {
	g.Box.Focus(delegate)
	if g.editing {
		g.editor.Focus(delegate)
	}
}

// Blur is called when the grid loses focus. An open editor is cancelled.
func (g *Grid) Blur() {
	if g.editing {
		g.finishEdit(tcell.KeyEscape)
	}
	g.cancelGestures()
	g.Box.Blur()
}

func (g *Grid) cancelGestures() {
	g.drag = dragState{}
	g.resize = resizeState{}
}

var _ Primitive = &Grid{}

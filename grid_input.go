package gridview

import (
	"log/slog"

	"github.com/ayn2op/gridview/keybind"
	"github.com/ayn2op/gridview/viewport"
	"github.com/gdamore/tcell/v2"
)

// resizeState is an in-progress column resize gesture. snapshot is the
// transient metrics drawn while dragging; it is only committed on release.
type resizeState struct {
	active   bool
	pos      int
	key      string
	left     int
	snapshot viewport.Metrics
}

const (
	wheelRows    = 3
	wheelColumns = 4
)

// InputHandler handles key events. While the editor is open, all keys go to
// it.
func (g *Grid) InputHandler(event *tcell.EventKey) Command {
	if g.editing {
		return g.editor.InputHandler(event)
	}

	l, m := g.layout()
	rowCount := g.rows.RowCount()
	_, idx, hasColumn := g.selectedColumn(m)
	page := max(l.bodyHeight/g.rowHeight, 1)

	switch {
	case keybind.Matches(event, g.keyMap.Up):
		return g.moveCursor(g.selectedRow-1, idx)
	case keybind.Matches(event, g.keyMap.Down):
		return g.moveCursor(g.selectedRow+1, idx)
	case keybind.Matches(event, g.keyMap.Left):
		return g.moveCursor(g.selectedRow, idx-1)
	case keybind.Matches(event, g.keyMap.Right):
		return g.moveCursor(g.selectedRow, idx+1)
	case keybind.Matches(event, g.keyMap.PageUp):
		return g.moveCursor(g.selectedRow-page, idx)
	case keybind.Matches(event, g.keyMap.PageDown):
		return g.moveCursor(g.selectedRow+page, idx)
	case keybind.Matches(event, g.keyMap.Home):
		return g.moveCursor(g.selectedRow, 0)
	case keybind.Matches(event, g.keyMap.End):
		return g.moveCursor(g.selectedRow, len(m.Columns)-1)
	case keybind.Matches(event, g.keyMap.Top):
		return g.moveCursor(0, idx)
	case keybind.Matches(event, g.keyMap.Bottom):
		return g.moveCursor(rowCount-1, idx)
	}

	if !hasColumn || rowCount == 0 && !keybind.Matches(event, g.keyMap.Sort, g.keyMap.Freeze, g.keyMap.Narrow, g.keyMap.Widen) {
		return nil
	}
	c := m.Columns[idx]

	switch {
	case keybind.Matches(event, g.keyMap.Edit):
		return g.activate(g.selectedRow, c)
	case keybind.Matches(event, g.keyMap.Toggle):
		return g.toggle(g.selectedRow, c)
	case keybind.Matches(event, g.keyMap.Select):
		row := g.rows.Row(g.selectedRow)
		if g.rowSelectFunc != nil {
			g.rowSelectFunc(g.selectedRow, row, !IsRowSelected(g.selection, g.access, row, g.selectedRow))
		}
		return RedrawCommand{}
	case keybind.Matches(event, g.keyMap.Sort):
		return g.cycleSort(c)
	case keybind.Matches(event, g.keyMap.Freeze):
		return g.toggleFrozen(c.Key)
	case keybind.Matches(event, g.keyMap.DeleteSubRow):
		return g.deleteSubRowAt(g.selectedRow, m)
	case keybind.Matches(event, g.keyMap.Copy):
		value := g.cellValue(g.selectedRow, g.rows.Row(g.selectedRow), c.Key)
		return SetClipboardCommand(g.formatterFor(c.Key, value).Format(value))
	case keybind.Matches(event, g.keyMap.Narrow):
		return g.commitResize(idx, c.Cells()-1)
	case keybind.Matches(event, g.keyMap.Widen):
		return g.commitResize(idx, c.Cells()+1)
	case keybind.Matches(event, g.keyMap.Cancel):
		if g.drag.active {
			g.drag = dragState{}
			return RedrawCommand{}
		}
	}
	return nil
}

// PasteHandler forwards pasted text to the open editor.
func (g *Grid) PasteHandler(text string) Command {
	if g.editing {
		return g.editor.PasteHandler(text)
	}
	return nil
}

// moveCursor selects the cell at rowIdx and render index idx, clamped to the
// grid, and scrolls it into view.
func (g *Grid) moveCursor(rowIdx, idx int) Command {
	_, m := g.layout()
	if len(m.Columns) == 0 {
		return nil
	}
	rowIdx = min(max(rowIdx, 0), max(g.rows.RowCount()-1, 0))
	idx = min(max(idx, 0), len(m.Columns)-1)

	c := m.Columns[idx]
	if rowIdx == g.selectedRow && c.Key == g.selectedKey {
		return nil
	}
	g.selectedRow, g.selectedKey = rowIdx, c.Key
	g.scrollToCursor()
	g.MarkDirty()
	if g.selected != nil {
		g.selected(rowIdx, c)
	}
	return RedrawCommand{}
}

// activate expands an expandable cell, toggles a boolean cell or opens the
// editor on any other editable cell.
func (g *Grid) activate(rowIdx int, c viewport.Column) Command {
	row := g.rows.Row(rowIdx)
	if details := g.subRowDetails(rowIdx, row); details.CanExpand(c.Key) {
		if g.cellExpand != nil {
			g.cellExpand(CellExpandEvent{RowIdx: rowIdx, Idx: c.Idx, Row: row, Details: details})
		}
		g.clampCursor()
		g.MarkDirty()
		return RedrawCommand{}
	}
	if !g.canEdit(rowIdx, row, c) {
		return nil
	}

	value := g.cellValue(rowIdx, row, c.Key)
	if checked, ok := value.(bool); ok {
		g.updateCell(rowIdx, c.Key, !checked)
		return RedrawCommand{}
	}

	g.editing = true
	g.editRow, g.editColumn = rowIdx, c.Key
	g.editor.SetText(SimpleFormatter{}.Format(value))
	g.editor.Focus(nil)
	g.MarkDirty()
	return RedrawCommand{}
}

// deleteSubRowAt passes the child row at rowIdx to the sub-row delete
// handler. Other rows are left alone.
func (g *Grid) deleteSubRowAt(rowIdx int, m viewport.Metrics) Command {
	row := g.rows.Row(rowIdx)
	details := g.subRowDetails(rowIdx, row)
	if g.deleteSubRow == nil || !details.IsChild() {
		return nil
	}
	c, _, ok := m.Column(details.Field)
	if !ok {
		return nil
	}

	g.deleteSubRow(SubRowDeleteEvent{RowIdx: rowIdx, Idx: c.Idx, Row: row, Details: details})
	g.clampCursor()
	g.MarkDirty()
	return RedrawCommand{}
}

// clampCursor keeps the cursor on a row after the handlers changed the row
// count.
func (g *Grid) clampCursor() {
	g.selectedRow = min(g.selectedRow, max(g.rows.RowCount()-1, 0))
}

// toggle flips an editable boolean cell.
func (g *Grid) toggle(rowIdx int, c viewport.Column) Command {
	row := g.rows.Row(rowIdx)
	checked, ok := g.cellValue(rowIdx, row, c.Key).(bool)
	if !ok || !g.canEdit(rowIdx, row, c) {
		return nil
	}
	g.updateCell(rowIdx, c.Key, !checked)
	return RedrawCommand{}
}

// finishEdit closes the editor, committing its text on Enter.
func (g *Grid) finishEdit(key tcell.Key) {
	if !g.editing {
		return
	}
	g.editing = false
	g.editor.Blur()
	if key == tcell.KeyEnter {
		g.updateCell(g.editRow, g.editColumn, g.editor.GetText())
	}
	g.MarkDirty()
}

func (g *Grid) updateCell(rowIdx int, key string, value any) {
	if g.cellUpdate != nil {
		g.cellUpdate(rowIdx, key, value)
	}
	g.MarkDirty()
}

// cycleSort moves a sortable column to its next sort direction.
func (g *Grid) cycleSort(c viewport.Column) Command {
	if !c.Sortable {
		return nil
	}
	next := NextSortDirection(directionOf(g.sort, c.Key), c.SortDescendingFirst)
	if g.multiSort {
		g.sort = withDirection(g.sort, c.Key, next)
	} else if next == SortNone {
		g.sort = nil
	} else {
		g.sort = []SortColumn{{Key: c.Key, Direction: next}}
	}
	if g.sortFunc != nil {
		g.sortFunc(c.Key, next)
	}
	g.MarkDirty()
	return RedrawCommand{}
}

// toggleFrozen pins or unpins the column with the given key.
func (g *Grid) toggleFrozen(key string) Command {
	i, ok := g.authoredIndex(key)
	if !ok {
		return nil
	}
	c := g.columns[i]
	frozen := !viewport.IsFrozen(c)
	c.Frozen, c.Locked = frozen, false
	g.columns[i] = c
	g.metricsStale = true
	g.logger.Debug("column frozen state changed", slog.String("key", key), slog.Bool("frozen", frozen))
	g.scrollToCursor()
	g.MarkDirty()
	return RedrawCommand{}
}

// commitResize resizes the column at render index pos in the committed
// metrics and remembers the width for later recalculations.
func (g *Grid) commitResize(pos, width int) Command {
	m, err := viewport.ResizeColumn(g.metrics, pos, width)
	if err != nil {
		g.logger.Warn("column resize rejected", slog.Any("err", err))
		return nil
	}
	g.metrics = m

	resized := m.Columns[pos]
	if i, ok := g.authoredIndex(resized.Key); ok {
		g.columns[i].Width = resized.Width
	}
	g.logger.Debug("column resized", slog.String("key", resized.Key), slog.Int("width", resized.Cells()))
	if g.columnResize != nil {
		g.columnResize(pos, resized.Cells())
	}
	g.scrollToCursor()
	g.MarkDirty()
	return RedrawCommand{}
}

// MouseHandler handles header clicks and resize gestures, cell selection,
// drag-fill gestures, the scroll bars and the mouse wheel.
func (g *Grid) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	l, m := g.layout()

	// Gestures keep the mouse captured until the button is released.
	if g.resize.active {
		return g.handleResize(action, x)
	}
	if g.drag.active {
		return g.handleDrag(action, x, l, m)
	}

	if !g.InRect(x, y) {
		return nil, nil
	}

	var cmd Command
	if action == MouseLeftDown && !g.HasFocus() {
		cmd = SetFocusCommand{Target: g}
	}

	switch action {
	case MouseScrollUp:
		return nil, g.scrollBy(l, m, -wheelRows*g.rowHeight, 0)
	case MouseScrollDown:
		return nil, g.scrollBy(l, m, wheelRows*g.rowHeight, 0)
	case MouseScrollLeft:
		return nil, g.scrollBy(l, m, 0, -wheelColumns)
	case MouseScrollRight:
		return nil, g.scrollBy(l, m, 0, wheelColumns)
	}

	if g.editing {
		if g.editor.InRect(x, y) {
			_, editorCmd := g.editor.MouseHandler(action, event)
			return nil, AppendCommand(cmd, editorCmd)
		}
		if action == MouseLeftDown {
			g.finishEdit(tcell.KeyEnter)
			cmd = AppendCommand(cmd, RedrawCommand{})
		}
	}

	switch {
	case y >= l.y && y < l.y+g.headerHeight:
		capture, headerCmd := g.headerMouse(action, x, l, m)
		return capture, AppendCommand(cmd, headerCmd)
	case x >= l.bodyX+l.bodyWidth && y >= l.bodyY && y < l.bodyY+l.bodyHeight:
		if action == MouseLeftDown {
			top := g.vScroll.OffsetAt(y - l.bodyY)
			return nil, AppendCommand(cmd, g.scrollBy(l, m, top-g.scrollTop, 0))
		}
	case l.showHScroll && y == l.bodyY+l.bodyHeight:
		if action == MouseLeftDown {
			hx, _, _, _ := g.hScroll.GetRect()
			left := g.hScroll.OffsetAt(x - hx)
			return nil, AppendCommand(cmd, g.scrollBy(l, m, 0, left-g.scrollLeft))
		}
	default:
		capture, bodyCmd := g.bodyMouse(action, x, y, l, m)
		return capture, AppendCommand(cmd, bodyCmd)
	}
	return nil, cmd
}

func (g *Grid) scrollBy(l gridLayout, m viewport.Metrics, top, left int) Command {
	prevTop, prevLeft := g.scrollTop, g.scrollLeft
	g.scrollTop += top
	g.scrollLeft += left
	g.clampScroll(l, m)
	if g.scrollTop == prevTop && g.scrollLeft == prevLeft {
		return nil
	}
	g.MarkDirty()
	return RedrawCommand{}
}

func (g *Grid) headerMouse(action MouseAction, x int, l gridLayout, m viewport.Metrics) (Primitive, Command) {
	i := g.columnAt(l, m, x)
	if i < 0 {
		return nil, nil
	}
	c := m.Columns[i]
	left := g.columnX(l, c)
	onHandle := c.Resizable && x == left+c.Cells()-1

	switch {
	case action == MouseLeftDown && onHandle:
		g.resize = resizeState{active: true, pos: i, key: c.Key, left: left, snapshot: m}
		g.MarkDirty()
		return g, RedrawCommand{}
	case action == MouseLeftClick && !onHandle:
		return nil, g.cycleSort(c)
	}
	return nil, nil
}

func (g *Grid) handleResize(action MouseAction, x int) (Primitive, Command) {
	switch action {
	case MouseMove:
		width := x - g.resize.left + 1
		if width <= 0 {
			return g, nil
		}
		// The scroll range keeps the committed content width until release,
		// see maxScroll.
		next, err := viewport.ResizeColumn(g.resize.snapshot, g.resize.pos, width)
		if err != nil {
			g.logger.Warn("column resize rejected", slog.Any("err", err))
			return g, nil
		}
		g.resize.snapshot = next
		g.MarkDirty()
		return g, RedrawCommand{}
	case MouseLeftUp:
		pos := g.resize.pos
		width := g.resize.snapshot.Columns[pos].Cells()
		g.resize = resizeState{}
		return nil, g.commitResize(pos, width)
	}
	return g, nil
}

func (g *Grid) bodyMouse(action MouseAction, x, y int, l gridLayout, m viewport.Metrics) (Primitive, Command) {
	rowIdx, idx := g.rowAt(l, y), g.columnAt(l, m, x)
	if rowIdx < 0 || idx < 0 {
		return nil, nil
	}
	c := m.Columns[idx]

	switch action {
	case MouseLeftDown:
		if g.onDeleteGlyph(rowIdx, c, x-g.columnX(l, c)) {
			return nil, g.deleteSubRowAt(rowIdx, m)
		}
		if rowIdx == g.selectedRow && c.Key == g.selectedKey && c.Draggable {
			row := g.rows.Row(rowIdx)
			if g.canEdit(rowIdx, row, c) {
				g.drag = dragState{active: true, rowIdx: rowIdx, idx: idx, over: idx, value: g.cellValue(rowIdx, row, c.Key)}
				return g, RedrawCommand{}
			}
		}
		return nil, g.moveCursor(rowIdx, idx)
	case MouseLeftDoubleClick:
		return nil, g.activate(rowIdx, c)
	}
	return nil, nil
}

// onDeleteGlyph reports whether offset, counted from the left edge of the
// cell, hits the delete glyph of a child row.
func (g *Grid) onDeleteGlyph(rowIdx int, c viewport.Column, offset int) bool {
	if g.deleteSubRow == nil {
		return false
	}
	details := g.subRowDetails(rowIdx, g.rows.Row(rowIdx))
	if !details.IsChild() || details.Field != c.Key {
		return false
	}
	_, deleteAt := details.treePrefix(true)
	return deleteAt >= 0 && offset >= deleteAt && offset < deleteAt+StringWidth(SemigraphicsDelete)
}

func (g *Grid) handleDrag(action MouseAction, x int, l gridLayout, m viewport.Metrics) (Primitive, Command) {
	switch action {
	case MouseMove:
		idx := g.columnAt(l, m, x)
		if idx < 0 || idx == g.drag.over {
			return g, nil
		}
		c := m.Columns[idx]
		if !c.Draggable || !g.canEdit(g.drag.rowIdx, g.rows.Row(g.drag.rowIdx), c) {
			return g, nil
		}
		g.drag.over = idx
		g.MarkDirty()
		return g, RedrawCommand{}
	case MouseLeftUp:
		drag := g.drag
		g.drag = dragState{}
		g.MarkDirty()
		span, ok := drag.span()
		if !ok {
			return nil, RedrawCommand{}
		}
		if g.cellsDragged != nil {
			keys := make([]string, 0, span.Len())
			for i := span.Start; i < span.End && i < len(m.Columns); i++ {
				keys = append(keys, m.Columns[i].Key)
			}
			g.cellsDragged(CellsDraggedEvent{
				RowIdx:  drag.rowIdx,
				FromKey: m.Columns[drag.idx].Key,
				Value:   drag.value,
				Span:    span,
				ToKeys:  keys,
			})
		}
		return nil, RedrawCommand{}
	}
	return g, nil
}

package gridview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ayn2op/gridview/viewport"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []viewport.Column {
	return []viewport.Column{
		{Key: "id", Name: "id", Width: viewport.Cells(6), Frozen: true},
		{Key: "name", Name: "name", Width: viewport.Cells(10), Sortable: true, Editable: true},
		{Key: "qty", Name: "qty", Width: viewport.Cells(8), Resizable: true, Draggable: true, Editable: true},
		{Key: "note", Name: "note", Width: viewport.Cells(12), Draggable: true, Editable: true},
	}
}

func testRows(n int) RowSlice[map[string]any] {
	rows := make(RowSlice[map[string]any], n)
	for i := range rows {
		rows[i] = map[string]any{
			"id":   i,
			"name": fmt.Sprintf("item %d", i),
			"qty":  i * 10,
			"note": "n",
		}
	}
	return rows
}

// newTestGrid returns a 30x10 grid over 50 rows. The body is 29 cells wide
// and 8 rows high: one column is reserved for the vertical scroll bar, one
// row for the header and one for the horizontal scroll bar.
func newTestGrid(t *testing.T) (*Grid, tcell.SimulationScreen) {
	t.Helper()

	screen := newTestScreen(t, 30, 10)
	g := NewGrid().SetColumns(testColumns()).SetRows(testRows(50))
	g.SetRect(0, 0, 30, 10)
	return g, screen
}

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

func screenText(screen tcell.Screen, x, y, width int) string {
	var b strings.Builder
	for i := x; i < x+width; i++ {
		r, _, _, _ := screen.GetContent(i, y)
		b.WriteRune(r)
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouse(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonPrimary, tcell.ModNone)
}

func TestGridDraw(t *testing.T) {
	g, screen := newTestGrid(t)
	g.Draw(screen)

	assert.Equal(t, "id   │name     │", screenText(screen, 0, 0, 16))
	assert.Equal(t, "0    │item 0   │", screenText(screen, 0, 1, 16))
	assert.Equal(t, "7    │item 7   │", screenText(screen, 0, 8, 16))

	m := g.GetMetrics()
	require.Len(t, m.Columns, 4)
	assert.Equal(t, 36, m.TotalColumnWidth)

	state := g.GetState()
	assert.Equal(t, 0, state.Frozen.LastFrozenIndex)
	assert.Equal(t, 6, state.Frozen.FrozenWidth)
	assert.Equal(t, 0, state.Rows.VisibleStart)
}

func TestGridDrawScrolledKeepsFrozenColumn(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetScroll(0, 4)
	g.Draw(screen)

	// "item 0" starts at x=2 and is clipped by the frozen column.
	assert.Equal(t, "0    │ 0", screenText(screen, 0, 1, 8))

	top, left := g.GetScroll()
	assert.Equal(t, 0, top)
	assert.Equal(t, 4, left)
}

func TestGridScrollIsClamped(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetScroll(1000, 1000)
	g.Draw(screen)

	top, left := g.GetScroll()
	assert.Equal(t, 50-8, top)
	assert.Equal(t, 36-29, left)
	assert.Equal(t, "49   │", screenText(screen, 0, 8, 6))
}

func TestGridHiddenColumn(t *testing.T) {
	g, screen := newTestGrid(t)
	columns := testColumns()
	columns[1].Hidden = true
	g.SetColumns(columns)
	g.Draw(screen)

	_, _, ok := g.GetMetrics().Column("name")
	assert.False(t, ok)
	assert.Equal(t, "id   │qty    │", screenText(screen, 0, 0, 14))
}

func TestGridRejectsDuplicateKeys(t *testing.T) {
	g, _ := newTestGrid(t)
	g.SetColumns([]viewport.Column{{Key: "a"}, {Key: "a"}})
	assert.Equal(t, testColumns(), g.GetColumns())
}

func TestGridKeyboardNavigation(t *testing.T) {
	g, _ := newTestGrid(t)

	var moves []string
	g.SetSelectedFunc(func(rowIdx int, column viewport.Column) {
		moves = append(moves, fmt.Sprintf("%d:%s", rowIdx, column.Key))
	})

	assert.Equal(t, RedrawCommand{}, g.InputHandler(key(tcell.KeyRight)))
	assert.Equal(t, RedrawCommand{}, g.InputHandler(runeKey('j')))
	row, col := g.GetCursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, "name", col)

	// Already at the first row.
	g.InputHandler(runeKey('k'))
	assert.Nil(t, g.InputHandler(runeKey('k')))

	g.InputHandler(runeKey('G'))
	row, _ = g.GetCursor()
	assert.Equal(t, 49, row)
	top, _ := g.GetScroll()
	assert.Equal(t, 42, top)

	g.InputHandler(runeKey('g'))
	row, _ = g.GetCursor()
	assert.Equal(t, 0, row)
	top, _ = g.GetScroll()
	assert.Equal(t, 0, top)

	g.InputHandler(key(tcell.KeyPgDn))
	row, _ = g.GetCursor()
	assert.Equal(t, 8, row)

	assert.Equal(t, []string{"0:name", "1:name", "0:name", "49:name", "0:name", "8:name"}, moves)
}

func TestGridEndScrollsColumnIntoView(t *testing.T) {
	g, _ := newTestGrid(t)

	g.InputHandler(key(tcell.KeyEnd))
	_, col := g.GetCursor()
	assert.Equal(t, "note", col)
	_, left := g.GetScroll()
	assert.Equal(t, 7, left)

	g.InputHandler(key(tcell.KeyHome))
	_, col = g.GetCursor()
	assert.Equal(t, "id", col)
	// The frozen column is always in view.
	_, left = g.GetScroll()
	assert.Equal(t, 7, left)

	g.InputHandler(key(tcell.KeyRight))
	_, left = g.GetScroll()
	assert.Equal(t, 0, left)
}

func TestGridSortCycle(t *testing.T) {
	g, _ := newTestGrid(t)

	var got []SortDirection
	g.SetSortFunc(func(key string, direction SortDirection) {
		assert.Equal(t, "name", key)
		got = append(got, direction)
	})

	// The id column is not sortable.
	assert.Nil(t, g.InputHandler(runeKey('s')))

	g.SetCursor(0, "name")
	g.InputHandler(runeKey('s'))
	assert.Equal(t, []SortColumn{{Key: "name", Direction: SortAscending}}, g.GetSort())
	g.InputHandler(runeKey('s'))
	assert.Equal(t, []SortColumn{{Key: "name", Direction: SortDescending}}, g.GetSort())
	g.InputHandler(runeKey('s'))
	assert.Empty(t, g.GetSort())

	assert.Equal(t, []SortDirection{SortAscending, SortDescending, SortNone}, got)
}

func TestGridHeaderClickSorts(t *testing.T) {
	g, screen := newTestGrid(t)
	g.Draw(screen)

	_, cmd := g.MouseHandler(MouseLeftClick, mouse(7, 0))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, []SortColumn{{Key: "name", Direction: SortAscending}}, g.GetSort())

	g.Draw(screen)
	assert.Equal(t, "name    "+SemigraphicsSortAscending+"│", screenText(screen, 6, 0, 10))
}

func TestGridMultiSort(t *testing.T) {
	g, _ := newTestGrid(t)
	columns := testColumns()
	columns[2].Sortable = true
	g.SetColumns(columns).SetMultiSort(true)

	g.SetCursor(0, "name")
	g.InputHandler(runeKey('s'))
	g.SetCursor(0, "qty")
	g.InputHandler(runeKey('s'))
	g.InputHandler(runeKey('s'))

	assert.Equal(t, []SortColumn{
		{Key: "name", Direction: SortAscending},
		{Key: "qty", Direction: SortDescending},
	}, g.GetSort())
}

func TestGridKeyboardResize(t *testing.T) {
	g, _ := newTestGrid(t)

	var resized [][2]int
	g.SetColumnResizeFunc(func(index, width int) {
		resized = append(resized, [2]int{index, width})
	})

	g.SetCursor(0, "qty")
	assert.Equal(t, RedrawCommand{}, g.InputHandler(runeKey('>')))

	m := g.GetMetrics()
	assert.Equal(t, 9, m.Columns[2].Cells())
	assert.Equal(t, 25, m.Columns[3].Left)
	assert.Equal(t, viewport.Cells(9), g.GetColumns()[2].Width)

	// Widths never drop below the minimum column width.
	for range 10 {
		g.InputHandler(runeKey('<'))
	}
	assert.Equal(t, 4, g.GetMetrics().Columns[2].Cells())
	assert.Equal(t, [2]int{2, 9}, resized[0])
	assert.Equal(t, [2]int{2, 4}, resized[len(resized)-1])
}

func TestGridMouseResize(t *testing.T) {
	g, screen := newTestGrid(t)
	g.Draw(screen)

	var resized [][2]int
	g.SetColumnResizeFunc(func(index, width int) {
		resized = append(resized, [2]int{index, width})
	})

	// The divider of qty sits in its last cell.
	capture, _ := g.MouseHandler(MouseLeftDown, mouse(23, 0))
	assert.Equal(t, g, capture)

	capture, _ = g.MouseHandler(MouseMove, mouse(26, 0))
	assert.Equal(t, g, capture)
	// The committed layout is untouched until the mouse is released.
	assert.Equal(t, 8, g.GetMetrics().Columns[2].Cells())
	g.Draw(screen)

	capture, cmd := g.MouseHandler(MouseLeftUp, mouse(26, 0))
	assert.Nil(t, capture)
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 11, g.GetMetrics().Columns[2].Cells())
	assert.Equal(t, [][2]int{{2, 11}}, resized)
}

func TestGridMouseResizeDoesNotShrinkContent(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetScroll(0, 7)
	g.Draw(screen)

	// qty starts at 16-7=9, its divider is at 16.
	g.MouseHandler(MouseLeftDown, mouse(16, 0))
	g.MouseHandler(MouseMove, mouse(12, 0))
	g.Draw(screen)

	_, left := g.GetScroll()
	assert.Equal(t, 7, left)
}

func TestGridDragFill(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetEnableCellSelect(true)
	g.Draw(screen)

	var events []CellsDraggedEvent
	g.SetCellsDraggedFunc(func(event CellsDraggedEvent) {
		events = append(events, event)
	})

	// The first press selects the cell, the second starts the drag.
	capture, _ := g.MouseHandler(MouseLeftDown, mouse(17, 2))
	assert.Nil(t, capture)
	g.MouseHandler(MouseLeftUp, mouse(17, 2))
	capture, _ = g.MouseHandler(MouseLeftDown, mouse(17, 2))
	assert.Equal(t, g, capture)

	g.MouseHandler(MouseMove, mouse(26, 2))
	g.Draw(screen)
	_, _, style, _ := screen.GetContent(26, 2)
	_, bg, _ := style.Decompose()
	assert.Equal(t, Styles.DragMaskColor, bg)

	capture, _ = g.MouseHandler(MouseLeftUp, mouse(26, 2))
	assert.Nil(t, capture)
	require.Len(t, events, 1)
	assert.Equal(t, CellsDraggedEvent{
		RowIdx:  1,
		FromKey: "qty",
		Value:   10,
		Span:    viewport.Span{Start: 3, End: 4},
		ToKeys:  []string{"note"},
	}, events[0])
}

func TestGridDragNeedsEditableCells(t *testing.T) {
	g, screen := newTestGrid(t)
	g.Draw(screen)

	g.SetCursor(0, "qty")
	capture, _ := g.MouseHandler(MouseLeftDown, mouse(17, 1))
	assert.Nil(t, capture)
}

func TestGridEditCommit(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetEnableCellSelect(true)

	var updates []string
	g.SetCellUpdateFunc(func(rowIdx int, key string, value any) {
		updates = append(updates, fmt.Sprintf("%d:%s=%v", rowIdx, key, value))
	})

	g.SetCursor(2, "name")
	g.InputHandler(key(tcell.KeyEnter))
	require.True(t, g.IsEditing())
	assert.Equal(t, "item 2", g.editor.GetText())

	g.InputHandler(runeKey('x'))
	g.Draw(screen)
	assert.Equal(t, "item 2x", screenText(screen, 6, 3, 7))

	g.InputHandler(key(tcell.KeyEnter))
	assert.False(t, g.IsEditing())
	assert.Equal(t, []string{"2:name=item 2x"}, updates)
}

func TestGridEditCancel(t *testing.T) {
	g, _ := newTestGrid(t)
	g.SetEnableCellSelect(true)

	called := false
	g.SetCellUpdateFunc(func(int, string, any) { called = true })

	g.SetCursor(0, "note")
	g.InputHandler(key(tcell.KeyF2))
	require.True(t, g.IsEditing())
	g.InputHandler(key(tcell.KeyEscape))
	assert.False(t, g.IsEditing())
	assert.False(t, called)
}

func TestGridEditRequiresCellSelect(t *testing.T) {
	g, _ := newTestGrid(t)
	g.SetCursor(0, "name")
	assert.Nil(t, g.InputHandler(key(tcell.KeyEnter)))
	assert.False(t, g.IsEditing())

	// The row predicate replaces the column flag.
	g.SetEnableCellSelect(true)
	g.SetRowEditableFunc(func(rowIdx int, _ any, _ viewport.Column) bool { return rowIdx > 0 })
	assert.Nil(t, g.InputHandler(key(tcell.KeyEnter)))
	g.SetCursor(1, "id")
	g.InputHandler(key(tcell.KeyEnter))
	assert.True(t, g.IsEditing())
}

func TestGridBlurCancelsEdit(t *testing.T) {
	g, _ := newTestGrid(t)
	g.SetEnableCellSelect(true)
	g.SetCursor(0, "name")
	g.InputHandler(key(tcell.KeyEnter))
	require.True(t, g.IsEditing())

	g.Blur()
	assert.False(t, g.IsEditing())
}

type task struct {
	Name string `grid:"name"`
	Done bool   `grid:"done"`
}

func TestGridToggleBool(t *testing.T) {
	screen := newTestScreen(t, 20, 5)

	rows := RowSlice[task]{{Name: "a"}, {Name: "b", Done: true}}
	g := NewGrid().
		SetColumns([]viewport.Column{
			{Key: "name", Name: "name", Width: viewport.Cells(8)},
			{Key: "done", Name: "done", Width: viewport.Cells(6), Editable: true},
		}).
		SetRows(rows).
		SetEnableCellSelect(true)
	g.SetRect(0, 0, 20, 5)

	var updates []any
	g.SetCellUpdateFunc(func(rowIdx int, key string, value any) {
		updates = append(updates, value)
	})

	g.Draw(screen)
	assert.Equal(t, SemigraphicsCheckboxOff, screenText(screen, 8, 1, 1))
	assert.Equal(t, SemigraphicsCheckboxOn, screenText(screen, 8, 2, 1))

	g.SetCursor(0, "done")
	g.InputHandler(runeKey(' '))
	g.SetCursor(1, "done")
	g.InputHandler(key(tcell.KeyEnter))
	assert.Equal(t, []any{true, false}, updates)
	assert.False(t, g.IsEditing())
}

func TestGridExpand(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetEnableCellSelect(true)
	g.SetSubRowFunc(func(rowIdx int, row any) *SubRowDetails {
		if rowIdx != 0 {
			return nil
		}
		return &SubRowDetails{Field: "name", Children: []any{"child"}}
	})

	var expanded []CellExpandEvent
	g.SetCellExpandFunc(func(event CellExpandEvent) {
		expanded = append(expanded, event)
	})

	g.Draw(screen)
	assert.Equal(t, SemigraphicsCollapsed+" item 0", screenText(screen, 6, 1, 8))

	g.SetCursor(0, "name")
	g.InputHandler(key(tcell.KeyEnter))
	assert.False(t, g.IsEditing())
	require.Len(t, expanded, 1)
	assert.Equal(t, 0, expanded[0].RowIdx)
	assert.Equal(t, 1, expanded[0].Idx)
}

func TestGridRowSelection(t *testing.T) {
	g, screen := newTestGrid(t)

	var toggled []bool
	g.SetRowSelectFunc(func(rowIdx int, row any, selected bool) {
		toggled = append(toggled, selected)
	})

	g.InputHandler(runeKey('x'))
	g.SetSelection(RowSelection{Indexes: []int{0}})
	g.InputHandler(runeKey('x'))
	assert.Equal(t, []bool{true, false}, toggled)

	g.Draw(screen)
	_, _, style, _ := screen.GetContent(7, 1)
	_, bg, _ := style.Decompose()
	assert.Equal(t, Styles.SelectedRowColor, bg)
}

func TestGridCopy(t *testing.T) {
	g, _ := newTestGrid(t)
	g.SetCursor(3, "qty")
	g.SetFormatter("qty", FormatterFunc(func(value any) string {
		return fmt.Sprintf("%v pcs", value)
	}))
	assert.Equal(t, SetClipboardCommand("30 pcs"), g.InputHandler(runeKey('y')))
}

func TestGridFreeze(t *testing.T) {
	g, _ := newTestGrid(t)
	g.SetCursor(0, "qty")
	g.InputHandler(runeKey('f'))

	assert.True(t, g.GetColumns()[2].Frozen)
	m := g.GetMetrics()
	assert.Equal(t, "qty", m.Columns[1].Key)
	assert.Equal(t, 6, m.Columns[1].Left)
	assert.Equal(t, 14, viewport.TotalFrozenWidth(m.Columns))

	g.InputHandler(runeKey('f'))
	assert.Equal(t, "qty", g.GetMetrics().Columns[2].Key)
}

func TestGridWheel(t *testing.T) {
	g, screen := newTestGrid(t)
	g.Draw(screen)

	_, cmd := g.MouseHandler(MouseScrollDown, mouse(3, 3))
	assert.Equal(t, RedrawCommand{}, cmd)
	top, _ := g.GetScroll()
	assert.Equal(t, 3, top)

	_, cmd = g.MouseHandler(MouseScrollRight, mouse(3, 3))
	assert.Equal(t, RedrawCommand{}, cmd)
	_, left := g.GetScroll()
	assert.Equal(t, 4, left)

	g.MouseHandler(MouseScrollUp, mouse(3, 3))
	g.MouseHandler(MouseScrollUp, mouse(3, 3))
	top, _ = g.GetScroll()
	assert.Equal(t, 0, top)
	_, cmd = g.MouseHandler(MouseScrollUp, mouse(3, 3))
	assert.Nil(t, cmd)
}

func TestGridClickSelectsAndFocuses(t *testing.T) {
	g, screen := newTestGrid(t)
	g.Draw(screen)

	_, cmd := g.MouseHandler(MouseLeftDown, mouse(8, 4))
	assert.Equal(t, BatchCommand{SetFocusCommand{Target: g}, RedrawCommand{}}, cmd)
	row, col := g.GetCursor()
	assert.Equal(t, 3, row)
	assert.Equal(t, "name", col)
}

func TestGridVirtualRows(t *testing.T) {
	g, screen := newTestGrid(t)

	requested := map[int]bool{}
	g.SetRows(RowFunc(1_000_000, func(index int) any {
		requested[index] = true
		return map[string]any{"id": index}
	}))
	g.SetScroll(5000, 0)
	g.Draw(screen)

	assert.Equal(t, "5000 │", screenText(screen, 0, 1, 6))
	assert.Less(t, len(requested), 20)
}

func TestGridScrollBarAutoHide(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetRows(testRows(3))
	g.Draw(screen)
	// All rows fit, so the vertical bar is hidden.
	assert.Equal(t, " ", screenText(screen, 29, 1, 1))

	g.SetScrollBarAutoHide(false).SetScrollBarGlyphs(UnicodeGlyphSet())
	g.Draw(screen)
	assert.Equal(t, "█", screenText(screen, 29, 1, 1))
	_, _, style, _ := screen.GetContent(29, 1)
	fg, _, _ := style.Decompose()
	assert.Equal(t, Styles.ScrollBarThumbColor, fg)
}

func TestGridDeleteSubRow(t *testing.T) {
	g, screen := newTestGrid(t)
	g.SetRows(testRows(4))
	g.SetSubRowFunc(func(rowIdx int, row any) *SubRowDetails {
		switch rowIdx {
		case 0:
			return &SubRowDetails{Field: "name", Children: []any{1, 2}, Expanded: true}
		case 1, 2:
			return &SubRowDetails{Field: "name", TreeDepth: 1, SiblingIndex: rowIdx - 1, NumberSiblings: 2}
		}
		return nil
	})

	g.Draw(screen)
	assert.Equal(t, SemigraphicsExpanded+" item 0", screenText(screen, 6, 1, 8))
	assert.Equal(t, "├ item 1", screenText(screen, 6, 2, 8))
	assert.Equal(t, "└ item 2", screenText(screen, 6, 3, 8))

	// Without a handler the key does nothing.
	g.SetCursor(1, "qty")
	assert.Nil(t, g.InputHandler(key(tcell.KeyDelete)))
	assert.False(t, g.GetKeyMap().DeleteSubRow.Enabled())

	var deleted []SubRowDeleteEvent
	g.SetDeleteSubRowFunc(func(event SubRowDeleteEvent) {
		deleted = append(deleted, event)
	})
	assert.True(t, g.GetKeyMap().DeleteSubRow.Enabled())

	g.Draw(screen)
	assert.Equal(t, "├ "+SemigraphicsDelete+" item", screenText(screen, 6, 2, 8))
	assert.Equal(t, "└ "+SemigraphicsDelete+" item", screenText(screen, 6, 3, 8))

	assert.Equal(t, RedrawCommand{}, g.InputHandler(key(tcell.KeyDelete)))
	require.Len(t, deleted, 1)
	assert.Equal(t, 1, deleted[0].RowIdx)
	assert.Equal(t, 1, deleted[0].Idx)
	assert.Equal(t, 0, deleted[0].Details.SiblingIndex)

	// Parents and plain rows cannot be deleted.
	g.SetCursor(0, "name")
	assert.Nil(t, g.InputHandler(key(tcell.KeyDelete)))
	g.SetCursor(3, "name")
	assert.Nil(t, g.InputHandler(key(tcell.KeyDelete)))

	// Clicking the glyph deletes the last sibling.
	g.MouseHandler(MouseLeftDown, mouse(8, 3))
	require.Len(t, deleted, 2)
	assert.Equal(t, 2, deleted[1].RowIdx)
	assert.Equal(t, 1, deleted[1].Details.NumberSiblings-deleted[1].Details.SiblingIndex)

	// Replacing the key map keeps the binding in step with the handler.
	g.SetKeyMap(DefaultGridKeyMap())
	assert.True(t, g.GetKeyMap().DeleteSubRow.Enabled())
	g.SetDeleteSubRowFunc(nil)
	assert.False(t, g.GetKeyMap().DeleteSubRow.Enabled())
}

func TestSubRowDetailsTreePrefix(t *testing.T) {
	var none *SubRowDetails
	prefix, at := none.treePrefix(true)
	assert.Equal(t, "", prefix)
	assert.Equal(t, -1, at)

	d := &SubRowDetails{Field: "name", TreeDepth: 2, SiblingIndex: 0, NumberSiblings: 3, Children: []any{1}}
	prefix, at = d.treePrefix(true)
	assert.Equal(t, "  ├ "+SemigraphicsDelete+" "+SemigraphicsCollapsed+" ", prefix)
	assert.Equal(t, 4, at)

	d.SiblingIndex = 2
	prefix, at = d.treePrefix(false)
	assert.Equal(t, "  └ "+SemigraphicsCollapsed+" ", prefix)
	assert.Equal(t, -1, at)
}

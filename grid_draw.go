package gridview

import (
	"github.com/ayn2op/gridview/viewport"
	"github.com/gdamore/tcell/v2"
)

// Draw draws the header, the rows in the overscan range and the scroll bars.
func (g *Grid) Draw(screen tcell.Screen) {
	g.DrawForSubclass(screen, g)
	defer g.MarkClean()

	l, m := g.layout()
	if l.width <= 0 || l.height <= 0 {
		return
	}
	g.clampScroll(l, m)
	state := g.updateViewport(l, m)

	g.drawHeader(screen, l, m, state)
	g.drawRows(screen, l, m, state)
	g.drawScrollBars(screen, l, m, state)
	if g.editing {
		g.drawEditor(screen, l, m)
	}
}

// columnsToDraw returns the render indexes to paint: non-frozen overscan
// columns first, frozen columns last so they cover scrolled content.
func columnsToDraw(m viewport.Metrics, state viewport.State) (scrolling, frozen []int) {
	n := len(m.Columns)
	span := state.Columns.Overscan()
	for i := max(span.Start, state.Frozen.FirstNonFrozenIndex()); i < min(span.End, n); i++ {
		scrolling = append(scrolling, i)
	}
	for i := 0; i <= state.Frozen.LastFrozenIndex && i < n; i++ {
		frozen = append(frozen, i)
	}
	return scrolling, frozen
}

// regions returns the screens non-frozen and frozen cells are drawn on for
// the rows [y, y+height).
func regions(screen tcell.Screen, l gridLayout, state viewport.State, y, height int) (scrolling, frozen tcell.Screen) {
	frozenWidth := min(state.Frozen.FrozenWidth, l.bodyWidth)
	scrolling = newClippedScreen(screen, l.bodyX+frozenWidth, y, l.bodyWidth-frozenWidth, height)
	frozen = newClippedScreen(screen, l.bodyX, y, l.bodyWidth, height)
	return scrolling, frozen
}

func (g *Grid) drawHeader(screen tcell.Screen, l gridLayout, m viewport.Metrics, state viewport.State) {
	if g.headerHeight <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(Styles.HeaderBackgroundColor).Foreground(Styles.HeaderTextColor)
	fill(screen, l.x, l.y, l.width, g.headerHeight, style)

	scrolling, frozen := columnsToDraw(m, state)
	scrollingScreen, frozenScreen := regions(screen, l, state, l.y, g.headerHeight)
	draw := func(s tcell.Screen, i int) {
		c := m.Columns[i]
		cellStyle := style.Bold(true)
		if g.resize.active && g.resize.key == c.Key {
			cellStyle = cellStyle.Reverse(true)
		}
		indicator := ""
		if c.Sortable {
			indicator = sortIndicator(directionOf(g.sort, c.Key))
		}
		g.drawCell(s, g.columnX(l, c), l.y, c.Cells(), g.headerHeight, c.Name, indicator, cellStyle, g.dividerStyle(state, i, style))
	}
	for _, i := range scrolling {
		draw(scrollingScreen, i)
	}
	for _, i := range frozen {
		draw(frozenScreen, i)
	}
}

func (g *Grid) drawRows(screen tcell.Screen, l gridLayout, m viewport.Metrics, state viewport.State) {
	base := tcell.StyleDefault.Background(Styles.PrimitiveBackgroundColor).Foreground(Styles.PrimaryTextColor)
	fill(screen, l.bodyX, l.bodyY, l.bodyWidth, l.bodyHeight, base)

	scrolling, frozen := columnsToDraw(m, state)
	scrollingScreen, frozenScreen := regions(screen, l, state, l.bodyY, l.bodyHeight)
	rowCount := g.rows.RowCount()
	span := state.Rows.Overscan()
	for rowIdx := span.Start; rowIdx < min(span.End, rowCount); rowIdx++ {
		y := l.bodyY + rowIdx*g.rowHeight - g.scrollTop
		if y+g.rowHeight <= l.bodyY || y >= l.bodyY+l.bodyHeight {
			continue
		}

		row := g.rows.Row(rowIdx)
		rowStyle := base
		if IsRowSelected(g.selection, g.access, row, rowIdx) {
			rowStyle = rowStyle.Background(Styles.SelectedRowColor)
		}
		details := g.subRowDetails(rowIdx, row)

		for _, i := range scrolling {
			g.drawRowCell(scrollingScreen, l, state, m, i, rowIdx, row, details, y, rowStyle)
		}
		for _, i := range frozen {
			g.drawRowCell(frozenScreen, l, state, m, i, rowIdx, row, details, y, rowStyle)
		}
	}
}

func (g *Grid) drawRowCell(screen tcell.Screen, l gridLayout, state viewport.State, m viewport.Metrics, i, rowIdx int, row any, details *SubRowDetails, y int, rowStyle tcell.Style) {
	c := m.Columns[i]
	style := rowStyle
	if g.drag.covers(rowIdx, i) {
		style = style.Background(Styles.DragMaskColor)
	} else if rowIdx == g.selectedRow && c.Key == g.selectedKey {
		style = style.Background(Styles.SelectedCellColor)
	}

	value := g.cellValue(rowIdx, row, c.Key)
	text := g.formatterFor(c.Key, value).Format(value)
	if details != nil && details.Field == c.Key {
		prefix, _ := details.treePrefix(g.deleteSubRow != nil)
		text = prefix + text
	}

	g.drawCell(screen, g.columnX(l, c), y, c.Cells(), g.rowHeight, text, "", style, g.dividerStyle(state, i, rowStyle))
}

// dividerStyle returns the style of the divider drawn in the last cell of
// the column at render index i.
func (g *Grid) dividerStyle(state viewport.State, i int, style tcell.Style) tcell.Style {
	if i == state.Frozen.LastFrozenIndex {
		return style.Foreground(Styles.FrozenSeparatorColor)
	}
	return style.Foreground(Styles.BorderColor).Dim(true)
}

// drawCell paints a cell of the given size: text on the first line, an
// optional right aligned suffix, and a divider in the last column.
func (g *Grid) drawCell(screen tcell.Screen, x, y, width, height int, text, suffix string, style, divider tcell.Style) {
	if width <= 0 {
		return
	}
	fill(screen, x, y, width, height, style)

	inner := width
	if width > 1 {
		inner--
		for row := y; row < y+height; row++ {
			putCluster(screen, x+inner, row, BoxDrawingsLightVertical, divider)
		}
	}

	if suffix != "" {
		suffixWidth := StringWidth(suffix)
		if suffixWidth < inner {
			printWithStyle(screen, suffix, x+inner-suffixWidth, y, 0, suffixWidth, AlignmentLeft, style, false)
			inner -= suffixWidth + 1
		}
	}
	if inner > 0 {
		printWithStyle(screen, fitText(text, inner), x, y, 0, inner, AlignmentLeft, style, false)
	}
}

func (g *Grid) drawScrollBars(screen tcell.Screen, l gridLayout, m viewport.Metrics, state viewport.State) {
	if g.scrollbarWidth > 0 && l.bodyHeight > 0 {
		g.vScroll.SetRect(l.bodyX+l.bodyWidth, l.bodyY, g.scrollbarWidth, l.bodyHeight)
		g.vScroll.SetLengths(ScrollLengths{ContentLen: g.rows.RowCount() * g.rowHeight, ViewportLen: l.bodyHeight})
		g.vScroll.SetOffset(g.scrollTop)
		g.vScroll.Draw(screen)
	}
	if l.showHScroll {
		frozenWidth := min(state.Frozen.FrozenWidth, l.bodyWidth)
		_, maxLeft := g.maxScroll(l, m)
		g.hScroll.SetRect(l.bodyX+frozenWidth, l.bodyY+l.bodyHeight, l.bodyWidth-frozenWidth, 1)
		g.hScroll.SetLengths(ScrollLengths{ContentLen: maxLeft + l.bodyWidth - frozenWidth, ViewportLen: l.bodyWidth - frozenWidth})
		g.hScroll.SetOffset(g.scrollLeft)
		g.hScroll.Draw(screen)
	}
}

func (g *Grid) drawEditor(screen tcell.Screen, l gridLayout, m viewport.Metrics) {
	c, _, ok := m.Column(g.editColumn)
	if !ok {
		return
	}
	y := l.bodyY + g.editRow*g.rowHeight - g.scrollTop
	if y < l.bodyY || y >= l.bodyY+l.bodyHeight {
		return
	}
	x := g.columnX(l, c)
	width := max(c.Cells()-1, 1)
	if viewport.IsFrozen(c) {
		g.editor.SetRect(x, y, width, 1)
	} else {
		// Keep the editor out of the frozen region.
		frozen := l.bodyX + viewport.TotalFrozenWidth(m.Columns)
		if x < frozen {
			width -= frozen - x
			x = frozen
		}
		g.editor.SetRect(x, y, max(width, 1), 1)
	}
	g.editor.Draw(screen)
}

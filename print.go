package gridview

import "github.com/gdamore/tcell/v2"

// Alignment is the horizontal alignment of text within its box.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. The screen's background color will not be changed.
//
// Returns the number of actual bytes of the text printed and the actual width
// used for the printed runes.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintWithStyle works like [Print] but takes a full style, including its
// background.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, false)
	return end - start, width
}

// printWithStyle prints text skipping the first skipWidth cells. It returns
// the start index, end index (exclusively), and screen width of the text
// actually printed. If maintainBackground is true, the existing screen
// background is kept.
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}

	// Skip beginning and measure width.
	var textWidth int
	state := &stepState{unisegState: -1}
	newState := *state
	str := text
	for len(str) > 0 {
		_, str, state = step(str, state)
		if skipWidth > 0 {
			skipWidth -= state.Width()
			text = str
			newState = *state
			start += state.GrossLength()
		} else {
			textWidth += state.Width()
		}
	}
	state = &newState

	// Reduce all alignments to AlignmentLeft.
	switch alignment {
	case AlignmentRight:
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		subtracted := (textWidth - maxWidth) / 2
		for len(text) > 0 && subtracted > 0 {
			_, text, state = step(text, state)
			subtracted -= state.Width()
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	end = start
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var c string
		c, text, state = step(text, state)
		if c == "" {
			break
		}
		width := state.Width()
		if x+width > rightBorder {
			break
		}

		if width > 0 {
			finalStyle := style
			if maintainBackground {
				_, _, existing, _ := screen.GetContent(x, y)
				_, background, _ := existing.Decompose()
				finalStyle = finalStyle.Background(background)
			}
			// Trailing cells of wide clusters are cleared first, the cluster
			// itself is written last.
			for offset := width - 1; offset > 0; offset-- {
				screen.SetContent(x+offset, y, ' ', nil, finalStyle)
			}
			putCluster(screen, x, y, c, finalStyle)
		}

		x += width
		end += state.GrossLength()
		printedWidth += width
	}

	return
}

// putCluster writes one grapheme cluster into a single cell.
func putCluster(screen tcell.Screen, x, y int, cluster string, style tcell.Style) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return
	}
	screen.SetContent(x, y, runes[0], runes[1:], style)
}

// fill paints a rectangle with blanks of the given style.
func fill(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

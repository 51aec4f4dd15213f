package gridview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// clippedScreen drops every write outside of its rectangle. Wide characters
// that would straddle the right edge are dropped as well.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  max(width, 0),
		height: max(height, 0),
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) || x+max(runewidth.RuneWidth(primary), 1) > s.x+s.width {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) SetCell(x int, y int, style tcell.Style, ch ...rune) {
	if len(ch) == 0 {
		s.SetContent(x, y, ' ', nil, style)
		return
	}
	s.SetContent(x, y, ch[0], ch[1:], style)
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}

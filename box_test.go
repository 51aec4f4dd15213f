package gridview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestBoxInnerRect(t *testing.T) {
	b := NewBox()
	b.SetRect(2, 3, 10, 5)

	x, y, width, height := b.GetInnerRect()
	assert.Equal(t, []int{2, 3, 10, 5}, []int{x, y, width, height})

	b.SetBorders(BordersAll)
	x, y, width, height = b.GetInnerRect()
	assert.Equal(t, []int{3, 4, 8, 3}, []int{x, y, width, height})

	b.SetBorderPadding(1, 0, 1, 1)
	x, y, width, height = b.GetInnerRect()
	assert.Equal(t, []int{4, 5, 6, 2}, []int{x, y, width, height})
}

func TestBoxDraw(t *testing.T) {
	screen := newTestScreen(t, 8, 3)
	b := NewBox().SetBorders(BordersAll).SetTitle("grid")
	b.SetRect(0, 0, 8, 3)
	b.Draw(screen)

	assert.Equal(t, "┌─grid─┐", screenText(screen, 0, 0, 8))
	assert.Equal(t, "│      │", screenText(screen, 0, 1, 8))
	assert.Equal(t, "└──────┘", screenText(screen, 0, 2, 8))
}

func TestBoxBorderSets(t *testing.T) {
	screen := newTestScreen(t, 4, 3)
	b := NewBox().SetBorders(BordersAll).SetBorderSet(BorderSetDouble())
	b.SetRect(0, 0, 4, 3)
	b.Draw(screen)
	assert.Equal(t, "╔══╗", screenText(screen, 0, 0, 4))
	assert.Equal(t, "╚══╝", screenText(screen, 0, 2, 4))

	b.SetBorderSet(BorderSetRound())
	b.Draw(screen)
	assert.Equal(t, "╭──╮", screenText(screen, 0, 0, 4))
	assert.Equal(t, "│  │", screenText(screen, 0, 1, 4))
	assert.Equal(t, "╰──╯", screenText(screen, 0, 2, 4))
}

func TestBoxMouseFocus(t *testing.T) {
	b := NewBox()
	b.SetRect(0, 0, 4, 2)

	_, cmd := b.MouseHandler(MouseLeftDown, tcell.NewEventMouse(1, 1, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, SetFocusCommand{Target: b}, cmd)

	_, cmd = b.MouseHandler(MouseLeftDown, tcell.NewEventMouse(5, 1, tcell.ButtonPrimary, tcell.ModNone))
	assert.Nil(t, cmd)

	_, cmd = b.MouseHandler(MouseMove, tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	assert.Nil(t, cmd)
}

func TestBoxFocusCallbacks(t *testing.T) {
	var events []string
	b := NewBox().
		SetFocusFunc(func() { events = append(events, "focus") }).
		SetBlurFunc(func() { events = append(events, "blur") })

	b.MarkClean()
	b.Focus(nil)
	assert.True(t, b.HasFocus())
	assert.True(t, b.IsDirty())
	b.Blur()
	assert.False(t, b.HasFocus())
	assert.Equal(t, []string{"focus", "blur"}, events)
}

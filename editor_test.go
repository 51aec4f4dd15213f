package gridview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestCellEditorEditing(t *testing.T) {
	e := NewCellEditor().SetText("ab\ncd")
	assert.Equal(t, "ab cd", e.GetText())
	assert.Equal(t, 5, e.Cursor())

	e.InputHandler(key(tcell.KeyBackspace))
	assert.Equal(t, "ab c", e.GetText())

	e.InputHandler(key(tcell.KeyLeft))
	e.InputHandler(runeKey('X'))
	assert.Equal(t, "ab Xc", e.GetText())
	assert.Equal(t, 4, e.Cursor())

	e.InputHandler(key(tcell.KeyDelete))
	assert.Equal(t, "ab X", e.GetText())

	e.InputHandler(key(tcell.KeyHome))
	e.InputHandler(key(tcell.KeyRight))
	e.InputHandler(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModCtrl))
	assert.Equal(t, "a", e.GetText())

	e.InputHandler(key(tcell.KeyEnd))
	e.PasteHandler("b\nc")
	assert.Equal(t, "ab c", e.GetText())

	// A raw control code, as sent by most terminals.
	e.InputHandler(tcell.NewEventKey(tcell.KeyRune, 0x15, tcell.ModNone))
	assert.Equal(t, "", e.GetText())

	assert.Nil(t, e.InputHandler(key(tcell.KeyF5)))
}

func TestCellEditorLineBreaks(t *testing.T) {
	e := NewCellEditor().SetText("a\rb\r\nc\td")
	assert.Equal(t, "a b c d", e.GetText())

	e.SetText("")
	e.PasteHandler("x\ry\r\nz")
	assert.Equal(t, "x y z", e.GetText())
}

func TestCellEditorGraphemes(t *testing.T) {
	e := NewCellEditor().SetText("cafe\u0301!")
	e.InputHandler(key(tcell.KeyLeft))
	e.InputHandler(key(tcell.KeyBackspace))
	assert.Equal(t, "caf!", e.GetText())
}

func TestCellEditorDone(t *testing.T) {
	var keys []tcell.Key
	e := NewCellEditor().SetDoneFunc(func(key tcell.Key) {
		keys = append(keys, key)
	})

	assert.Equal(t, RedrawCommand{}, e.InputHandler(key(tcell.KeyEnter)))
	assert.Equal(t, RedrawCommand{}, e.InputHandler(key(tcell.KeyEscape)))
	assert.Equal(t, []tcell.Key{tcell.KeyEnter, tcell.KeyEscape}, keys)
}

func TestCellEditorDrawScrollsToCursor(t *testing.T) {
	screen := newTestScreen(t, 10, 1)
	e := NewCellEditor().SetText("abcdefgh")
	e.SetRect(0, 0, 5, 1)
	e.Draw(screen)

	assert.Equal(t, "efgh ", screenText(screen, 0, 0, 5))

	e.InputHandler(key(tcell.KeyHome))
	e.Draw(screen)
	assert.Equal(t, "abcde", screenText(screen, 0, 0, 5))
}

func TestCellEditorMouse(t *testing.T) {
	screen := newTestScreen(t, 10, 1)
	e := NewCellEditor().SetText("abcdef")
	e.SetRect(2, 0, 8, 1)
	e.Draw(screen)

	_, cmd := e.MouseHandler(MouseLeftDown, tcell.NewEventMouse(4, 0, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 2, e.Cursor())

	e.MouseHandler(MouseLeftDown, tcell.NewEventMouse(9, 0, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, 6, e.Cursor())
}

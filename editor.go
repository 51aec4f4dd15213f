package gridview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// lineBreaks flattens text to a single line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// CellEditor is a single-line text editor drawn over a grid cell. The cursor
// moves by grapheme cluster.
type CellEditor struct {
	*Box

	text string
	// cursor is a byte offset into text, always on a cluster boundary.
	cursor int
	// offset is the number of cells scrolled off the left edge.
	offset int

	style tcell.Style

	// done is called with KeyEnter or KeyEscape when editing ends.
	done func(key tcell.Key)
}

// NewCellEditor returns an empty editor.
func NewCellEditor() *CellEditor {
	e := &CellEditor{
		Box:   NewBox(),
		style: tcell.StyleDefault.Background(Styles.EditorBackgroundColor).Foreground(Styles.PrimaryTextColor),
	}
	e.Box.dontClear = true
	return e
}

// SetText replaces the text and moves the cursor to its end.
func (e *CellEditor) SetText(text string) *CellEditor {
	e.text = lineBreaks.Replace(text)
	e.cursor = len(e.text)
	e.offset = 0
	e.MarkDirty()
	return e
}

// GetText returns the current text.
func (e *CellEditor) GetText() string {
	return e.text
}

// Cursor returns the cursor position as a byte offset.
func (e *CellEditor) Cursor() int {
	return e.cursor
}

// SetDoneFunc sets the handler called when editing ends.
func (e *CellEditor) SetDoneFunc(handler func(key tcell.Key)) *CellEditor {
	e.done = handler
	return e
}

// SetStyle sets the style of the editor's text.
func (e *CellEditor) SetStyle(style tcell.Style) *CellEditor {
	e.style = style
	e.MarkDirty()
	return e
}

// Draw draws the text and places the terminal cursor.
func (e *CellEditor) Draw(screen tcell.Screen) {
	e.DrawForSubclass(screen, e)
	defer e.MarkClean()

	x, y, width, height := e.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	fill(screen, x, y, width, 1, e.style)

	// Keep the cursor within the visible cells.
	cursorX := StringWidth(e.text[:e.cursor])
	if cursorX < e.offset {
		e.offset = cursorX
	} else if cursorX-e.offset >= width {
		e.offset = cursorX - width + 1
	}

	printWithStyle(screen, e.text, x, y, e.offset, width, AlignmentLeft, e.style, false)
	if e.HasFocus() {
		screen.ShowCursor(x+cursorX-e.offset, y)
	}
}

// InputHandler edits the text. Enter and Esc end editing.
func (e *CellEditor) InputHandler(event *tcell.EventKey) Command {
	bounds := graphemeBounds(e.text)
	prev, next := e.cursor, e.cursor
	for i, b := range bounds {
		if b == e.cursor {
			if i > 0 {
				prev = bounds[i-1]
			}
			if i < len(bounds)-1 {
				next = bounds[i+1]
			}
			break
		}
	}

	// Terminals report control keys either as KeyCtrlA..KeyCtrlZ or as the
	// raw control code.
	switch event.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		if e.done != nil {
			e.done(event.Key())
		}
		return RedrawCommand{}
	case tcell.KeyRune:
		e.insert(string(event.Rune()))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.text = e.text[:prev] + e.text[e.cursor:]
		e.cursor = prev
	case tcell.KeyDelete:
		e.text = e.text[:e.cursor] + e.text[next:]
	case tcell.KeyLeft:
		e.cursor = prev
	case tcell.KeyRight:
		e.cursor = next
	case tcell.KeyHome, tcell.KeyCtrlA, tcell.KeySOH:
		e.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE, tcell.KeyENQ:
		e.cursor = len(e.text)
	case tcell.KeyCtrlU, tcell.KeyNAK:
		e.text = e.text[e.cursor:]
		e.cursor = 0
	case tcell.KeyCtrlK, tcell.KeyVT:
		e.text = e.text[:e.cursor]
	default:
		return nil
	}
	e.MarkDirty()
	return RedrawCommand{}
}

// PasteHandler inserts pasted text, with line breaks turned into spaces.
func (e *CellEditor) PasteHandler(text string) Command {
	e.insert(lineBreaks.Replace(text))
	e.MarkDirty()
	return RedrawCommand{}
}

// MouseHandler moves the cursor to the clicked cluster.
func (e *CellEditor) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if action != MouseLeftDown || !e.InInnerRect(x, y) {
		return nil, nil
	}
	innerX, _, _, _ := e.GetInnerRect()
	target := x - innerX + e.offset
	e.cursor = len(e.text)
	for _, b := range graphemeBounds(e.text) {
		if StringWidth(e.text[:b]) > target {
			break
		}
		e.cursor = b
	}
	e.MarkDirty()
	return nil, RedrawCommand{}
}

func (e *CellEditor) insert(s string) {
	e.text = e.text[:e.cursor] + s + e.text[e.cursor:]
	e.cursor += len(s)
}

var _ Primitive = &CellEditor{}

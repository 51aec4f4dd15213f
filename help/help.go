// Package help renders the key bindings of a primitive, either on one line or
// as aligned columns.
package help

import (
	"strings"

	"github.com/ayn2op/gridview"
	"github.com/ayn2op/gridview/keybind"
	"github.com/gdamore/tcell/v2"
)

// KeyMap is implemented by anything that can describe its key bindings.
type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help is a primitive that draws the help of a KeyMap.
type Help struct {
	*gridview.Box
	Styles Styles

	keyMap    KeyMap
	showAll   bool
	separator string
	gap       string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       gridview.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		gap:       "    ",
		ellipsis:  gridview.SemigraphicsHorizontalEllipsis,
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll switches between the one-line and the column layout.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll returns whether the column layout is used.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetSeparator sets the text between entries of the one-line layout.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetGap sets the text between columns of the column layout.
func (h *Help) SetGap(gap string) *Help {
	h.gap = gap
	return h
}

// SetEllipsis sets the marker appended when entries did not fit.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	defer h.MarkClean()
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	for row, line := range h.Lines(width) {
		if row >= height {
			break
		}
		drawLine(screen, x, y+row, width, line)
	}
}

// Lines lays out the help for the given width.
func (h *Help) Lines(width int) []Line {
	if h.keyMap == nil {
		return nil
	}
	if h.showAll {
		return h.columns(h.keyMap.FullHelp(), width)
	}
	if line := h.short(h.keyMap.ShortHelp(), width); len(line) > 0 {
		return []Line{line}
	}
	return nil
}

// Span is a piece of text printed in one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is a sequence of spans printed left to right.
type Line []Span

// Width returns the number of cells the line occupies.
func (l Line) Width() int {
	width := 0
	for _, s := range l {
		width += gridview.StringWidth(s.Text)
	}
	return width
}

// String returns the line without styles.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

type entry struct {
	key, desc string
}

func entriesOf(bindings []keybind.Keybind) []entry {
	entries := make([]entry, 0, len(bindings))
	for _, kb := range bindings {
		hp := kb.Help()
		if !kb.Enabled() || (hp.Key == "" && hp.Desc == "") {
			continue
		}
		entries = append(entries, entry{key: hp.Key, desc: hp.Desc})
	}
	return entries
}

func (e entry) spans(keyStyle, descStyle tcell.Style, keyWidth int) Line {
	var line Line
	if e.key != "" {
		line = append(line, Span{Text: e.key, Style: keyStyle})
	}
	if pad := keyWidth - gridview.StringWidth(e.key); pad > 0 {
		line = append(line, Span{Text: strings.Repeat(" ", pad), Style: keyStyle})
	}
	if e.key != "" && e.desc != "" {
		line = append(line, Span{Text: " ", Style: descStyle})
	}
	if e.desc != "" {
		line = append(line, Span{Text: e.desc, Style: descStyle})
	}
	return line
}

func (h *Help) short(bindings []keybind.Keybind, width int) Line {
	var line Line
	for i, e := range entriesOf(bindings) {
		item := e.spans(h.Styles.ShortKeyStyle, h.Styles.ShortDescStyle, 0)
		if i > 0 {
			item = append(Line{{Text: h.separator, Style: h.Styles.ShortSeparatorStyle}}, item...)
		}
		if width > 0 && line.Width()+item.Width() > width {
			return h.withEllipsis(line, width)
		}
		line = append(line, item...)
	}
	return line
}

func (h *Help) columns(groups [][]keybind.Keybind, width int) []Line {
	type column struct {
		entries  []entry
		keyWidth int
		width    int
	}

	var columns []column
	gapWidth := gridview.StringWidth(h.gap)
	total := 0
	truncated := false
	for _, group := range groups {
		entries := entriesOf(group)
		if len(entries) == 0 {
			continue
		}
		c := column{entries: entries}
		for _, e := range entries {
			c.keyWidth = max(c.keyWidth, gridview.StringWidth(e.key))
		}
		for _, e := range entries {
			c.width = max(c.width, e.spans(tcell.StyleDefault, tcell.StyleDefault, c.keyWidth).Width())
		}

		next := c.width
		if len(columns) > 0 {
			next += gapWidth
		}
		if width > 0 && total+next > width {
			truncated = true
			break
		}
		total += next
		columns = append(columns, c)
	}

	if len(columns) == 0 {
		if truncated {
			return []Line{{{Text: h.ellipsis, Style: h.Styles.EllipsisStyle}}}
		}
		return nil
	}

	rows := 0
	for _, c := range columns {
		rows = max(rows, len(c.entries))
	}

	lines := make([]Line, rows)
	for row := range lines {
		var line Line
		for i, c := range columns {
			if i > 0 {
				line = append(line, Span{Text: h.gap, Style: h.Styles.FullSeparatorStyle})
			}
			var cell Line
			if row < len(c.entries) {
				cell = c.entries[row].spans(h.Styles.FullKeyStyle, h.Styles.FullDescStyle, c.keyWidth)
			}
			// Pad all but the last column so the gaps stay aligned.
			if pad := c.width - cell.Width(); pad > 0 && i < len(columns)-1 {
				cell = append(cell, Span{Text: strings.Repeat(" ", pad), Style: h.Styles.FullDescStyle})
			}
			line = append(line, cell...)
		}
		lines[row] = line
	}

	if truncated {
		lines[0] = h.withEllipsis(lines[0], width)
	}
	return lines
}

// withEllipsis appends the ellipsis if it fits completely.
func (h *Help) withEllipsis(line Line, width int) Line {
	if h.ellipsis == "" {
		return line
	}
	tail := Line{{Text: " " + h.ellipsis, Style: h.Styles.EllipsisStyle}}
	if width > 0 && line.Width()+tail.Width() > width {
		return line
	}
	return append(line, tail...)
}

func drawLine(screen tcell.Screen, x, y, width int, line Line) {
	for _, s := range line {
		if width <= 0 {
			return
		}
		if s.Text == "" {
			continue
		}
		_, printed := gridview.PrintWithStyle(screen, s.Text, x, y, width, gridview.AlignmentLeft, s.Style)
		x += printed
		width -= printed
	}
}

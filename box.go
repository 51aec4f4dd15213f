package gridview

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Box implements the Primitive interface with an empty background and optional
// elements such as a border and a title. Box itself does not hold any content
// but serves as the base of all other primitives, which embed it and keep their
// content within the box's inner rectangle.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// The inner rect reserved for the box's content. If innerX is negative,
	// the rect is undefined and must be calculated.
	innerX, innerY, innerWidth, innerHeight int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color

	// If set to true, the background of this box is not cleared while drawing.
	dontClear bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	hasFocus bool

	// dirty indicates whether this primitive needs to be redrawn.
	dirty atomic.Bool

	// Optional callback functions invoked when the primitive receives or loses
	// focus.
	focus, blur func()
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	b := &Box{
		width:           15,
		height:          10,
		innerX:          -1, // Mark as uninitialized.
		backgroundColor: Styles.PrimitiveBackgroundColor,

		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:   BorderSetPlain(),

		titleStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment: AlignmentCenter,
	}
	b.dirty.Store(true)
	return b
}

// SetBorderPadding sets the size of the borders around the box content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	if b.paddingTop != top || b.paddingBottom != bottom || b.paddingLeft != left || b.paddingRight != right {
		b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height values
// will clamp to 0 and thus never be negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.GetRect()
	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width -= b.paddingLeft + b.paddingRight
	height -= b.paddingTop + b.paddingBottom
	return x, y, max(width, 0), max(height, 0)
}

// SetRect sets a new position of the primitive.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.innerX = -1
		b.MarkDirty()
	}
}

// IsDirty returns whether this primitive needs redrawing.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty marks this primitive as needing a redraw.
func (b *Box) MarkDirty() {
	b.dirty.Store(true)
}

// MarkClean marks this primitive as clean.
func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler takes focus when the box is clicked.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect returns true if the given coordinate is within the bounds of the box's
// rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// InInnerRect returns true if the given coordinate is within the bounds of the
// box's inner rectangle (within the border and padding).
func (b *Box) InInnerRect(x, y int) bool {
	rectX, rectY, width, height := b.GetInnerRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBackgroundColor sets the box's background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.backgroundColor != color {
		b.backgroundColor = color
		b.borderStyle = b.borderStyle.Background(color)
		b.MarkDirty()
	}
	return b
}

// GetBackgroundColor returns the box's background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	if b.borders != flag {
		b.borders = flag
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// GetBorders returns the borders.
func (b *Box) GetBorders() Borders {
	return b.borders
}

// SetBorderSet sets the glyphs used for the frame.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	if b.borderSet != borderSet {
		b.borderSet = borderSet
		b.MarkDirty()
	}
	return b
}

// SetBorderStyle sets the box's border style.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.MarkDirty()
	}
	return b
}

// GetTitle returns the box's current title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitle sets the box's title.
func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// SetTitleStyle sets the style of the title.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	if b.titleStyle != style {
		b.titleStyle = style
		b.MarkDirty()
	}
	return b
}

// SetTitleAlignment sets the alignment of the title.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	if b.titleAlignment != alignment {
		b.titleAlignment = alignment
		b.MarkDirty()
	}
	return b
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws this box under the assumption that primitive p embeds
// it. Only call this function from your own primitives.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	if !b.dontClear {
		fill(screen, b.x, b.y, b.width, b.height, tcell.StyleDefault.Background(b.backgroundColor))
	}

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorders(screen)
	}

	if b.title != "" && b.width >= 4 {
		title := fitText(b.title, b.width-2)
		printWithStyle(screen, title, b.x+1, b.y, 0, b.width-2, b.titleAlignment, b.titleStyle, true)
	}

	// Remember the inner rect.
	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
}

func (b *Box) drawBorders(screen tcell.Screen) {
	put := func(x, y int, glyph string) {
		putCluster(screen, x, y, glyph, b.borderStyle)
	}
	left, right := b.x, b.x+b.width-1
	top, bottom := b.y, b.y+b.height-1

	if b.borders.Has(BordersTop) {
		for x := left + 1; x < right; x++ {
			put(x, top, b.borderSet.Top)
		}
	}
	if b.borders.Has(BordersBottom) {
		for x := left + 1; x < right; x++ {
			put(x, bottom, b.borderSet.Bottom)
		}
	}
	if b.borders.Has(BordersLeft) {
		for y := top + 1; y < bottom; y++ {
			put(left, y, b.borderSet.Left)
		}
	}
	if b.borders.Has(BordersRight) {
		for y := top + 1; y < bottom; y++ {
			put(right, y, b.borderSet.Right)
		}
	}

	if b.borders&(BordersTop|BordersLeft) == BordersTop|BordersLeft {
		put(left, top, b.borderSet.TopLeft)
	}
	if b.borders&(BordersTop|BordersRight) == BordersTop|BordersRight {
		put(right, top, b.borderSet.TopRight)
	}
	if b.borders&(BordersBottom|BordersLeft) == BordersBottom|BordersLeft {
		put(left, bottom, b.borderSet.BottomLeft)
	}
	if b.borders&(BordersBottom|BordersRight) == BordersBottom|BordersRight {
		put(right, bottom, b.borderSet.BottomRight)
	}
}

// SetFocusFunc sets a callback function which is invoked when this primitive
// receives focus. Set to nil to remove the callback function.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// SetBlurFunc sets a callback function which is invoked when this primitive
// loses focus. Set to nil to remove the callback function.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.blur = callback
	return b
}

// Focus is called when this primitive directly receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
	if b.focus != nil {
		b.focus()
	}
}

// Blur is called when this primitive directly loses focus.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
	if b.blur != nil {
		b.blur()
	}
}

// HasFocus returns whether or not this primitive has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = &Box{}

package layers

import (
	"github.com/ayn2op/gridview"
	"github.com/gdamore/tcell/v2"
)

// Placement computes a layer's rect from the container's inner rect.
type Placement func(x, y, width, height int) (int, int, int, int)

// Fill places a layer over the whole inner rect.
func Fill(x, y, width, height int) (int, int, int, int) {
	return x, y, width, height
}

// Top places a layer over all but the bottom rows of the inner rect.
func Top(bottom int) Placement {
	return func(x, y, width, height int) (int, int, int, int) {
		return x, y, width, max(height-bottom, 0)
	}
}

// Bottom places a layer over the last rows of the inner rect.
func Bottom(rows int) Placement {
	return func(x, y, width, height int) (int, int, int, int) {
		rows := min(rows, height)
		return x, y + height - rows, width, rows
	}
}

// Center places a layer of at most width x height cells in the middle of the
// inner rect.
func Center(width, height int) Placement {
	return func(x, y, w, h int) (int, int, int, int) {
		width, height := min(width, w), min(height, h)
		return x + (w-width)/2, y + (h-height)/2, width, height
	}
}

// layer represents one layer of a Layers object.
type layer struct {
	name      string
	item      gridview.Primitive
	placement Placement
	visible   bool
	// Disabled layers are drawn but never receive focus or input.
	enabled bool
	// Overlay layers restyle the layers behind them and block their input.
	overlay bool
}

// Layers stacks primitives on top of each other. Visible layers are drawn
// from back to front. The front-most visible enabled layer has the focus
// whenever the container has it.
type Layers struct {
	*gridview.Box

	layers []*layer

	// backgroundStyle restyles cells of layers behind the active overlay.
	backgroundStyle func(tcell.Style) tcell.Style
}

// Option configures a layer on AddLayer.
type Option func(*layer)

// WithName sets the layer's name.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithPlacement sets where the layer is drawn. Without a placement the layer
// keeps the rect it was given.
func WithPlacement(placement Placement) Option {
	return func(l *layer) {
		l.placement = placement
	}
}

// WithVisible sets the initial visibility of the layer.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithEnabled sets whether the layer can receive focus and input.
func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns an empty container.
func New() *Layers {
	return &Layers{
		Box: gridview.NewBox(),
		backgroundStyle: func(style tcell.Style) tcell.Style {
			return style.Dim(true)
		},
	}
}

// AddLayer adds a layer in front of all others. A layer with the same name is
// replaced.
func (l *Layers) AddLayer(item gridview.Primitive, opts ...Option) *Layers {
	newLayer := &layer{item: item, visible: true, enabled: true}
	for _, opt := range opts {
		if opt != nil {
			opt(newLayer)
		}
	}
	if newLayer.name != "" {
		l.remove(newLayer.name)
	}
	l.layers = append(l.layers, newLayer)
	l.changed()
	return l
}

// RemoveLayer removes the layer with the given name.
func (l *Layers) RemoveLayer(name string) *Layers {
	if l.remove(name) {
		l.changed()
	}
	return l
}

func (l *Layers) remove(name string) bool {
	for index, layer := range l.layers {
		if layer.name == name {
			if layer.item.HasFocus() {
				layer.item.Blur()
			}
			l.layers = append(l.layers[:index], l.layers[index+1:]...)
			return true
		}
	}
	return false
}

// GetLayerCount returns the number of layers.
func (l *Layers) GetLayerCount() int {
	return len(l.layers)
}

// HasLayer reports whether a layer with the given name exists.
func (l *Layers) HasLayer(name string) bool {
	return l.find(name) != nil
}

// GetLayer returns the primitive of the named layer, or nil.
func (l *Layers) GetLayer(name string) gridview.Primitive {
	if layer := l.find(name); layer != nil {
		return layer.item
	}
	return nil
}

// GetVisible reports whether the named layer is visible.
func (l *Layers) GetVisible(name string) bool {
	layer := l.find(name)
	return layer != nil && layer.visible
}

// ShowLayer makes the named layer visible.
func (l *Layers) ShowLayer(name string) *Layers {
	return l.setVisible(name, true)
}

// HideLayer hides the named layer.
func (l *Layers) HideLayer(name string) *Layers {
	return l.setVisible(name, false)
}

// ToggleLayer flips the visibility of the named layer.
func (l *Layers) ToggleLayer(name string) *Layers {
	return l.setVisible(name, !l.GetVisible(name))
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	if layer := l.find(name); layer != nil && layer.visible != visible {
		layer.visible = visible
		l.changed()
	}
	return l
}

// SendToFront moves the named layer in front of all others.
func (l *Layers) SendToFront(name string) *Layers {
	for index, layer := range l.layers {
		if layer.name == name {
			if index < len(l.layers)-1 {
				l.layers = append(append(l.layers[:index], l.layers[index+1:]...), layer)
				l.changed()
			}
			break
		}
	}
	return l
}

// GetFrontLayer returns the front-most visible layer. If there are no visible
// layers, ("", nil) is returned.
func (l *Layers) GetFrontLayer() (name string, item gridview.Primitive) {
	for index := len(l.layers) - 1; index >= 0; index-- {
		if l.layers[index].visible {
			return l.layers[index].name, l.layers[index].item
		}
	}
	return "", nil
}

// SetBackgroundStyleFunc sets how cells behind the active overlay are
// restyled. The default dims them.
func (l *Layers) SetBackgroundStyleFunc(f func(tcell.Style) tcell.Style) *Layers {
	if f != nil {
		l.backgroundStyle = f
		l.MarkDirty()
	}
	return l
}

func (l *Layers) find(name string) *layer {
	for _, layer := range l.layers {
		if layer.name == name {
			return layer
		}
	}
	return nil
}

// changed moves the focus to the new front layer.
func (l *Layers) changed() {
	l.MarkDirty()
	front := l.front()
	for _, layer := range l.layers {
		focused := l.Box.HasFocus() && layer == front
		switch {
		case focused && !layer.item.HasFocus():
			layer.item.Focus(nil)
		case !focused && layer.item.HasFocus():
			layer.item.Blur()
		}
	}
}

// Focus is called when the container receives focus. The container keeps
// the focus itself and hands it to its front layer.
func (l *Layers) Focus(delegate func(p gridview.Primitive)) {
	l.Box.Focus(delegate)
	l.changed()
}

// Blur is called when the container loses focus.
func (l *Layers) Blur() {
	l.Box.Blur()
	l.changed()
}

// Draw draws the visible layers from back to front.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	defer l.MarkClean()

	overlayIndex := l.overlayIndex()
	x, y, width, height := l.GetInnerRect()
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		layerScreen := screen
		if overlayIndex >= 0 && index < overlayIndex {
			layerScreen = &overlayScreen{Screen: screen, style: l.backgroundStyle}
		}
		if layer.placement != nil {
			layer.item.SetRect(layer.placement(x, y, width, height))
		}
		layer.item.Draw(layerScreen)
	}
}

// InputHandler passes key events to the front layer.
func (l *Layers) InputHandler(event *tcell.EventKey) gridview.Command {
	if front := l.front(); front != nil {
		return front.item.InputHandler(event)
	}
	return nil
}

// PasteHandler passes pasted text to the front layer.
func (l *Layers) PasteHandler(text string) gridview.Command {
	if front := l.front(); front != nil {
		return front.item.PasteHandler(text)
	}
	return nil
}

// MouseHandler passes mouse events to the front-most enabled layer under the
// mouse, but never to layers behind an active overlay.
func (l *Layers) MouseHandler(action gridview.MouseAction, event *tcell.EventMouse) (gridview.Primitive, gridview.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlayIndex := l.overlayIndex()
	x, y := event.Position()
	for index := len(l.layers) - 1; index >= 0; index-- {
		if overlayIndex >= 0 && index < overlayIndex {
			break
		}
		layer := l.layers[index]
		if !layer.visible || !layer.enabled || !inRect(layer.item, x, y) {
			continue
		}
		capture, cmd := layer.item.MouseHandler(action, event)
		return capture, l.redirectFocus(cmd)
	}
	if overlayIndex >= 0 {
		return nil, gridview.ConsumeEventCommand{}
	}
	return nil, nil
}

// redirectFocus keeps the application focus on the container: requests to
// focus a layer are answered by the container itself.
func (l *Layers) redirectFocus(cmd gridview.Command) gridview.Command {
	switch c := cmd.(type) {
	case gridview.SetFocusCommand:
		if l.owns(c.Target) {
			if l.Box.HasFocus() {
				return gridview.RedrawCommand{}
			}
			return gridview.SetFocusCommand{Target: l}
		}
	case gridview.BatchCommand:
		out := make(gridview.BatchCommand, len(c))
		for i, item := range c {
			out[i] = l.redirectFocus(item)
		}
		return out
	}
	return cmd
}

func (l *Layers) owns(p gridview.Primitive) bool {
	for _, layer := range l.layers {
		if layer.item == p {
			return true
		}
	}
	return false
}

func (l *Layers) front() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled {
			return layer
		}
	}
	return nil
}

// overlayIndex returns the index of the front-most visible enabled overlay
// layer, or -1.
func (l *Layers) overlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled && layer.overlay {
			return index
		}
	}
	return -1
}

func inRect(p gridview.Primitive, x, y int) bool {
	rx, ry, width, height := p.GetRect()
	return x >= rx && x < rx+width && y >= ry && y < ry+height
}

var _ gridview.Primitive = &Layers{}

// overlayScreen restyles every cell written through it.
type overlayScreen struct {
	tcell.Screen
	style func(tcell.Style) tcell.Style
}

func (s *overlayScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, s.style(style))
}

func (s *overlayScreen) SetCell(x int, y int, style tcell.Style, ch ...rune) {
	s.Screen.SetCell(x, y, s.style(style), ch...)
}

// ShowCursor hides the cursor of layers behind an overlay.
func (s *overlayScreen) ShowCursor(int, int) {}

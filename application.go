package gridview

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// queueSize is the capacity of the event and update channels.
const queueSize = 100

// DoubleClickInterval is the longest time between two clicks that still
// counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is what the mouse is logically doing, derived from the raw
// button state of consecutive mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var wheelActions = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// mouseState remembers enough of the previous mouse events to turn the next
// one into actions.
type mouseState struct {
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
	lastClick    time.Time
}

// actions returns the actions event stands for, in the order they happen.
// A release at the press position is a click, and a second click within
// DoubleClickInterval is a double click.
func (s *mouseState) actions(event *tcell.EventMouse, now time.Time) []MouseAction {
	var actions []MouseAction
	x, y := event.Position()
	if x != s.x || y != s.y {
		actions = append(actions, MouseMove)
		s.x, s.y = x, y
	}

	buttons := event.Buttons()
	pressed := buttons&tcell.ButtonPrimary != 0
	wasPressed := s.buttons&tcell.ButtonPrimary != 0
	switch {
	case pressed && !wasPressed:
		actions = append(actions, MouseLeftDown)
		s.downX, s.downY = x, y
	case !pressed && wasPressed:
		actions = append(actions, MouseLeftUp)
		if x != s.downX || y != s.downY {
			break
		}
		if now.Sub(s.lastClick) <= DoubleClickInterval {
			actions = append(actions, MouseLeftDoubleClick)
			s.lastClick = time.Time{}
		} else {
			actions = append(actions, MouseLeftClick)
			s.lastClick = now
		}
	}
	s.buttons = buttons

	for _, wheel := range wheelActions {
		if buttons&wheel.button != 0 {
			actions = append(actions, wheel.action)
		}
	}
	return actions
}

// Application owns the terminal screen, runs the event loop and executes the
// commands returned by the root primitive's handlers.
//
// The following displays a grid until a QuitCommand is executed:
//
//	if err := gridview.NewApplication().SetRoot(grid).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	root   Primitive
	focus  Primitive

	events  chan tcell.Event
	quit    chan struct{}
	updates chan func()

	enableMouse bool
	enablePaste bool

	logger *slog.Logger

	// writeClipboard places text on the system clipboard.
	writeClipboard func(text string) error

	// The following fields belong to the event loop goroutine.
	mouse   mouseState
	capture Primitive
	// paste collects the runes of a bracketed paste, nil outside of one.
	paste *strings.Builder

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

func NewApplication() *Application {
	return &Application{
		updates:        make(chan func(), queueSize),
		enableMouse:    true,
		enablePaste:    true,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		writeClipboard: clipboard.WriteAll,
	}
}

// SetScreen sets the screen Run draws on, typically a simulation screen. It
// has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

func (a *Application) SetLogger(logger *slog.Logger) *Application {
	a.Lock()
	defer a.Unlock()
	if logger != nil {
		a.logger = logger
	}
	return a
}

// EnableMouse sets whether mouse events are reported once Run starts.
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enableMouse = enable
	return a
}

// EnablePaste sets whether bracketed paste is enabled once Run starts.
func (a *Application) EnablePaste(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enablePaste = enable
	return a
}

// Run initializes the screen and processes events and queued updates until
// Stop is called or the screen reports an error.
func (a *Application) Run() error {
	if err := a.start(); err != nil {
		return err
	}

	// A panic leaves the terminal in raw mode unless the screen is finalized.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()
	for {
		select {
		case event, ok := <-a.events:
			// ChannelEvents closes the channel when the screen is finalized.
			if !ok || event == nil {
				return nil
			}
			if err, ok := event.(*tcell.EventError); ok {
				a.Stop()
				return err
			}
			if a.handleEvent(event) {
				a.draw()
			}
		case update := <-a.updates:
			update()
		}
	}
}

func (a *Application) start() error {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		a.screen = screen
	}
	if err := a.screen.Init(); err != nil {
		return err
	}
	if a.enableMouse {
		a.screen.EnableMouse()
	}
	if a.enablePaste {
		a.screen.EnablePaste()
	}
	a.events = make(chan tcell.Event, queueSize)
	a.quit = make(chan struct{})
	go a.screen.ChannelEvents(a.events, a.quit)
	return nil
}

// handleEvent dispatches one screen event and reports whether the screen
// must be redrawn.
func (a *Application) handleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.paste != nil {
			a.collectPaste(event)
			return false
		}
		if focus := a.GetFocus(); focus != nil && focus.HasFocus() {
			return a.executeCommand(focus.InputHandler(event))
		}
	case *tcell.EventPaste:
		return a.handlePaste(event)
	case *tcell.EventResize:
		a.Lock()
		a.forceRedraw = true
		a.Unlock()
		return true
	case *tcell.EventMouse:
		return a.fireMouseActions(event)
	}
	return false
}

func (a *Application) collectPaste(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		a.paste.WriteRune(event.Rune())
	case tcell.KeyEnter:
		a.paste.WriteByte('\n')
	case tcell.KeyTab:
		a.paste.WriteByte('\t')
	}
}

// handlePaste starts collecting on a paste start and hands the collected
// text to the focused primitive on a paste end.
func (a *Application) handlePaste(event *tcell.EventPaste) bool {
	if event.Start() {
		a.paste = &strings.Builder{}
		return false
	}
	if !event.End() || a.paste == nil {
		return false
	}
	text := a.paste.String()
	a.paste = nil
	if focus := a.GetFocus(); text != "" && focus != nil && focus.HasFocus() {
		return a.executeCommand(focus.PasteHandler(text))
	}
	return false
}

// fireMouseActions sends the actions of event to the capturing primitive, or
// to the root, and reports whether any of them asked for a redraw. Every
// action of one event goes to the same primitive.
func (a *Application) fireMouseActions(event *tcell.EventMouse) bool {
	target := a.capture
	if target == nil {
		a.RLock()
		target = a.root
		a.RUnlock()
	}
	if target == nil {
		return false
	}

	redraw := false
	for _, action := range a.mouse.actions(event, time.Now()) {
		capture, cmd := target.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			redraw = true
		}
		a.capture = capture
		if capture != nil {
			target = capture
		}
	}
	return redraw
}

// Stop finalizes the screen, which makes Run return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	if a.quit != nil {
		close(a.quit)
		a.quit = nil
	}
	a.screen.Fini()
	a.screen = nil
}

func (a *Application) draw() {
	a.Lock()
	screen, root, forceRedraw := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.Unlock()
	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// Show only emits changed cells, so regular frames skip the clear.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the primitive that fills the screen and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	a.forceRedraw = true
	a.Unlock()

	return a.SetFocus(root)
}

// SetFocus blurs the focused primitive and focuses p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	previous := a.focus
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop goroutine and waits for it. Use it to
// change primitives from other goroutines. It must not be called from the
// event loop itself.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- func() {
		f()
		close(done)
	}
	<-done
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws the screen after f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// executeCommand runs cmd and reports whether the screen must be redrawn.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil || c.Target == a.GetFocus() {
			return false
		}
		a.SetFocus(c.Target)
		return true
	case SetClipboardCommand:
		a.setClipboard(string(c))
	case SetTitleCommand:
		if screen := a.getScreen(); screen != nil {
			screen.SetTitle(string(c))
		}
	case ConsumeEventCommand:
	default:
		a.logger.Debug("unknown command", slog.Any("command", cmd))
	}
	return false
}

func (a *Application) getScreen() tcell.Screen {
	a.RLock()
	defer a.RUnlock()
	return a.screen
}

// setClipboard writes to the system clipboard and falls back to the
// terminal's OSC 52 clipboard when no system clipboard is available.
func (a *Application) setClipboard(text string) {
	err := a.writeClipboard(text)
	if err == nil {
		return
	}
	a.logger.Debug("system clipboard unavailable", slog.Any("err", err))
	if screen := a.getScreen(); screen != nil {
		screen.SetClipboard([]byte(text))
	}
}

package gridview

import "github.com/ayn2op/gridview/keybind"

// GridKeyMap holds the key bindings of a Grid. It implements help.KeyMap.
type GridKeyMap struct {
	Up    keybind.Keybind
	Down  keybind.Keybind
	Left  keybind.Keybind
	Right keybind.Keybind

	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Home     keybind.Keybind
	End      keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind

	Edit   keybind.Keybind
	Cancel keybind.Keybind
	Toggle keybind.Keybind
	Select keybind.Keybind
	Sort   keybind.Keybind
	Freeze keybind.Keybind
	Copy   keybind.Keybind
	// DeleteSubRow is enabled by Grid.SetDeleteSubRowFunc.
	DeleteSubRow keybind.Keybind

	Narrow keybind.Keybind
	Widen  keybind.Keybind
}

// DefaultGridKeyMap returns the default key bindings.
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
		Up:    keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:  keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		Left:  keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "left")),
		Right: keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "right")),

		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Home:     keybind.NewKeybind(keybind.WithKeys("home", "0"), keybind.WithHelp("home", "first column")),
		End:      keybind.NewKeybind(keybind.WithKeys("end", "$"), keybind.WithHelp("end", "last column")),
		Top:      keybind.NewKeybind(keybind.WithKeys("g", "ctrl+home"), keybind.WithHelp("g", "first row")),
		Bottom:   keybind.NewKeybind(keybind.WithKeys("G", "ctrl+end"), keybind.WithHelp("G", "last row")),

		Edit:   keybind.NewKeybind(keybind.WithKeys("enter", "f2"), keybind.WithHelp("enter", "edit/expand")),
		Cancel: keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "cancel")),
		Toggle: keybind.NewKeybind(keybind.WithKeys("space"), keybind.WithHelp("space", "toggle")),
		Select: keybind.NewKeybind(keybind.WithKeys("x"), keybind.WithHelp("x", "select row")),
		Sort:   keybind.NewKeybind(keybind.WithKeys("s"), keybind.WithHelp("s", "sort")),
		Freeze: keybind.NewKeybind(keybind.WithKeys("f"), keybind.WithHelp("f", "freeze column")),
		Copy:   keybind.NewKeybind(keybind.WithKeys("y"), keybind.WithHelp("y", "copy cell")),

		DeleteSubRow: keybind.NewKeybind(keybind.WithKeys("delete"), keybind.WithHelp("del", "delete sub-row"), keybind.WithDisabled()),

		Narrow: keybind.NewKeybind(keybind.WithKeys("<"), keybind.WithHelp("<", "narrower")),
		Widen:  keybind.NewKeybind(keybind.WithKeys(">"), keybind.WithHelp(">", "wider")),
	}
}

func (k GridKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.Left, k.Right, k.Edit, k.Sort, k.Copy}
}

func (k GridKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End, k.Top, k.Bottom},
		{k.Edit, k.Cancel, k.Toggle, k.Select, k.DeleteSubRow},
		{k.Sort, k.Freeze, k.Copy, k.Narrow, k.Widen},
	}
}

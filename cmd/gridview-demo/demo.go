package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/ayn2op/gridview"
	"github.com/ayn2op/gridview/help"
	"github.com/ayn2op/gridview/keybind"
	"github.com/ayn2op/gridview/layers"
	"github.com/ayn2op/gridview/viewport"
	"github.com/gdamore/tcell/v2"
)

const (
	gridLayer    = "grid"
	barLayer     = "bar"
	helpLayer    = "help"
	messageLayer = "message"
)

// treeField is the column that shows the expander of parent records.
const treeField = "name"

// demoKeyMap adds the application keys to the grid's.
type demoKeyMap struct {
	gridview.GridKeyMap
	Help keybind.Keybind
	Quit keybind.Keybind
}

func newDemoKeyMap(gridKeyMap gridview.GridKeyMap) demoKeyMap {
	return demoKeyMap{
		GridKeyMap: gridKeyMap,
		Help:       keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
		Quit:       keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
}

// bindings returns the keybinds by their config name.
func (k *demoKeyMap) bindings() map[string]*keybind.Keybind {
	return map[string]*keybind.Keybind{
		"up":             &k.Up,
		"down":           &k.Down,
		"left":           &k.Left,
		"right":          &k.Right,
		"page_up":        &k.PageUp,
		"page_down":      &k.PageDown,
		"home":           &k.Home,
		"end":            &k.End,
		"top":            &k.Top,
		"bottom":         &k.Bottom,
		"edit":           &k.Edit,
		"cancel":         &k.Cancel,
		"toggle":         &k.Toggle,
		"select":         &k.Select,
		"sort":           &k.Sort,
		"freeze":         &k.Freeze,
		"copy":           &k.Copy,
		"delete_sub_row": &k.DeleteSubRow,
		"narrow":         &k.Narrow,
		"widen":          &k.Widen,
		"help":           &k.Help,
		"quit":           &k.Quit,
	}
}

// remap replaces the keys of the named bindings. The first key becomes the
// one shown in help.
func (k *demoKeyMap) remap(keys map[string][]string) error {
	bindings := k.bindings()
	for _, name := range slices.Sorted(maps.Keys(keys)) {
		kb, ok := bindings[name]
		if !ok {
			return fmt.Errorf("unknown key binding %q", name)
		}
		if len(keys[name]) == 0 {
			return fmt.Errorf("key binding %q has no keys", name)
		}
		kb.SetKeys(keys[name]...)
		if len(kb.Keys()) == 0 {
			return fmt.Errorf("key binding %q: invalid keys %q", name, keys[name])
		}
		kb.SetHelp(keys[name][0], kb.Help().Desc)
	}
	return nil
}

func (k demoKeyMap) ShortHelp() []keybind.Keybind {
	return append(k.GridKeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k demoKeyMap) FullHelp() [][]keybind.Keybind {
	return append(k.GridKeyMap.FullHelp(), []keybind.Keybind{k.Help, k.Quit})
}

// treeRows is the flattened record tree the grid shows.
type treeRows struct {
	rows []*record
}

func (t *treeRows) RowCount() int {
	return len(t.rows)
}

func (t *treeRows) Row(index int) any {
	if index < 0 || index >= len(t.rows) {
		return nil
	}
	return t.rows[index]
}

// message is a one-line notice shown over the grid.
type message struct {
	*gridview.Box
	text string
}

func newMessage() *message {
	m := &message{Box: gridview.NewBox()}
	m.SetBorders(gridview.BordersAll).
		SetBorderSet(gridview.BorderSetDouble()).
		SetTitle(" error ")
	m.SetBorderPadding(0, 0, 1, 1)
	return m
}

func (m *message) Draw(screen tcell.Screen) {
	m.DrawForSubclass(screen, m)
	defer m.MarkClean()
	x, y, width, _ := m.GetInnerRect()
	gridview.Print(screen, m.text, x, y, width, gridview.AlignmentLeft, gridview.Styles.PrimaryTextColor)
}

// demo is the root primitive: the grid above a help bar, with the full help
// and error messages as overlays.
type demo struct {
	*layers.Layers

	grid    *gridview.Grid
	message *message
	keyMap  demoKeyMap
	logger  *slog.Logger

	records  []*record
	rows     *treeRows
	selected []any
}

func newDemo(config *Config, records []*record, logger *slog.Logger) (*demo, error) {
	formatters, err := config.Formatters()
	if err != nil {
		return nil, err
	}

	d := &demo{
		records:  records,
		rows:     &treeRows{rows: flatten(records)},
		message:  newMessage(),
		selected: make([]any, 0),
		logger:   logger,
	}

	d.grid = gridview.NewGrid().
		SetColumns(config.GridColumns()).
		SetRows(d.rows).
		SetRowAccess(gridview.RowAccessKeyed).
		SetMinColumnWidth(config.MinColumnWidth).
		SetMultiSort(config.MultiSort).
		SetEnableCellSelect(true).
		SetScrollBarAutoHide(!config.AlwaysShowScrollBars).
		SetSelection(gridview.RowSelection{RowKey: "id", KeyValues: d.selected}).
		SetSubRowFunc(d.subRow).
		SetLogger(logger).
		SetSortFunc(d.sort).
		SetCellUpdateFunc(d.updateCell).
		SetCellsDraggedFunc(d.dragCells).
		SetCellExpandFunc(d.expand).
		SetDeleteSubRowFunc(d.deleteSubRow).
		SetRowSelectFunc(d.selectRow).
		SetColumnResizeFunc(func(index, width int) {
			logger.Info("column resized", "index", index, "width", width)
		}).
		SetSelectedFunc(func(rowIdx int, column viewport.Column) {
			logger.Debug("cell selected", "row", rowIdx, "column", column.Key)
		})
	for key, formatter := range formatters {
		d.grid.SetFormatter(key, formatter)
	}

	d.keyMap = newDemoKeyMap(d.grid.GetKeyMap())
	if err := d.keyMap.remap(config.Keys); err != nil {
		return nil, err
	}
	d.grid.SetKeyMap(d.keyMap.GridKeyMap)

	bar := help.New().SetKeyMap(d.keyMap).SetSeparator(config.Help.Separator)
	full := help.New().SetKeyMap(d.keyMap).SetShowAll(true).SetGap(config.Help.Gap)
	full.SetBorders(gridview.BordersAll).SetBorderSet(gridview.BorderSetRound()).SetTitle(" keys ")
	full.SetBorderPadding(0, 0, 1, 1)

	d.Layers = layers.New().
		AddLayer(d.grid, layers.WithName(gridLayer), layers.WithPlacement(layers.Top(1))).
		AddLayer(bar, layers.WithName(barLayer), layers.WithPlacement(layers.Bottom(1)), layers.WithEnabled(false)).
		AddLayer(full, layers.WithName(helpLayer), layers.WithPlacement(layers.Center(96, 10)), layers.WithOverlay(), layers.WithVisible(false)).
		AddLayer(d.message, layers.WithName(messageLayer), layers.WithPlacement(layers.Center(60, 3)), layers.WithOverlay(), layers.WithVisible(false))
	d.SetBackgroundStyleFunc(func(style tcell.Style) tcell.Style {
		return style.Dim(true).Bold(false)
	})
	return d, nil
}

// InputHandler handles the application keys before passing the event on.
func (d *demo) InputHandler(event *tcell.EventKey) gridview.Command {
	if d.grid.IsEditing() {
		return d.Layers.InputHandler(event)
	}

	switch {
	case keybind.Matches(event, d.keyMap.Quit):
		return gridview.QuitCommand{}
	case keybind.Matches(event, d.keyMap.Help):
		if d.GetVisible(helpLayer) {
			d.HideLayer(helpLayer)
		} else {
			d.showLayer(helpLayer)
		}
		return gridview.RedrawCommand{}
	case keybind.Matches(event, d.keyMap.Cancel):
		if name, _ := d.GetFrontLayer(); name == helpLayer || name == messageLayer {
			d.HideLayer(name)
			return gridview.RedrawCommand{}
		}
	}
	return d.Layers.InputHandler(event)
}

// showLayer shows an overlay in front of the others.
func (d *demo) showLayer(name string) {
	d.SendToFront(name).ShowLayer(name)
}

func (d *demo) showError(format string, args ...any) {
	d.message.text = fmt.Sprintf(format, args...)
	d.message.MarkDirty()
	d.showLayer(messageLayer)
}

func (d *demo) subRow(rowIdx int, row any) *gridview.SubRowDetails {
	r, ok := row.(*record)
	if !ok {
		return nil
	}
	if r.parent != nil {
		return &gridview.SubRowDetails{
			Field:          treeField,
			TreeDepth:      1,
			SiblingIndex:   slices.Index(r.parent.Children, r),
			NumberSiblings: len(r.parent.Children),
		}
	}
	if len(r.Children) == 0 {
		return nil
	}
	children := make([]any, len(r.Children))
	for i, child := range r.Children {
		children[i] = child
	}
	return &gridview.SubRowDetails{Field: treeField, Expanded: r.Expanded, Children: children}
}

// refresh rebuilds the visible rows after the tree changed.
func (d *demo) refresh() {
	d.rows.rows = flatten(d.records)
	d.grid.MarkDirty()
}

func (d *demo) sort(key string, direction gridview.SortDirection) {
	sortRecords(d.records, d.grid.GetSort())
	d.refresh()
	d.logger.Debug("rows sorted", "key", key, "direction", direction.String(), "columns", len(d.grid.GetSort()))
}

func (d *demo) expand(event gridview.CellExpandEvent) {
	r, ok := event.Row.(*record)
	if !ok {
		return
	}
	r.Expanded = !r.Expanded
	d.refresh()
}

func (d *demo) deleteSubRow(event gridview.SubRowDeleteEvent) {
	r, ok := event.Row.(*record)
	if !ok || r.parent == nil {
		return
	}
	parent, i := r.parent, event.Details.SiblingIndex
	if i < 0 || i >= len(parent.Children) || parent.Children[i] != r {
		d.logger.Warn("sub-row moved before delete", "id", r.ID)
		return
	}
	parent.Children = slices.Delete(parent.Children, i, i+1)
	if len(parent.Children) == 0 {
		parent.Expanded = false
	}
	d.selectRow(event.RowIdx, r, false)
	d.refresh()
	d.logger.Info("sub-row deleted", "id", r.ID, "parent", parent.ID, "left", event.Details.NumberSiblings-1)
}

func (d *demo) updateCell(rowIdx int, key string, value any) {
	if rowIdx < 0 || rowIdx >= len(d.rows.rows) {
		return
	}
	if err := d.rows.rows[rowIdx].Set(key, value); err != nil {
		d.logger.Warn("cell not updated", "row", rowIdx, "key", key, "err", err)
		d.showError("row %d: %v", rowIdx+1, err)
	}
}

func (d *demo) dragCells(event gridview.CellsDraggedEvent) {
	for _, key := range event.ToKeys {
		d.updateCell(event.RowIdx, key, event.Value)
	}
}

func (d *demo) selectRow(rowIdx int, row any, selected bool) {
	r, ok := row.(*record)
	if !ok {
		return
	}
	d.selected = slices.DeleteFunc(d.selected, func(id any) bool {
		return id == r.ID
	})
	if selected {
		d.selected = append(d.selected, r.ID)
	}
	d.grid.SetSelection(gridview.RowSelection{RowKey: "id", KeyValues: d.selected})
}

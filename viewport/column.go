package viewport

import (
	"regexp"
	"strconv"
	"strings"
)

type widthKind uint8

const (
	widthDeferred widthKind = iota
	widthCells
	widthPercent
)

// Width is the authored width of a column: a fixed number of cells, a
// percentage of the grid's total width, or unset (deferred). Deferred columns
// share whatever space is left after all other columns are resolved.
//
// The zero value is a deferred width.
type Width struct {
	kind  widthKind
	value int
}

// Cells returns a fixed width of n cells.
func Cells(n int) Width {
	return Width{kind: widthCells, value: n}
}

// Percent returns a width of p percent of the grid's total width.
func Percent(p int) Width {
	return Width{kind: widthPercent, value: p}
}

// Deferred returns an unset width.
func Deferred() Width {
	return Width{}
}

var percentWidth = regexp.MustCompile(`^([0-9]+)%$`)

// ParseWidth parses an authored width. "25%" is a percentage, "12" a fixed
// width. Anything else, including the empty string, is left unresolved and
// treated like a column without a width.
func ParseWidth(s string) Width {
	s = strings.TrimSpace(s)
	if m := percentWidth.FindStringSubmatch(s); m != nil {
		p, err := strconv.Atoi(m[1])
		if err == nil {
			return Percent(p)
		}
		return Deferred()
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Deferred()
	}
	return Cells(n)
}

// IsDeferred reports whether the width is unset.
func (w Width) IsDeferred() bool {
	return w.kind == widthDeferred
}

// IsPercent reports whether the width is relative to the total width.
func (w Width) IsPercent() bool {
	return w.kind == widthPercent
}

// Resolved returns the width in cells if it is fixed.
func (w Width) Resolved() (int, bool) {
	if w.kind != widthCells {
		return 0, false
	}
	return w.value, true
}

// Value returns the raw authored number: cells or percent. Deferred widths
// return 0.
func (w Width) Value() int {
	return w.value
}

func (w Width) String() string {
	switch w.kind {
	case widthCells:
		return strconv.Itoa(w.value)
	case widthPercent:
		return strconv.Itoa(w.value) + "%"
	}
	return "auto"
}

// cells returns the resolved width or 0.
func (w Width) cells() int {
	n, _ := w.Resolved()
	return n
}

// Column describes one grid column.
//
// Key is the stable identity of the column and must be unique within a column
// set. Left and Idx are derived by [Recalculate] and are overwritten on every
// recalculation; authored values are ignored.
//
// Column is comparable, so two descriptors are structurally equal exactly when
// a == b.
type Column struct {
	Key  string
	Name string

	Width    Width
	MinWidth int

	// Frozen pins the column to the leading edge of the grid. Locked is the
	// legacy spelling of the same flag.
	Frozen bool
	Locked bool

	Resizable  bool
	Sortable   bool
	Filterable bool
	Editable   bool

	// Draggable allows drag-filling values across cells of this column.
	Draggable bool

	SortDescendingFirst bool
	Hidden              bool

	// Left is the offset of the column from the canvas origin, in cells.
	Left int
	// Idx is the render position after the frozen-first partition.
	Idx int
}

// Cells returns the resolved width of the column, or 0 if it has not been
// resolved yet.
func (c Column) Cells() int {
	return c.Width.cells()
}

// Right returns the offset of the column's right edge.
func (c Column) Right() int {
	return c.Left + c.Cells()
}

// IsFrozen reports whether the column is pinned, either through Frozen or
// through the legacy Locked flag.
func IsFrozen(c Column) bool {
	return c.Frozen || c.Locked
}

// CanEdit reports whether cells of column c may be edited. A non-nil
// rowEditable overrides the column flag but still requires cell selection to
// be enabled.
func CanEdit(c Column, rowEditable func(Column) bool, enableCellSelect bool) bool {
	if !enableCellSelect {
		return false
	}
	if rowEditable != nil {
		return rowEditable(c)
	}
	return c.Editable
}

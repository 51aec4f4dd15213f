package gridview

import (
	"reflect"
	"strings"
)

// SelectRowKey is the column key whose value is the selection state of the
// row instead of a field of the row.
const SelectRowKey = "select-row"

// RowSource provides the rows of a grid by index. Rows are only requested
// for the range that is drawn, so a source may compute them lazily.
type RowSource interface {
	RowCount() int
	Row(index int) any
}

// RowSlice adapts a slice to RowSource.
type RowSlice[T any] []T

func (s RowSlice[T]) RowCount() int {
	return len(s)
}

func (s RowSlice[T]) Row(index int) any {
	if index < 0 || index >= len(s) {
		return nil
	}
	return s[index]
}

type rowFunc struct {
	count int
	get   func(index int) any
}

// RowFunc returns a RowSource of count rows produced by get.
func RowFunc(count int, get func(index int) any) RowSource {
	return rowFunc{count: max(count, 0), get: get}
}

func (f rowFunc) RowCount() int {
	return f.count
}

func (f rowFunc) Row(index int) any {
	if index < 0 || index >= f.count || f.get == nil {
		return nil
	}
	return f.get(index)
}

// Getter is implemented by rows that expose their fields through a method.
type Getter interface {
	Get(key string) any
}

// RowAccess selects how cell values are read from a row.
type RowAccess int

const (
	// RowAccessStructural reads map entries, or struct fields by their `grid`
	// tag or name.
	RowAccessStructural RowAccess = iota
	// RowAccessKeyed calls the row's Get method.
	RowAccessKeyed
)

// Value returns the value of key in row, or nil if the row has no such field.
func (a RowAccess) Value(row any, key string) any {
	if row == nil {
		return nil
	}
	if a == RowAccessKeyed {
		if g, ok := row.(Getter); ok {
			return g.Get(key)
		}
		return nil
	}

	switch r := row.(type) {
	case map[string]any:
		return r[key]
	case map[string]string:
		if v, ok := r[key]; ok {
			return v
		}
		return nil
	}
	return structField(row, key)
}

func structField(row any, key string) any {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		item := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !item.IsValid() {
			return nil
		}
		return item.Interface()
	case reflect.Struct:
	default:
		return nil
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("grid"), ",")
		if name == "-" {
			continue
		}
		if name == key || (name == "" && strings.EqualFold(field.Name, key)) {
			return v.Field(i).Interface()
		}
	}
	return nil
}

// SubRowDetails describes a row's place in a tree of rows.
type SubRowDetails struct {
	// Field is the key of the column that shows the expander.
	Field    string
	Expanded bool
	Children []any
	// Group marks rows that can be expanded without known children.
	Group     bool
	TreeDepth int

	SiblingIndex   int
	NumberSiblings int
}

// CanExpand reports whether the cell of column key shows an expander.
func (d *SubRowDetails) CanExpand(key string) bool {
	return d != nil && d.Field == key && (len(d.Children) > 0 || d.Group)
}

// IsChild reports whether the row is nested below another row.
func (d *SubRowDetails) IsChild() bool {
	return d != nil && d.TreeDepth > 0
}

// treePrefix returns the text drawn before the value of the expander
// column: indentation, a connector to the parent row, a delete glyph when
// deletable is set, and the expand state. deleteAt is the cell offset of the
// delete glyph, or -1.
func (d *SubRowDetails) treePrefix(deletable bool) (prefix string, deleteAt int) {
	deleteAt = -1
	if d == nil {
		return "", deleteAt
	}

	var b strings.Builder
	if d.IsChild() {
		b.WriteString(strings.Repeat("  ", d.TreeDepth-1))
		if d.SiblingIndex >= d.NumberSiblings-1 {
			b.WriteString(BoxDrawingsLightUpAndRight)
		} else {
			b.WriteString(BoxDrawingsLightVerticalAndRight)
		}
		b.WriteByte(' ')
		if deletable {
			deleteAt = StringWidth(b.String())
			b.WriteString(SemigraphicsDelete + " ")
		}
	}
	if len(d.Children) > 0 || d.Group {
		if d.Expanded {
			b.WriteString(SemigraphicsExpanded + " ")
		} else {
			b.WriteString(SemigraphicsCollapsed + " ")
		}
	}
	return b.String(), deleteAt
}

// SubRowFunc returns the tree details of a row, or nil for plain rows.
type SubRowFunc func(rowIdx int, row any) *SubRowDetails

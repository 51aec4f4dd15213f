package gridview

import (
	"reflect"
	"slices"
)

// RowSelection describes which rows are selected. The first mode that is set
// wins: Indexes, then RowKey with KeyValues, then IsSelectedKey.
type RowSelection struct {
	// Indexes lists selected row indexes.
	Indexes []int
	// RowKey names the field whose value identifies a row, KeyValues the
	// identifiers of the selected rows.
	RowKey    string
	KeyValues []any
	// IsSelectedKey names a boolean field of the row.
	IsSelectedKey string
}

// IsRowSelected reports whether the row at rowIdx is selected.
func IsRowSelected(selection RowSelection, access RowAccess, row any, rowIdx int) bool {
	switch {
	case selection.Indexes != nil:
		return slices.Contains(selection.Indexes, rowIdx)
	case selection.RowKey != "" && selection.KeyValues != nil:
		if row == nil {
			return false
		}
		value := access.Value(row, selection.RowKey)
		return slices.ContainsFunc(selection.KeyValues, func(v any) bool {
			return equalValues(v, value)
		})
	case selection.IsSelectedKey != "" && row != nil:
		selected, _ := access.Value(row, selection.IsSelectedKey).(bool)
		return selected
	}
	return false
}

// equalValues compares two values with == when their types allow it.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

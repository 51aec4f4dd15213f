package gridview

// SortDirection is the sort state of a column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ASC"
	case SortDescending:
		return "DESC"
	}
	return "NONE"
}

// NextSortDirection returns the direction a sortable header moves to when it
// is clicked: none, ascending, descending and back to none. Columns that sort
// descending first cycle the other way around.
func NextSortDirection(current SortDirection, descendingFirst bool) SortDirection {
	switch current {
	case SortAscending:
		if descendingFirst {
			return SortNone
		}
		return SortDescending
	case SortDescending:
		if descendingFirst {
			return SortAscending
		}
		return SortNone
	}
	if descendingFirst {
		return SortDescending
	}
	return SortAscending
}

// sortIndicator returns the glyph shown next to a sorted column name.
func sortIndicator(d SortDirection) string {
	switch d {
	case SortAscending:
		return SemigraphicsSortAscending
	case SortDescending:
		return SemigraphicsSortDescending
	}
	return ""
}

// SortColumn is one entry of a multi-column sort.
type SortColumn struct {
	Key       string
	Direction SortDirection
}

// SortColumnsEqual reports whether two multi-column sorts are the same, entry
// by entry. Two nil sorts are equal, a nil and an empty sort are not.
func SortColumnsEqual(a, b []SortColumn) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// directionOf returns the direction of key within sort.
func directionOf(sort []SortColumn, key string) SortDirection {
	for _, s := range sort {
		if s.Key == key {
			return s.Direction
		}
	}
	return SortNone
}

// withDirection returns a copy of sort in which key has direction d. Keys
// sorted by SortNone are removed, new keys are appended.
func withDirection(sort []SortColumn, key string, d SortDirection) []SortColumn {
	out := make([]SortColumn, 0, len(sort)+1)
	found := false
	for _, s := range sort {
		if s.Key != key {
			out = append(out, s)
			continue
		}
		found = true
		if d != SortNone {
			out = append(out, SortColumn{Key: key, Direction: d})
		}
	}
	if !found && d != SortNone {
		out = append(out, SortColumn{Key: key, Direction: d})
	}
	return out
}

package viewport

// FrozenBoundary describes the pinned region at the leading edge of the grid.
type FrozenBoundary struct {
	// LastFrozenIndex is the render index of the last frozen column, or -1.
	LastFrozenIndex int
	// FrozenWidth is the width of the frozen region in cells.
	FrozenWidth int
}

// FirstNonFrozenIndex returns the first render index outside the frozen
// region.
func (b FrozenBoundary) FirstNonFrozenIndex() int {
	return b.LastFrozenIndex + 1
}

// Boundary derives the frozen region of a recalculated column set.
func Boundary(columns []Column) FrozenBoundary {
	return FrozenBoundary{
		LastFrozenIndex: LastFrozenIndex(columns),
		FrozenWidth:     TotalFrozenWidth(columns),
	}
}

// LastFrozenIndex returns the highest index of a frozen column, or -1 if no
// column is frozen.
func LastFrozenIndex(columns []Column) int {
	index := -1
	for i, c := range columns {
		if IsFrozen(c) {
			index = i
		}
	}
	return index
}

// TotalFrozenWidth returns the right edge of the last frozen column, or 0.
func TotalFrozenWidth(columns []Column) int {
	if i := LastFrozenIndex(columns); i > -1 {
		return columns[i].Right()
	}
	return 0
}

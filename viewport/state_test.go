package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	m, err := Recalculate(Metrics{Columns: fixedColumns(5, 100, 0, 1), TotalWidth: 500, MinColumnWidth: 50})
	require.NoError(t, err)

	s := InitialState(m, 1000, 1, 20, 1)
	assert.Equal(t, Range{0, 19, 0, 38}, s.Rows)
	assert.Equal(t, Range{2, 5, 2, 5}, s.Columns)
	assert.Equal(t, FrozenBoundary{LastFrozenIndex: 1, FrozenWidth: 200}, s.Frozen)
	assert.Equal(t, DirectionNone, s.Direction)
	assert.Equal(t, 19, s.Height)
	assert.Equal(t, 500, s.Width)
}

func TestInitialStateFewRows(t *testing.T) {
	m, err := Recalculate(Metrics{Columns: fixedColumns(2, 10), TotalWidth: 20})
	require.NoError(t, err)

	s := InitialState(m, 3, 1, 20, 1)
	assert.Equal(t, Range{0, 3, 0, 3}, s.Rows)
	// Without a minimum column width every column is assumed visible.
	assert.Equal(t, Range{0, 2, 0, 2}, s.Columns)
}

func TestViewportUpdate(t *testing.T) {
	m := frozenMetrics(t)
	in := Input{Metrics: m, RowCount: 100, RowHeight: 1, Width: 300, Height: 10}

	var v Viewport
	s, err := v.Update(in)
	require.NoError(t, err)
	assert.Equal(t, DirectionNone, s.Direction)
	assert.Equal(t, Range{0, 10, 0, 10}, s.Rows)
	assert.Equal(t, Range{2, 4, 2, 4}, s.Columns)
	assert.Equal(t, 1, s.Frozen.LastFrozenIndex)

	in.ScrollTop = 5
	s, err = v.Update(in)
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, s.Direction)
	assert.Equal(t, Range{5, 15, 5, 17}, s.Rows)
	assert.Equal(t, Range{2, 4, 2, 4}, s.Columns)

	in.ScrollLeft = 100
	s, err = v.Update(in)
	require.NoError(t, err)
	assert.Equal(t, DirectionRight, s.Direction)
	assert.Equal(t, Range{5, 15, 5, 15}, s.Rows)
	assert.Equal(t, Range{2, 5, 2, 5}, s.Columns)

	in.ScrollLeft = 0
	s, err = v.Update(in)
	require.NoError(t, err)
	assert.Equal(t, DirectionLeft, s.Direction)
	assert.Equal(t, Range{2, 4, 2, 4}, s.Columns)
}

func TestViewportUpdateFallsBackToLastWidth(t *testing.T) {
	m := frozenMetrics(t)
	var v Viewport

	_, err := v.Update(Input{Metrics: m, RowCount: 10, RowHeight: 1, Width: 300, Height: 5})
	require.NoError(t, err)

	s, err := v.Update(Input{Metrics: m, RowCount: 10, RowHeight: 1, Width: 0, Height: 5})
	require.NoError(t, err)
	assert.Equal(t, 300, s.Width)
	assert.Equal(t, Range{2, 4, 2, 4}, s.Columns)
}

func TestViewportUpdateErrorKeepsScroll(t *testing.T) {
	m := frozenMetrics(t)
	var v Viewport

	_, err := v.Update(Input{Metrics: m, RowCount: 100, RowHeight: 1, Width: 300, Height: 10, ScrollTop: 5})
	require.NoError(t, err)

	_, err = v.Update(Input{Metrics: m, RowCount: 100, RowHeight: 0, Width: 300, Height: 10, ScrollTop: 20})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 5, v.Scroll().ScrollTop)

	s, err := v.Update(Input{Metrics: m, RowCount: 100, RowHeight: 1, Width: 300, Height: 10, ScrollTop: 5})
	require.NoError(t, err)
	assert.Equal(t, DirectionNone, s.Direction)
}

func TestViewportReset(t *testing.T) {
	m := frozenMetrics(t)
	var v Viewport

	in := Input{Metrics: m, RowCount: 100, RowHeight: 1, Width: 300, Height: 10}
	_, err := v.Update(in)
	require.NoError(t, err)

	v.Reset()
	in.ScrollTop = 50
	s, err := v.Update(in)
	require.NoError(t, err)
	assert.Equal(t, DirectionNone, s.Direction)
}

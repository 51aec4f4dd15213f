package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedColumns(n, width int, frozen ...int) []Column {
	columns := make([]Column, n)
	for i := range columns {
		columns[i] = Column{Key: string(rune('a' + i)), Width: Cells(width)}
	}
	for _, i := range frozen {
		columns[i].Frozen = true
	}
	return columns
}

func widths(columns []Column) []int {
	out := make([]int, len(columns))
	for i, c := range columns {
		out[i] = c.Cells()
	}
	return out
}

func lefts(columns []Column) []int {
	out := make([]int, len(columns))
	for i, c := range columns {
		out[i] = c.Left
	}
	return out
}

func keys(columns []Column) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Key
	}
	return out
}

func TestRecalculatePercentWidths(t *testing.T) {
	m, err := Recalculate(Metrics{
		Columns: []Column{
			{Key: "a", Width: Percent(50)},
			{Key: "b", Width: Percent(50)},
		},
		TotalWidth: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{500, 500}, widths(m.Columns))
	assert.Equal(t, []int{0, 500}, lefts(m.Columns))
	assert.Equal(t, 1000, m.TotalColumnWidth)
	assert.Equal(t, 1000, m.Width)
}

func TestRecalculatePercentFloors(t *testing.T) {
	m, err := Recalculate(Metrics{
		Columns:    []Column{{Key: "a", Width: Percent(33)}},
		TotalWidth: 101,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{33}, widths(m.Columns))
}

func TestRecalculateDeferredShare(t *testing.T) {
	m, err := Recalculate(Metrics{
		Columns:    []Column{{Key: "a"}, {Key: "b"}, {Key: "c"}},
		TotalWidth: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{100, 100, 100}, widths(m.Columns))
	assert.Equal(t, []int{0, 100, 200}, lefts(m.Columns))
	assert.Equal(t, 300, m.TotalColumnWidth)
	assert.Equal(t, 0, m.Width)
}

func TestRecalculateDeferredReservesScrollbar(t *testing.T) {
	m, err := Recalculate(Metrics{
		Columns:        []Column{{Key: "a", Width: Cells(100)}, {Key: "b"}, {Key: "c"}},
		TotalWidth:     500,
		ScrollbarWidth: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{100, 199, 199}, widths(m.Columns))
}

func TestRecalculateDeferredMinimum(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		total   int
		want    []int
	}{
		{
			name:    "share below minimum",
			columns: []Column{{Key: "a"}, {Key: "b"}, {Key: "c"}},
			total:   100,
			want:    []int{50, 50, 50},
		},
		{
			name:    "no space left",
			columns: []Column{{Key: "a", Width: Cells(400)}, {Key: "b"}},
			total:   300,
			want:    []int{400, 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Recalculate(Metrics{Columns: tt.columns, TotalWidth: tt.total, MinColumnWidth: 50})
			require.NoError(t, err)
			assert.Equal(t, tt.want, widths(m.Columns))
		})
	}
}

func TestRecalculateZeroWidthCountsAsDeferred(t *testing.T) {
	m, err := Recalculate(Metrics{
		Columns:    []Column{{Key: "a", Width: Cells(0)}, {Key: "b"}},
		TotalWidth: 100,
	})
	require.NoError(t, err)
	// The zero-width column keeps its width but takes a share of the
	// denominator.
	assert.Equal(t, []int{0, 50}, widths(m.Columns))
}

func TestRecalculateFrozenFirst(t *testing.T) {
	m, err := Recalculate(Metrics{
		Columns: []Column{
			{Key: "a", Width: Cells(100)},
			{Key: "b", Width: Cells(100), Frozen: true},
			{Key: "c", Width: Cells(100)},
			{Key: "d", Width: Cells(100), Locked: true},
		},
		TotalWidth: 400,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "d", "a", "c"}, keys(m.Columns))
	for i, c := range m.Columns {
		assert.Equal(t, i, c.Idx)
	}
	// Left offsets follow authored order, not render order.
	assert.Equal(t, []int{100, 300, 0, 200}, lefts(m.Columns))
}

func TestRecalculatePreservesRelativeOrder(t *testing.T) {
	m, err := Recalculate(Metrics{Columns: fixedColumns(6, 10, 1, 4), TotalWidth: 60})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "e", "a", "c", "d", "f"}, keys(m.Columns))
}

func TestRecalculateDoesNotMutateInput(t *testing.T) {
	columns := []Column{{Key: "a"}, {Key: "b", Width: Percent(50), Frozen: true}}
	in := Metrics{Columns: columns, TotalWidth: 200}
	_, err := Recalculate(in)
	require.NoError(t, err)

	assert.True(t, columns[0].Width.IsDeferred())
	assert.True(t, columns[1].Width.IsPercent())
	assert.Equal(t, "a", columns[0].Key)
}

func TestRecalculateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Metrics
		want error
	}{
		{"negative total", Metrics{TotalWidth: -1}, ErrInvalidInput},
		{"negative minimum", Metrics{MinColumnWidth: -1}, ErrInvalidInput},
		{"negative scrollbar", Metrics{ScrollbarWidth: -1}, ErrInvalidInput},
		{"duplicate key", Metrics{Columns: []Column{{Key: "a"}, {Key: "a"}}}, ErrDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Recalculate(tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMetricsColumn(t *testing.T) {
	m, err := Recalculate(Metrics{Columns: fixedColumns(3, 10, 2), TotalWidth: 30})
	require.NoError(t, err)

	c, i, ok := m.Column("c")
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "c", c.Key)

	_, i, ok = m.Column("z")
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestResizeColumn(t *testing.T) {
	m, err := Recalculate(Metrics{Columns: fixedColumns(3, 100), TotalWidth: 300, MinColumnWidth: 20})
	require.NoError(t, err)

	resized, err := ResizeColumn(m, 1, 150)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 150, 100}, widths(resized.Columns))
	assert.Equal(t, []int{0, 100, 250}, lefts(resized.Columns))
	assert.Equal(t, 350, resized.TotalColumnWidth)

	// The original snapshot is untouched.
	assert.Equal(t, []int{100, 100, 100}, widths(m.Columns))
}

func TestResizeColumnClampsToMinimum(t *testing.T) {
	m, err := Recalculate(Metrics{Columns: fixedColumns(2, 100), TotalWidth: 200, MinColumnWidth: 20})
	require.NoError(t, err)

	resized, err := ResizeColumn(m, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 20, resized.Columns[0].Cells())
}

func TestResizeColumnOutOfRange(t *testing.T) {
	m, err := Recalculate(Metrics{Columns: fixedColumns(2, 100), TotalWidth: 200})
	require.NoError(t, err)

	_, err = ResizeColumn(m, 2, 50)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = ResizeColumn(m, -1, 50)
	require.ErrorIs(t, err, ErrInvalidInput)
}

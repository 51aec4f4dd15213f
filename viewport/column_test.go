package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in   string
		want Width
	}{
		{"25%", Percent(25)},
		{" 100% ", Percent(100)},
		{"12", Cells(12)},
		{"0", Cells(0)},
		{"", Deferred()},
		{"auto", Deferred()},
		{"-3", Deferred()},
		{"12.5%", Deferred()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWidth(tt.in))
		})
	}
}

func TestWidthString(t *testing.T) {
	assert.Equal(t, "12", Cells(12).String())
	assert.Equal(t, "30%", Percent(30).String())
	assert.Equal(t, "auto", Deferred().String())
}

func TestWidthResolved(t *testing.T) {
	n, ok := Cells(7).Resolved()
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = Percent(7).Resolved()
	assert.False(t, ok)
	_, ok = Width{}.Resolved()
	assert.False(t, ok)
}

func TestIsFrozen(t *testing.T) {
	assert.False(t, IsFrozen(Column{}))
	assert.True(t, IsFrozen(Column{Frozen: true}))
	assert.True(t, IsFrozen(Column{Locked: true}))
}

func TestCanEdit(t *testing.T) {
	editable := Column{Key: "a", Editable: true}
	plain := Column{Key: "b"}
	always := func(Column) bool { return true }
	never := func(Column) bool { return false }

	tests := []struct {
		name       string
		column     Column
		rowEdit    func(Column) bool
		cellSelect bool
		want       bool
	}{
		{"cell select disabled", editable, nil, false, false},
		{"column flag", editable, nil, true, true},
		{"column not editable", plain, nil, true, false},
		{"row override allows", plain, always, true, true},
		{"row override denies", editable, never, true, false},
		{"row override needs cell select", plain, always, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.column, tt.rowEdit, tt.cellSelect))
		})
	}
}

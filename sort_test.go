package gridview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSortDirection(t *testing.T) {
	tests := []struct {
		current         SortDirection
		descendingFirst bool
		want            SortDirection
	}{
		{SortNone, false, SortAscending},
		{SortAscending, false, SortDescending},
		{SortDescending, false, SortNone},
		{SortNone, true, SortDescending},
		{SortDescending, true, SortAscending},
		{SortAscending, true, SortNone},
	}
	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, NextSortDirection(tt.current, tt.descendingFirst))
		})
	}
}

func TestSortColumnsEqual(t *testing.T) {
	a := []SortColumn{{Key: "name", Direction: SortAscending}}

	assert.True(t, SortColumnsEqual(nil, nil))
	assert.True(t, SortColumnsEqual(a, []SortColumn{{Key: "name", Direction: SortAscending}}))
	assert.False(t, SortColumnsEqual(a, []SortColumn{{Key: "name", Direction: SortDescending}}))
	assert.False(t, SortColumnsEqual(nil, []SortColumn{}))
	assert.False(t, SortColumnsEqual(a, nil))
}

func TestWithDirection(t *testing.T) {
	sort := withDirection(nil, "a", SortAscending)
	sort = withDirection(sort, "b", SortDescending)
	assert.Equal(t, []SortColumn{{"a", SortAscending}, {"b", SortDescending}}, sort)

	sort = withDirection(sort, "a", SortDescending)
	assert.Equal(t, []SortColumn{{"a", SortDescending}, {"b", SortDescending}}, sort)
	assert.Equal(t, SortDescending, directionOf(sort, "a"))

	sort = withDirection(sort, "a", SortNone)
	assert.Equal(t, []SortColumn{{"b", SortDescending}}, sort)
	assert.Equal(t, SortNone, directionOf(sort, "a"))
}

package gridview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type product struct {
	ID    string `grid:"id"`
	Price float64
	Skip  string `grid:"-"`
	stock int
}

type keyedRow map[string]int

func (r keyedRow) Get(key string) any {
	return r[key] * 2
}

func TestRowAccessStructural(t *testing.T) {
	a := RowAccessStructural
	p := product{ID: "p1", Price: 2.5, Skip: "x", stock: 3}

	assert.Equal(t, "p1", a.Value(p, "id"))
	assert.Equal(t, 2.5, a.Value(p, "price"))
	assert.Equal(t, 2.5, a.Value(&p, "Price"))
	assert.Nil(t, a.Value(p, "skip"))
	assert.Nil(t, a.Value(p, "stock"))
	assert.Nil(t, a.Value((*product)(nil), "id"))

	assert.Equal(t, 1, a.Value(map[string]any{"n": 1}, "n"))
	assert.Equal(t, "v", a.Value(map[string]string{"k": "v"}, "k"))
	assert.Nil(t, a.Value(map[string]string{}, "k"))
	assert.Equal(t, 3, a.Value(keyedRow{"n": 3}, "n"))
	assert.Nil(t, a.Value(map[int]string{1: "x"}, "1"))
	assert.Nil(t, a.Value(nil, "n"))
	assert.Nil(t, a.Value(42, "n"))
}

func TestRowAccessKeyed(t *testing.T) {
	a := RowAccessKeyed
	assert.Equal(t, 6, a.Value(keyedRow{"n": 3}, "n"))
	assert.Nil(t, a.Value(map[string]any{"n": 1}, "n"))
}

func TestRowSources(t *testing.T) {
	s := RowSlice[string]{"a", "b"}
	assert.Equal(t, 2, s.RowCount())
	assert.Equal(t, "b", s.Row(1))
	assert.Nil(t, s.Row(2))

	f := RowFunc(3, func(index int) any { return index * index })
	assert.Equal(t, 3, f.RowCount())
	assert.Equal(t, 4, f.Row(2))
	assert.Nil(t, f.Row(-1))
	assert.Nil(t, f.Row(3))

	assert.Equal(t, 0, RowFunc(-1, nil).RowCount())
}

func TestSubRowDetailsCanExpand(t *testing.T) {
	var none *SubRowDetails
	assert.False(t, none.CanExpand("name"))

	d := &SubRowDetails{Field: "name", Children: []any{1}}
	assert.True(t, d.CanExpand("name"))
	assert.False(t, d.CanExpand("id"))

	d = &SubRowDetails{Field: "name"}
	assert.False(t, d.CanExpand("name"))
	d.Group = true
	assert.True(t, d.CanExpand("name"))
}

package main

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/ayn2op/gridview"
	"github.com/google/uuid"
)

var (
	adjectives = []string{"red", "quiet", "brisk", "hollow", "amber", "swift", "plain", "lucid"}
	nouns      = []string{"widget", "sprocket", "lantern", "gasket", "spindle", "bracket", "valve", "coil"}
)

// record is one row of the demo grid. Records with children are tree
// parents, children are one level deep.
type record struct {
	Seq    int
	ID     string
	Name   string
	Qty    int
	Price  float64
	Active bool
	Note   string

	Children []*record
	Expanded bool

	parent *record
	// sub is the generated position among the siblings.
	sub int
}

// Get implements gridview.Getter.
func (r *record) Get(key string) any {
	switch key {
	case "seq":
		return r.Seq
	case "id":
		return r.ID
	case "name":
		return r.Name
	case "qty":
		return r.Qty
	case "price":
		return r.Price
	case "active":
		return r.Active
	case "note":
		return r.Note
	}
	return nil
}

// Set stores value in the field named key, converting it to the field's
// type.
func (r *record) Set(key string, value any) error {
	text := strings.TrimSpace(fmt.Sprint(value))
	switch key {
	case "name":
		r.Name = fmt.Sprint(value)
	case "note":
		r.Note = fmt.Sprint(value)
	case "qty":
		qty, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("qty: %w", err)
		}
		r.Qty = qty
	case "price":
		price, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("price: %w", err)
		}
		r.Price = price
	case "active":
		active, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("active: %w", err)
		}
		r.Active = active
	default:
		return fmt.Errorf("field %q is read-only", key)
	}
	return nil
}

// parentEvery makes every parentEvery-th record, starting with the fourth, a
// tree parent.
const parentEvery = 10

// newRecords returns n generated top-level records. The same seed yields the
// same records, IDs included.
func newRecords(n int, seed uint64) []*record {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)
	rng := rand.New(src)

	generate := func(seq int) *record {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			// ChaCha8 reads never fail.
			panic(err)
		}
		return &record{
			Seq:    seq,
			ID:     id.String(),
			Name:   adjectives[rng.IntN(len(adjectives))] + " " + nouns[rng.IntN(len(nouns))],
			Qty:    rng.IntN(5000),
			Price:  float64(rng.IntN(1_000_000)) / 100,
			Active: rng.IntN(2) == 0,
		}
	}

	records := make([]*record, n)
	for i := range records {
		r := generate(i + 1)
		if i%parentEvery == 3 {
			r.Children = make([]*record, 1+rng.IntN(3))
			for j := range r.Children {
				child := generate(r.Seq)
				child.parent, child.sub = r, j+1
				r.Children[j] = child
			}
		}
		records[i] = r
	}
	return records
}

// sortRecords orders records, and the children of each, by the sort columns
// in priority order. Ties and an empty sort fall back to the generated
// order.
func sortRecords(records []*record, sort []gridview.SortColumn) {
	compare := func(a, b *record) int {
		for _, s := range sort {
			c := compareValues(a.Get(s.Key), b.Get(s.Key))
			switch s.Direction {
			case gridview.SortNone:
				continue
			case gridview.SortDescending:
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Or(cmp.Compare(a.Seq, b.Seq), cmp.Compare(a.sub, b.sub))
	}
	slices.SortFunc(records, compare)
	for _, r := range records {
		slices.SortFunc(r.Children, compare)
	}
}

// flatten returns the records as shown in the grid: every record followed
// by its children when it is expanded.
func flatten(records []*record) []*record {
	rows := make([]*record, 0, len(records))
	for _, r := range records {
		rows = append(rows, r)
		if r.Expanded {
			rows = append(rows, r.Children...)
		}
	}
	return rows
}

func compareValues(a, b any) int {
	switch a := a.(type) {
	case int:
		b, _ := b.(int)
		return cmp.Compare(a, b)
	case float64:
		b, _ := b.(float64)
		return cmp.Compare(a, b)
	case string:
		b, _ := b.(string)
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	case bool:
		b, _ := b.(bool)
		switch {
		case a == b:
			return 0
		case !a:
			return -1
		}
		return 1
	}
	return 0
}

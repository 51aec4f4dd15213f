package viewport

import "errors"

var (
	// ErrInvalidInput is returned when an argument can not produce a
	// consistent layout, e.g. a column index out of range or a non-positive
	// row height.
	ErrInvalidInput = errors.New("viewport: invalid input")

	// ErrDuplicateKey is returned when two columns of the same set share a
	// key. Ordering is undefined for such sets so they are rejected.
	ErrDuplicateKey = errors.New("viewport: duplicate column key")
)

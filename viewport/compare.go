package viewport

// SameColumn reports whether two descriptors are structurally identical.
func SameColumn(a, b Column) bool {
	return a == b
}

// SameColumns reports whether prev and next describe the same column set:
// equal length, every key present on both sides and same(prev, next) true for
// each pair. Order is not significant.
//
// Column sets with repeated keys are rejected with [ErrDuplicateKey].
func SameColumns(prev, next []Column, same func(a, b Column) bool) (bool, error) {
	prevByKey, err := indexByKey(prev)
	if err != nil {
		return false, err
	}
	nextByKey, err := indexByKey(next)
	if err != nil {
		return false, err
	}
	if len(prev) != len(next) {
		return false, nil
	}

	for _, column := range next {
		p, ok := prevByKey[column.Key]
		if !ok || !same(p, column) {
			return false, nil
		}
	}
	for _, column := range prev {
		if _, ok := nextByKey[column.Key]; !ok {
			return false, nil
		}
	}
	return true, nil
}

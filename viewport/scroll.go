package viewport

// Direction is the discrete direction of the last scroll movement.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "upwards"
	case DirectionDown:
		return "downwards"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// ClassifyScroll classifies the movement from the previous to the current
// scroll offsets. Vertical movement takes priority over horizontal movement.
func ClassifyScroll(prevTop, prevLeft, top, left int) Direction {
	if top != prevTop {
		if top-prevTop >= 0 {
			return DirectionDown
		}
		return DirectionUp
	}
	if left != prevLeft {
		if left-prevLeft >= 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	return DirectionNone
}

// ScrollState holds the current scroll offsets and the offsets of exactly one
// tick before.
type ScrollState struct {
	ScrollTop      int
	ScrollLeft     int
	LastScrollTop  int
	LastScrollLeft int

	// hasLast is false until the first offsets were recorded.
	hasLast bool
}

// Advance records new offsets and classifies the movement. The first call
// after construction always yields [DirectionNone].
func (s ScrollState) Advance(top, left int) (Direction, ScrollState) {
	direction := DirectionNone
	if s.hasLast {
		direction = ClassifyScroll(s.ScrollTop, s.ScrollLeft, top, left)
	}
	next := ScrollState{
		ScrollTop:      top,
		ScrollLeft:     left,
		LastScrollTop:  s.ScrollTop,
		LastScrollLeft: s.ScrollLeft,
		hasLast:        true,
	}
	return direction, next
}

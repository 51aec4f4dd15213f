package gridview

// Semigraphics used by boxes and grids. Strings with \u escapes keep the
// source ASCII-safe.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal        = "\u2500" // ─
	BoxDrawingsLightVertical          = "\u2502" // │
	BoxDrawingsLightDownAndRight      = "\u250c" // ┌
	BoxDrawingsLightDownAndLeft       = "\u2510" // ┐
	BoxDrawingsLightUpAndRight        = "\u2514" // └
	BoxDrawingsLightUpAndLeft         = "\u2518" // ┘
	BoxDrawingsLightVerticalAndRight  = "\u251c" // ├
	BoxDrawingsLightVerticalAndLeft   = "\u2524" // ┤
	BoxDrawingsLightDownAndHorizontal = "\u252c" // ┬
	BoxDrawingsLightUpAndHorizontal   = "\u2534" // ┴
	BoxDrawingsLightArcDownAndRight   = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft    = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft      = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight     = "\u2570" // ╰

	BoxDrawingsDoubleHorizontal   = "\u2550" // ═
	BoxDrawingsDoubleVertical     = "\u2551" // ║
	BoxDrawingsDoubleDownAndRight = "\u2554" // ╔
	BoxDrawingsDoubleDownAndLeft  = "\u2557" // ╗
	BoxDrawingsDoubleUpAndRight   = "\u255a" // ╚
	BoxDrawingsDoubleUpAndLeft    = "\u255d" // ╝

	SemigraphicsSortAscending  = "\u25b2" // ▲
	SemigraphicsSortDescending = "\u25bc" // ▼
	SemigraphicsCollapsed      = "\u25b6" // ▶
	SemigraphicsExpanded       = "\u25bc" // ▼
	SemigraphicsCheckboxOff    = "\u2610" // ☐
	SemigraphicsCheckboxOn     = "\u2611" // ☑
	SemigraphicsDelete         = "\u2715" // ✕
)

// BorderSet defines the glyphs used when box frames are drawn.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// BorderSetPlain returns light single-line borders.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

// BorderSetRound returns light borders with rounded corners.
func BorderSetRound() BorderSet {
	b := BorderSetPlain()
	b.TopLeft = BoxDrawingsLightArcDownAndRight
	b.TopRight = BoxDrawingsLightArcDownAndLeft
	b.BottomLeft = BoxDrawingsLightArcUpAndRight
	b.BottomRight = BoxDrawingsLightArcUpAndLeft
	return b
}

// BorderSetDouble returns double-line borders.
func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsDoubleHorizontal,
		Bottom:      BoxDrawingsDoubleHorizontal,
		Left:        BoxDrawingsDoubleVertical,
		Right:       BoxDrawingsDoubleVertical,
		TopLeft:     BoxDrawingsDoubleDownAndRight,
		TopRight:    BoxDrawingsDoubleDownAndLeft,
		BottomLeft:  BoxDrawingsDoubleUpAndRight,
		BottomRight: BoxDrawingsDoubleUpAndLeft,
	}
}

// Borders is a set of box edges.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether any of the edges in flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}

package gridview

import "github.com/gdamore/tcell/v2"

// Orientation is the axis a scroll bar travels along.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// ScrollBarArrows controls which endcaps are rendered.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

// TrackClickBehavior configures behavior when clicking scroll bar track cells
// outside the thumb.
type TrackClickBehavior uint8

const (
	TrackClickBehaviorPage TrackClickBehavior = iota
	TrackClickBehaviorJumpToClick
)

// ScrollLengths bundles content and viewport lengths in logical units: rows
// for a vertical bar, cells for a horizontal one.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// GlyphSet defines track, arrow, and fractional thumb glyphs for both axes.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	ArrowVerticalStart   string
	ArrowVerticalEnd     string
	ArrowHorizontalStart string
	ArrowHorizontalEnd   string

	// Thumb glyphs indexed by the number of covered eighths minus one.
	ThumbVerticalLower   [8]string
	ThumbVerticalUpper   [8]string
	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional thumbs).
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8 fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ArrowVerticalStart:   "▲",
		ArrowVerticalEnd:     "▼",
		ArrowHorizontalStart: "◀",
		ArrowHorizontalEnd:   "▶",

		ThumbVerticalLower:   [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper:   [8]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},
		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.ThumbVerticalUpper = [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"}
	g.ThumbHorizontalRight = [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"}
	return g
}

// ScrollBar renders a vertical or horizontal scroll bar with a thumb that
// moves in 1/8-cell steps.
type ScrollBar struct {
	*Box

	orientation Orientation

	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style

	glyphSet GlyphSet
	arrows   ScrollBarArrows

	trackClickBehavior TrackClickBehavior
	scrollStep         int
}

// NewScrollBar returns a new scroll bar along the given axis.
func NewScrollBar(orientation Orientation) *ScrollBar {
	return &ScrollBar{
		Box:                NewBox(),
		orientation:        orientation,
		autoHide:           true,
		trackStyle:         tcell.StyleDefault.Dim(true),
		thumbStyle:         tcell.StyleDefault,
		arrowStyle:         tcell.StyleDefault.Dim(true),
		glyphSet:           MinimalGlyphSet(),
		arrows:             ScrollBarArrowsNone,
		trackClickBehavior: TrackClickBehaviorPage,
		scrollStep:         1,
	}
}

// Orientation returns the axis of the scroll bar.
func (s *ScrollBar) Orientation() Orientation {
	return s.orientation
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	contentLen, viewportLen := max(lengths.ContentLen, 0), max(lengths.ViewportLen, 0)
	if s.contentLen != contentLen || s.viewportLen != viewportLen {
		s.contentLen, s.viewportLen = contentLen, viewportLen
		s.MarkDirty()
	}
	return s
}

// SetOffset sets the logical offset.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	offset = max(offset, 0)
	if s.offset != offset {
		s.offset = offset
		s.MarkDirty()
	}
	return s
}

// GetOffset returns the logical offset.
func (s *ScrollBar) GetOffset() int {
	return s.offset
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	s.MarkDirty()
	return s
}

// SetArrows sets which arrow endcaps are rendered.
func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	if s.arrows != arrows {
		s.arrows = arrows
		s.MarkDirty()
	}
	return s
}

// SetTrackClickBehavior sets behavior used for track clicks.
func (s *ScrollBar) SetTrackClickBehavior(behavior TrackClickBehavior) *ScrollBar {
	s.trackClickBehavior = behavior
	return s
}

// SetScrollStep sets the scroll step used by arrow clicks.
func (s *ScrollBar) SetScrollStep(step int) *ScrollBar {
	s.scrollStep = max(step, 1)
	return s
}

// SetAutoHide controls whether the scroll bar is hidden when there is nothing to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	if s.autoHide != autoHide {
		s.autoHide = autoHide
		s.MarkDirty()
	}
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	if s.thumbStyle != style {
		s.thumbStyle = style
		s.MarkDirty()
	}
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	if s.trackStyle != style {
		s.trackStyle = style
		s.MarkDirty()
	}
	return s
}

// SetArrowStyle sets the arrow endcap style.
func (s *ScrollBar) SetArrowStyle(style tcell.Style) *ScrollBar {
	if s.arrowStyle != style {
		s.arrowStyle = style
		s.MarkDirty()
	}
	return s
}

// length returns the number of cells along the bar's axis.
func (s *ScrollBar) length() int {
	_, _, width, height := s.GetInnerRect()
	if s.orientation == Horizontal {
		return width
	}
	return height
}

func (s *ScrollBar) arrowCount() int {
	arrows := 0
	if s.arrows.hasStart() {
		arrows++
	}
	if s.arrows.hasEnd() {
		arrows++
	}
	return arrows
}

func (s *ScrollBar) viewportLength(length int) int {
	if s.viewportLen > 0 {
		return s.viewportLen
	}
	return max(length, 0)
}

func (s *ScrollBar) maxOffset(length int) int {
	contentLen := max(s.contentLen, 1)
	viewportLen := min(max(s.viewportLength(length), 1), contentLen)
	return max(contentLen-viewportLen, 0)
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// metrics computes scroll bar geometry in subcell units.
func (s *ScrollBar) metrics(length int) scrollMetrics {
	trackCells := max(length-s.arrowCount(), 0)
	return computeScrollMetrics(trackCells, s.contentLen, s.viewportLength(length), s.offset)
}

func computeScrollMetrics(trackCells int, contentLen int, viewportLen int, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen <= 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	// The thumb stays proportional to viewport/content and moves in 1/8-cell steps.
	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func (s *ScrollBar) shouldDraw(length int, m scrollMetrics) bool {
	if length <= 0 || m.trackLen == 0 || s.contentLen <= 0 {
		return false
	}
	return !s.autoHide || s.maxOffset(length) > 0
}

// cellFill returns the cell-local subcell coverage [start, start+fillLen) of
// the thumb in the given track cell.
func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyph(start, fillLen int) (string, tcell.Style) {
	horizontal := s.orientation == Horizontal
	if fillLen <= 0 {
		if horizontal {
			return s.glyphSet.TrackHorizontal, s.trackStyle
		}
		return s.glyphSet.TrackVertical, s.trackStyle
	}

	ix := min(fillLen, subcell) - 1
	// A thumb that starts at the cell's leading edge fills it from the top
	// (or left), otherwise it ends at the trailing edge.
	leading := start == 0 && fillLen < subcell
	switch {
	case horizontal && leading:
		return s.glyphSet.ThumbHorizontalLeft[ix], s.thumbStyle
	case horizontal:
		return s.glyphSet.ThumbHorizontalRight[ix], s.thumbStyle
	case leading:
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	}
	return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
}

func (s *ScrollBar) put(screen tcell.Screen, x, y, index int, glyph string, style tcell.Style) {
	if s.orientation == Horizontal {
		putCluster(screen, x+index, y, glyph, style)
		return
	}
	putCluster(screen, x, y+index, glyph, style)
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)
	defer s.MarkClean()

	x, y, _, _ := s.GetInnerRect()
	length := s.length()
	m := s.metrics(length)
	if !s.shouldDraw(length, m) {
		return
	}

	start, end := s.glyphSet.ArrowVerticalStart, s.glyphSet.ArrowVerticalEnd
	if s.orientation == Horizontal {
		start, end = s.glyphSet.ArrowHorizontalStart, s.glyphSet.ArrowHorizontalEnd
	}

	idx := 0
	if s.arrows.hasStart() {
		s.put(screen, x, y, idx, start, s.arrowStyle)
		idx++
	}

	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := s.glyph(cellFill(m, cell))
		s.put(screen, x, y, idx, glyph, style)
		idx++
	}

	if s.arrows.hasEnd() {
		s.put(screen, x, y, idx, end, s.arrowStyle)
	}
}

// OffsetAt returns the offset the bar scrolls to when the cell at position (a
// cell index along the bar's axis, arrows included) is clicked. Arrows move by
// the scroll step, the track pages or jumps depending on the track click
// behavior, and the thumb keeps the current offset.
func (s *ScrollBar) OffsetAt(position int) int {
	length := s.length()
	maxOffset := s.maxOffset(length)
	clamp := func(offset int) int {
		return min(max(offset, 0), maxOffset)
	}

	if s.arrows.hasStart() {
		if position == 0 {
			return clamp(s.offset - s.scrollStep)
		}
		position--
	}
	m := s.metrics(length)
	if position >= m.trackCells {
		if s.arrows.hasEnd() && position == m.trackCells {
			return clamp(s.offset + s.scrollStep)
		}
		return clamp(s.offset)
	}
	if position < 0 || m.trackLen == 0 {
		return clamp(s.offset)
	}

	cellStart := position * subcell
	thumbEnd := m.thumbStart + m.thumbLen
	if cellStart+subcell > m.thumbStart && cellStart < thumbEnd {
		return clamp(s.offset)
	}

	if s.trackClickBehavior == TrackClickBehaviorJumpToClick {
		travel := max(m.trackLen-m.thumbLen, 1)
		center := cellStart + subcell/2 - m.thumbLen/2
		return clamp(center * maxOffset / travel)
	}

	page := max(s.viewportLength(length), 1)
	if cellStart < m.thumbStart {
		return clamp(s.offset - page)
	}
	return clamp(s.offset + page)
}

var _ Primitive = &ScrollBar{}

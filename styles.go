package gridview

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor   tcell.Color // Main background color for primitives.
	ContrastBackgroundColor    tcell.Color // Background color for contrasting elements.
	BorderColor                tcell.Color // Box borders.
	TitleColor                 tcell.Color // Box titles.
	GraphicsColor              tcell.Color // Graphics.
	PrimaryTextColor           tcell.Color // Primary text.
	SecondaryTextColor         tcell.Color // Secondary text (e.g. labels).
	ContrastSecondaryTextColor tcell.Color // Secondary text on ContrastBackgroundColor-colored backgrounds.

	HeaderBackgroundColor tcell.Color // Grid header row.
	HeaderTextColor       tcell.Color // Grid column names and sort indicators.
	FrozenSeparatorColor  tcell.Color // Line between frozen and scrolling columns.
	SelectedRowColor      tcell.Color // Background of selected rows.
	SelectedCellColor     tcell.Color // Background of the cell under the cursor.
	DragMaskColor         tcell.Color // Cells covered by a drag-fill gesture.
	EditorBackgroundColor tcell.Color // Inline cell editor.
	ScrollBarTrackColor   tcell.Color // Scroll bar track and arrows.
	ScrollBarThumbColor   tcell.Color // Scroll bar thumb.
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors.
var Styles = Theme{
	PrimitiveBackgroundColor:   tcell.ColorBlack,
	ContrastBackgroundColor:    tcell.ColorBlue,
	BorderColor:                tcell.ColorWhite,
	TitleColor:                 tcell.ColorWhite,
	GraphicsColor:              tcell.ColorWhite,
	PrimaryTextColor:           tcell.ColorWhite,
	SecondaryTextColor:         tcell.ColorYellow,
	ContrastSecondaryTextColor: tcell.ColorNavy,

	HeaderBackgroundColor: tcell.ColorNavy,
	HeaderTextColor:       tcell.ColorWhite,
	FrozenSeparatorColor:  tcell.ColorYellow,
	SelectedRowColor:      tcell.ColorDarkSlateGray,
	SelectedCellColor:     tcell.ColorTeal,
	DragMaskColor:         tcell.ColorOlive,
	EditorBackgroundColor: tcell.ColorBlue,
	ScrollBarTrackColor:   tcell.ColorGray,
	ScrollBarThumbColor:   tcell.ColorWhite,
}

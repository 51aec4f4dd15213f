package help

import (
	"github.com/ayn2op/gridview"
	"github.com/gdamore/tcell/v2"
)

// Styles are the styles of the help primitive's text.
type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives the help styles from gridview.Styles.
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(gridview.Styles.PrimitiveBackgroundColor)
	key := base.Foreground(gridview.Styles.SecondaryTextColor)
	desc := base.Foreground(gridview.Styles.PrimaryTextColor)
	dim := desc.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

const searchPlaceholder = "Search trails..."

// searchIconSize is the point size of the magnifier glyph.
const searchIconSize = 20

// newSearchInput builds the search field. The field accepts text but
// nothing reads it: typing here never narrows the trail list.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = searchPlaceholder
	ti.TextStyle = searchTextStyle
	ti.PlaceholderStyle = searchPlaceholderStyle
	ti.Cursor.Style = searchCursorStyle
	ti.CharLimit = 120
	return ti
}

// searchInputWidth is the room left for typed text inside a search
// box of the given outer width.
func searchInputWidth(width int) int {
	// border (2) + padding (2) + icon and gap (2) + cursor (1)
	return maxInt(width-7, 1)
}

// renderSearchBar draws the rounded search box at the given outer
// width.
func renderSearchBar(m *Model, width int) string {
	icon := m.icons.Icon("search", searchIconSize, colorTextMuted)
	return searchBoxStyle.
		Width(maxInt(width-2, 1)).
		Render(withIcon(icon, m.search.View()))
}

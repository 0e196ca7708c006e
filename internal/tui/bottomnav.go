package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// navItem is one entry of the bottom navigation bar.
type navItem struct {
	tab   Tab
	icon  string
	label string
}

var navItems = []navItem{
	{tab: TabDiscover, icon: "compass-outline", label: "Discover"},
	{tab: TabMap, icon: "map", label: "Map"},
	{tab: TabBookmark, icon: "bookmark", label: "Saved"},
	{tab: TabUser, icon: "user", label: "Profile"},
}

const (
	// navBarRows is the bar height without the bottom inset: the top
	// border, the icon row and the label row.
	navBarRows = 3
	// navIconSize is the point size of navigation icons.
	navIconSize = 24
)

// navColumns splits width into one column per nav item. The last
// column absorbs the remainder.
func navColumns(width int) []hitRange {
	cols := make([]hitRange, len(navItems))
	colW := width / len(navItems)
	for i := range cols {
		cols[i] = hitRange{startX: i * colW, endX: (i + 1) * colW}
	}
	cols[len(cols)-1].endX = width
	return cols
}

// navTabAt returns the tab under screen column x.
func navTabAt(x, width int) (Tab, bool) {
	for i, col := range navColumns(width) {
		if col.contains(x) {
			return navItems[i].tab, true
		}
	}
	return "", false
}

// renderBottomNav draws the always-visible navigation bar, followed by
// the bottom inset rows. The bar is always navBarRows tall: labels
// that do not fit their column are truncated rather than wrapped.
func renderBottomNav(m *Model, width int) string {
	active := navItems[tabIndex(m.activeTab)].tab
	cols := navColumns(width)

	items := make([]string, len(navItems))
	for i, item := range navItems {
		colW := cols[i].endX - cols[i].startX
		if colW <= 0 {
			continue
		}
		style, color := navUnselectedStyle, colorInactive
		if item.tab == active {
			style, color = navSelectedStyle, colorSelected
		}
		items[i] = lipgloss.NewStyle().
			Width(colW).
			MaxWidth(colW).
			MaxHeight(navBarRows - 1).
			Align(lipgloss.Center).
			Render(m.icons.Icon(item.icon, navIconSize, color) + "\n" +
				style.Render(ansi.Truncate(item.label, colW, "")))
	}

	bar := navBarStyle.Width(width).MaxHeight(navBarRows).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, items...))
	if bottom := m.insets.Insets().Bottom; bottom > 0 {
		bar += strings.Repeat("\n", bottom)
	}
	return bar
}

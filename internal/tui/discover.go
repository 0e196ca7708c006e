package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

// Discover screen rows above the scrolling list.
const (
	headerTopRows      = 1
	searchRows         = 3
	pillsTopRows       = 1
	pillRows           = 3
	discoverChromeRows = headerTopRows + searchRows + pillsTopRows + pillRows
)

const sectionTitle = "Popular Trails"

// visibleTrails is the catalog narrowed by the active category.
func (m *Model) visibleTrails() []trail.Trail {
	return trail.Filter(m.trails, m.activeCategory)
}

// renderTrailList builds the scrollable body of the discover screen:
// the section title, one card per visible trail, and a spacer so the
// last card clears the navigation bar.
func renderTrailList(m *Model, width int) string {
	inner := maxInt(width-2*gutter, 1)
	pad := lipgloss.NewStyle().PaddingLeft(gutter)

	lines := []string{"", pad.Render(sectionTitleStyle.Render(sectionTitle)), ""}

	switch visible := m.visibleTrails(); {
	case !m.loaded:
		lines = append(lines, pad.Render(emptyStateStyle.Render("Loading trails...")))
	case len(visible) == 0:
		lines = append(lines, pad.Render(emptyStateStyle.Render("No trails to show.")))
	default:
		for _, t := range visible {
			lines = append(lines, pad.Render(renderTrailCard(t, inner, m.icons, m.images)), "")
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// renderDiscover draws the search header, the category pills and the
// trail list viewport into the content area.
func renderDiscover(m *Model, width, height int) string {
	inner := maxInt(width-2*gutter, 1)
	pad := lipgloss.NewStyle().PaddingLeft(gutter)

	pills, _ := renderCategoryPills(m.activeCategory, inner, gutter)

	body := lipgloss.JoinVertical(lipgloss.Left,
		"",
		pad.Render(renderSearchBar(m, inner)),
		"",
		pad.Render(pills),
		m.list.View(),
	)
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(body)
}

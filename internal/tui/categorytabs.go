package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

// categoryHit maps a clickable pill span to its category.
type categoryHit struct {
	hitRange
	category trail.Category
}

// renderPill draws one category pill, inverted when active.
func renderPill(category, active trail.Category) string {
	if category == active {
		return pillActiveStyle.Render(string(category))
	}
	return pillInactiveStyle.Render(string(category))
}

// renderCategoryPills lays the pills out on one row of width cells
// starting at screen column originX. When the row is wider than the
// space available it scrolls horizontally just far enough to keep the
// active pill in view. The returned hits are in screen columns.
func renderCategoryPills(active trail.Category, width, originX int) (string, []categoryHit) {
	categories := trail.Categories()
	pills := make([]string, len(categories))
	starts := make([]int, len(categories))

	x := 0
	for i, c := range categories {
		pills[i] = renderPill(c, active)
		starts[i] = x
		x += lipgloss.Width(pills[i]) + pillGap
	}

	offset := 0
	if i := active.Index(); i >= 0 {
		end := starts[i] + lipgloss.Width(pills[i])
		if end > width {
			offset = end - width
		}
	}

	var hits []categoryHit
	for i, c := range categories {
		start := clamp(starts[i]-offset, 0, width)
		end := clamp(starts[i]+lipgloss.Width(pills[i])-offset, 0, width)
		if end <= start {
			continue
		}
		hits = append(hits, categoryHit{
			hitRange: hitRange{startX: originX + start, endX: originX + end},
			category: c,
		})
	}

	parts := make([]string, 0, 2*len(pills))
	gap := strings.Repeat(" ", pillGap)
	for i, p := range pills {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, p)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, offset, offset+width)
	}
	return strings.Join(lines, "\n"), hits
}

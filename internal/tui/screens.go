package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Tabs and screens
// ────────────────────────────────────────────────────────────

// Tab is a bottom navigation selector.
type Tab string

const (
	TabDiscover Tab = "discover"
	TabMap      Tab = "map"
	TabBookmark Tab = "bookmark"
	TabUser     Tab = "user"
)

// tabOrder is the left-to-right order of the bottom navigation.
var tabOrder = []Tab{TabDiscover, TabMap, TabBookmark, TabUser}

// tabIndex returns the navigation position of t. Unknown tabs sit on
// the discover slot, matching what screenFor shows for them.
func tabIndex(t Tab) int {
	for i, known := range tabOrder {
		if known == t {
			return i
		}
	}
	return 0
}

// Screen identifies what fills the content area.
type Screen int

const (
	ScreenDiscover Screen = iota
	ScreenMap
	ScreenSaved
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenMap:
		return "map"
	case ScreenSaved:
		return "saved"
	case ScreenProfile:
		return "profile"
	default:
		return "discover"
	}
}

// screenFor dispatches a tab to its screen. Unrecognised tabs fall
// back to the discover screen rather than signalling an error.
func screenFor(tab Tab) Screen {
	switch tab {
	case TabMap:
		return ScreenMap
	case TabBookmark:
		return ScreenSaved
	case TabUser:
		return ScreenProfile
	default:
		return ScreenDiscover
	}
}

// renderScreen fills the content area for the active tab. A content
// area with no rows renders nothing.
func renderScreen(m *Model, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	switch screenFor(m.activeTab) {
	case ScreenMap:
		return renderPlaceholder(m, "map", "Map Screen", width, height)
	case ScreenSaved:
		return renderPlaceholder(m, "bookmark", "Saved Trails", width, height)
	case ScreenProfile:
		return renderPlaceholder(m, "user", "Profile Screen", width, height)
	default:
		return renderDiscover(m, width, height)
	}
}

// placeholderIconSize matches the large emblem on unbuilt screens.
const placeholderIconSize = 48

// renderPlaceholder draws a centred icon and title for a screen that
// has no content yet.
func renderPlaceholder(m *Model, icon, title string, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.icons.Icon(icon, placeholderIconSize, colorTextMuted),
		"",
		placeholderTitleStyle.Render(title),
	)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(placed)
}

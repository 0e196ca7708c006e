package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/trailhead/internal/design"
)

// ────────────────────────────────────────────────────────────
// Color Palette (design tokens)
// ────────────────────────────────────────────────────────────
//
// All colors come from design.System. No ad-hoc color literals
// anywhere else in the package.

var (
	palette = design.System.ColorPalette
	types   = design.System.Typography
	spacing = design.System.Spacing

	// Base
	colorBackground      = lipgloss.Color(palette.Primary.Background)
	colorSurface         = lipgloss.Color(palette.Primary.Surface)
	colorSurfaceElevated = lipgloss.Color(palette.Primary.SurfaceElevated)

	// Text
	colorText      = lipgloss.Color(palette.Text.Primary)
	colorTextMuted = lipgloss.Color(palette.Text.Muted)

	// Accents
	colorAccent   = lipgloss.Color(palette.Accent.Primary)
	colorRating   = lipgloss.Color(palette.Accent.Secondary)
	colorSelected = lipgloss.Color(palette.Interactive.Selected)
	colorInactive = lipgloss.Color(palette.Interactive.Unselected)
)

// Cell measures derived from the spacing scale.
var (
	gutter  = design.Cells(spacing.MD) // horizontal screen padding
	pillGap = design.Cells(spacing.SM) // space between category pills
	iconGap = design.Cells(spacing.XS) // space between an icon and its label
)

// typeStyle maps a step of the type scale onto a terminal style.
func typeStyle(step design.TextStyle, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Bold(step.Bold())
}

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Search bar
var (
	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurfaceElevated).
			Padding(0, 1)

	searchTextStyle = typeStyle(types.Body, colorText)

	searchPlaceholderStyle = typeStyle(types.Body, colorTextMuted)

	searchCursorStyle = lipgloss.NewStyle().
				Foreground(colorAccent)
)

// Category pills
var (
	pillActiveStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSelected).
			Background(colorSelected).
			Foreground(colorBackground).
			Bold(true).
			Padding(0, 2)

	pillInactiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorTextMuted).
				Foreground(colorTextMuted).
				Padding(0, 2)
)

// Trail list
var (
	sectionTitleStyle = typeStyle(types.Title, colorText)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface).
			Padding(0, 1)

	cardTitleStyle = typeStyle(types.Subtitle, colorText).Bold(true)

	cardCaptionStyle = typeStyle(types.Caption, colorText)

	cardBadgeStyle = lipgloss.NewStyle().
			Background(colorSurfaceElevated).
			Foreground(colorText).
			Padding(0, 1)

	emptyStateStyle = typeStyle(types.Body, colorTextMuted)
)

// Bottom navigation
var (
	navBarStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{Top: "─"}, true, false, false, false).
			BorderForeground(colorSurface)

	navSelectedStyle = typeStyle(types.Caption, colorSelected).Bold(true)

	navUnselectedStyle = typeStyle(types.Caption, colorInactive)
)

// Placeholder screens
var placeholderTitleStyle = typeStyle(types.Title, colorTextMuted)

// rootStyle paints the app background over exactly width x height
// cells, clipping anything that overflows the terminal.
func rootStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(colorBackground).
		Width(width).
		MaxWidth(width).
		Height(height).
		MaxHeight(height)
}

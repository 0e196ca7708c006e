package tui

import (
	"hash/fnv"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Platform collaborators
// ────────────────────────────────────────────────────────────
//
// Icons, images, screen insets and the status bar belong to the
// platform, not to the browser. The model only talks to them through
// these interfaces; the defaults below are terminal renditions.

// IconRenderer maps an icon name, a point size and a color to a glyph.
type IconRenderer interface {
	Icon(name string, size int, color lipgloss.Color) string
}

// ImageLoader renders the image at url into a width x height cell
// block. It handles its own failures; callers never see an error.
type ImageLoader interface {
	Render(url string, width, height int) string
}

// Insets are rows reserved at the top and bottom of the screen.
type Insets struct {
	Top    int
	Bottom int
}

// InsetProvider supplies the current screen insets.
type InsetProvider interface {
	Insets() Insets
}

// StatusBar styles the host's status area when the UI starts.
type StatusBar interface {
	Style() tea.Cmd
}

// ────────────────────────────────────────────────────────────
// Icons
// ────────────────────────────────────────────────────────────

// largeIconSize is the point size from which icons are drawn framed.
const largeIconSize = 40

var glyphs = map[string]string{
	"search":          "⌕",
	"map-pin":         "⌖",
	"star":            "★",
	"map":             "▦",
	"bookmark":        "⚑",
	"user":            "☺",
	"compass-outline": "◎",
}

// GlyphIcons renders icons as single Unicode glyphs. Large sizes get
// a rounded frame so placeholder screens have a visible emblem.
type GlyphIcons struct{}

// Icon implements IconRenderer. Unknown names render as a bullet.
func (GlyphIcons) Icon(name string, size int, color lipgloss.Color) string {
	glyph, ok := glyphs[name]
	if !ok {
		glyph = "•"
	}
	style := lipgloss.NewStyle().Foreground(color)
	if size >= largeIconSize {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(0, 1)
	}
	return style.Render(glyph)
}

// ────────────────────────────────────────────────────────────
// Images
// ────────────────────────────────────────────────────────────

// shadeRamp runs from sparse to dense fill.
var shadeRamp = []rune{' ', '░', '▒', '▓'}

// ShadedImages draws a deterministic shaded block per image URL. It
// never fetches anything; the URL only seeds the pattern and tint.
// Empty or malformed URLs fall back to a flat surface block.
type ShadedImages struct{}

// Render implements ImageLoader.
func (ShadedImages) Render(rawURL string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	flat := lipgloss.NewStyle().Background(colorSurface)
	u, err := url.Parse(rawURL)
	if rawURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return flatBlock(flat, width, height)
	}

	h := fnv.New64a()
	h.Write([]byte(rawURL))
	seed := h.Sum64()

	tint := imageTints[seed%uint64(len(imageTints))]
	style := lipgloss.NewStyle().Foreground(tint).Background(colorSurface)

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			// Per-cell mix of the seed and position.
			v := seed ^ uint64(x*31+y*131)
			v ^= v >> 7
			b.WriteRune(shadeRamp[(v+uint64(y))%uint64(len(shadeRamp))])
		}
		rows[y] = style.Render(b.String())
	}
	return strings.Join(rows, "\n")
}

// imageTints are the foregrounds a shaded image can take.
var imageTints = []lipgloss.Color{colorAccent, colorRating, colorSelected, colorTextMuted}

func flatBlock(style lipgloss.Style, width, height int) string {
	row := style.Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// ────────────────────────────────────────────────────────────
// Insets and status bar
// ────────────────────────────────────────────────────────────

// FixedInsets returns the same insets for the whole session.
type FixedInsets Insets

// Insets implements InsetProvider. Negative values are treated as 0.
func (f FixedInsets) Insets() Insets {
	return Insets{Top: maxInt(f.Top, 0), Bottom: maxInt(f.Bottom, 0)}
}

// WindowTitle sets the terminal title when the UI starts.
type WindowTitle string

// Style implements StatusBar.
func (w WindowTitle) Style() tea.Cmd {
	if w == "" {
		return nil
	}
	return tea.SetWindowTitle(string(w))
}

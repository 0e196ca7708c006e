package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Layout helpers
// ────────────────────────────────────────────────────────────

// hitRange is a clickable horizontal span [startX, endX) on a row.
type hitRange struct {
	startX int
	endX   int
}

func (h hitRange) contains(x int) bool {
	return x >= h.startX && x < h.endX
}

// spread places left and right at opposite ends of a line of the
// given width, filling the gap with spaces.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// withIcon joins an icon glyph and its label.
func withIcon(icon, label string) string {
	return icon + strings.Repeat(" ", iconGap) + label
}

// ────────────────────────────────────────────────────────────
// Numeric helpers
// ────────────────────────────────────────────────────────────

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

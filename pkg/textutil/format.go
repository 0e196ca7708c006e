// Package textutil provides the display formatting shared by the
// Trailhead TUI and CLI.
package textutil

import (
	"strconv"
	"strings"
)

// FormatRating renders a rating the way the cards show it, with one
// decimal: "4.8", "4.5", "5.0".
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// Stars renders a five-slot star bar for a 0-5 rating, rounding to the
// nearest whole star. Out-of-range ratings are clamped.
func Stars(r float64) string {
	n := int(r + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// Truncate cuts s to maxLen runes and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

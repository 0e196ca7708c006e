package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
	"github.com/Mr-Dark-debug/trailhead/pkg/textutil"
)

const (
	// cardImageRows is the height of the image area on a card.
	cardImageRows = 3
	// cardRows is the full card height: border, image, two text lines.
	cardRows = 2 + cardImageRows + 2
	// cardIconSize is the point size of the pin and star glyphs.
	cardIconSize = 14
)

// renderTrailCard draws one trail at the given outer width: the image
// block, then title and rating, then location and difficulty.
func renderTrailCard(t trail.Trail, width int, icons IconRenderer, images ImageLoader) string {
	inner := maxInt(width-4, 1) // border + padding on each side

	image := images.Render(t.Image, inner, cardImageRows)

	rating := cardBadgeStyle.Render(
		withIcon(icons.Icon("star", cardIconSize, colorRating), textutil.FormatRating(t.Rating)))
	difficulty := cardBadgeStyle.Render(string(t.Difficulty))

	titleRoom := maxInt(inner-lipgloss.Width(rating)-1, 1)
	title := cardTitleStyle.Render(textutil.Truncate(t.Title, titleRoom))

	pin := icons.Icon("map-pin", cardIconSize, colorText)
	locationRoom := maxInt(inner-lipgloss.Width(difficulty)-lipgloss.Width(pin)-iconGap-1, 1)
	location := withIcon(pin, cardCaptionStyle.Render(textutil.Truncate(t.Location, locationRoom)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		image,
		spread(title, rating, inner),
		spread(location, difficulty, inner),
	)
	return cardStyle.Width(maxInt(width-2, 1)).Render(body)
}

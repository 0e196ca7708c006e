package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

func TestRenderTrailCard(t *testing.T) {
	tr := trail.Catalog()[0]
	card := renderTrailCard(tr, 60, GlyphIcons{}, ShadedImages{})

	assert.Equal(t, cardRows, lipgloss.Height(card))
	assert.Equal(t, 60, lipgloss.Width(card))
	assert.Contains(t, card, "Mystic Forest Trail")
	assert.Contains(t, card, "Elvenwood")
	assert.Contains(t, card, "4.8")
	assert.Contains(t, card, "Moderate")
}

func TestRenderTrailCardBrokenImage(t *testing.T) {
	tr := trail.Catalog()[2]
	tr.Image = "::not a url"

	card := renderTrailCard(tr, 40, GlyphIcons{}, ShadedImages{})
	assert.Equal(t, cardRows, lipgloss.Height(card), "a broken image keeps the card shape")
	assert.Contains(t, card, tr.Title)
}

func TestCategoryPillsScrollToActive(t *testing.T) {
	row, hits := renderCategoryPills(trail.Caves, 20, 2)

	for _, line := range strings.Split(row, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}

	var caves *categoryHit
	for i := range hits {
		assert.GreaterOrEqual(t, hits[i].startX, 2)
		assert.LessOrEqual(t, hits[i].endX, 22)
		if hits[i].category == trail.Caves {
			caves = &hits[i]
		}
	}
	require.NotNil(t, caves, "the active pill must stay clickable")
	assert.Contains(t, row, "Caves")
}

func TestCategoryPillsFitWithoutScroll(t *testing.T) {
	row, hits := renderCategoryPills(trail.All, 200, 0)

	require.Len(t, hits, len(trail.Categories()))
	for i, c := range trail.Categories() {
		assert.Equal(t, c, hits[i].category)
		assert.Contains(t, row, string(c))
		if i > 0 {
			assert.Equal(t, hits[i-1].endX+pillGap, hits[i].startX)
		}
	}
}

func TestNavTabAt(t *testing.T) {
	cases := []struct {
		x    int
		tab  Tab
		want bool
	}{
		{0, TabDiscover, true},
		{24, TabDiscover, true},
		{25, TabMap, true},
		{50, TabBookmark, true},
		{99, TabUser, true},
		{100, "", false},
		{-1, "", false},
	}
	for _, tc := range cases {
		tab, ok := navTabAt(tc.x, 100)
		assert.Equal(t, tc.want, ok, "x=%d", tc.x)
		assert.Equal(t, tc.tab, tab, "x=%d", tc.x)
	}
}

func TestNavColumnsAbsorbRemainder(t *testing.T) {
	cols := navColumns(103)
	require.Len(t, cols, len(navItems))
	assert.Equal(t, 0, cols[0].startX)
	assert.Equal(t, 103, cols[len(cols)-1].endX)
}

func TestGlyphIcons(t *testing.T) {
	icons := GlyphIcons{}

	assert.Contains(t, icons.Icon("star", 12, colorRating), "★")
	assert.Contains(t, icons.Icon("no-such-icon", 12, colorText), "•")
	assert.Equal(t, 1, lipgloss.Height(icons.Icon("map", 24, colorText)))
	assert.Equal(t, 3, lipgloss.Height(icons.Icon("map", 48, colorText)), "large icons are framed")
}

func TestShadedImages(t *testing.T) {
	images := ShadedImages{}
	u := trail.Catalog()[1].Image

	first := images.Render(u, 12, 3)
	assert.Equal(t, first, images.Render(u, 12, 3), "same url renders the same block")
	assert.Equal(t, 3, lipgloss.Height(first))
	assert.Equal(t, 12, lipgloss.Width(first))

	for _, bad := range []string{"", "not a url", "ftp://example.com/x.jpg", "https://"} {
		block := images.Render(bad, 12, 3)
		assert.Equal(t, 3, lipgloss.Height(block), bad)
		assert.Equal(t, 12, lipgloss.Width(block), bad)
	}

	assert.Empty(t, images.Render(u, 0, 3))
	assert.Empty(t, images.Render(u, 12, 0))
}

func TestFixedInsets(t *testing.T) {
	assert.Equal(t, Insets{Top: 2, Bottom: 1}, FixedInsets{Top: 2, Bottom: 1}.Insets())
	assert.Equal(t, Insets{}, FixedInsets{Top: -3, Bottom: -1}.Insets())
}

func TestWindowTitle(t *testing.T) {
	assert.Nil(t, WindowTitle("").Style())
	assert.NotNil(t, WindowTitle("Trailhead").Style())
}

func TestSearchInputWidth(t *testing.T) {
	assert.Equal(t, 89, searchInputWidth(96))
	assert.Equal(t, 1, searchInputWidth(3))
}

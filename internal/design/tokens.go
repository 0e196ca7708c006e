// Package design holds Trailhead's design tokens: the color palette,
// the typography scale and the spacing scale every visual component
// is styled from.
//
// The token set is a static constant. There is no runtime override;
// configuration cannot change it.
package design

// ────────────────────────────────────────────────────────────
// Token groups
// ────────────────────────────────────────────────────────────

// Primary holds the base surface colors.
type Primary struct {
	Background      string
	Surface         string
	SurfaceElevated string
}

// Accent holds highlight colors.
type Accent struct {
	Primary   string
	Secondary string
	Tertiary  string
}

// Text holds foreground text colors.
type Text struct {
	Primary   string
	Secondary string
	Muted     string
}

// Interactive holds selected/unselected control colors.
type Interactive struct {
	Selected   string
	Unselected string
}

// ColorPalette groups every color used by the UI as hex strings.
type ColorPalette struct {
	Primary     Primary
	Accent      Accent
	Text        Text
	Interactive Interactive
}

// TextStyle is one step of the type scale. FontSize is in points.
type TextStyle struct {
	FontSize   int
	FontWeight int
}

// Bold reports whether the weight is heavy enough to render bold on
// a terminal, which has no intermediate weights.
func (s TextStyle) Bold() bool {
	return s.FontWeight >= 600
}

// Typography is the type scale.
type Typography struct {
	Hero     TextStyle
	Title    TextStyle
	Subtitle TextStyle
	Body     TextStyle
	Caption  TextStyle
}

// Spacing is the spacing scale in points.
type Spacing struct {
	XS int
	SM int
	MD int
	LG int
	XL int
}

// Tokens is the full design system.
type Tokens struct {
	ColorPalette ColorPalette
	Typography   Typography
	Spacing      Spacing
}

// ────────────────────────────────────────────────────────────
// Values
// ────────────────────────────────────────────────────────────

// System is the one token set the application is styled with.
var System = Tokens{
	ColorPalette: ColorPalette{
		Primary: Primary{
			Background:      "#1a1a1a",
			Surface:         "#2a2a2a",
			SurfaceElevated: "#3a3a3a",
		},
		Accent: Accent{
			Primary:   "#8B5CF6",
			Secondary: "#A3E635",
			Tertiary:  "#10B981",
		},
		Text: Text{
			Primary:   "#FFFFFF",
			Secondary: "#B0B0B0",
			Muted:     "#808080",
		},
		Interactive: Interactive{
			Selected:   "#FFFFFF",
			Unselected: "#666666",
		},
	},
	Typography: Typography{
		Hero:     TextStyle{FontSize: 28, FontWeight: 600},
		Title:    TextStyle{FontSize: 24, FontWeight: 600},
		Subtitle: TextStyle{FontSize: 16, FontWeight: 400},
		Body:     TextStyle{FontSize: 14, FontWeight: 400},
		Caption:  TextStyle{FontSize: 12, FontWeight: 400},
	},
	Spacing: Spacing{
		XS: 4,
		SM: 8,
		MD: 16,
		LG: 24,
		XL: 32,
	},
}

// pointsPerCell is how many points one terminal cell stands in for.
const pointsPerCell = 8

// Cells converts a point distance to terminal cells. Any positive
// distance occupies at least one cell.
func Cells(points int) int {
	if points <= 0 {
		return 0
	}
	cells := points / pointsPerCell
	if cells < 1 {
		return 1
	}
	return cells
}

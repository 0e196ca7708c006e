// Package tui implements the Trailhead terminal trail browser.
//
// Built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles
// libraries.
//
// Component architecture:
//
//	model.go        root model: selection state, Init/Update/View
//	screens.go      tab → screen dispatch, placeholder screens
//	discover.go     discover screen and the filtered trail list
//	searchbar.go    search field (accepts text, filters nothing)
//	categorytabs.go category pills with horizontal scrolling
//	trailcard.go    one trail card
//	bottomnav.go    always-visible bottom navigation
//	platform.go     icon, image, inset and status bar collaborators
//	theme.go        styles derived from the design tokens
//	keys.go         key bindings
//	helpers.go      layout and numeric helpers
package tui

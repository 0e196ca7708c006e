package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the trail browser.
type KeyMap struct {
	// Bottom navigation.
	TabDiscover key.Binding
	TabMap      key.Binding
	TabSaved    key.Binding
	TabProfile  key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding

	// Category pills (discover screen only).
	PrevCategory key.Binding
	NextCategory key.Binding
	AllCategory  key.Binding

	// Trail list scrolling.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Search field.
	SearchFocus key.Binding
	SearchBlur  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set: digits for the
// bottom tabs, h/l for pills, vim-style j/k alongside arrow keys.
var DefaultKeyMap = KeyMap{
	TabDiscover: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "discover"),
	),
	TabMap: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "map"),
	),
	TabSaved: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "saved"),
	),
	TabProfile: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "profile"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous tab"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous category"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next category"),
	),
	AllCategory: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all trails"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	SearchFocus: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchBlur: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("Esc", "leave search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

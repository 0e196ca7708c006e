package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/trailhead/internal/database"
	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the trail browser. It owns
// the two pieces of selection state, the active category and the
// active tab; every view is re-derived from them on each render.
type Model struct {
	store database.Store
	log   *zap.Logger
	keys  KeyMap

	// Platform collaborators
	icons     IconRenderer
	images    ImageLoader
	insets    InsetProvider
	statusBar StatusBar

	// Data
	trails []trail.Trail
	loaded bool

	// Selection state
	activeCategory trail.Category
	activeTab      Tab

	// Widgets
	search textinput.Model
	list   viewport.Model

	width  int
	height int
}

// State is a snapshot of the selection state.
type State struct {
	ActiveCategory trail.Category `json:"active_category"`
	ActiveTab      Tab            `json:"active_tab"`
}

// Option configures a Model.
type Option func(*Model)

// WithIcons replaces the icon renderer.
func WithIcons(r IconRenderer) Option { return func(m *Model) { m.icons = r } }

// WithImages replaces the image loader.
func WithImages(l ImageLoader) Option { return func(m *Model) { m.images = l } }

// WithInsets replaces the inset provider.
func WithInsets(p InsetProvider) Option { return func(m *Model) { m.insets = p } }

// WithStatusBar replaces the status bar hook.
func WithStatusBar(s StatusBar) Option { return func(m *Model) { m.statusBar = s } }

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option { return func(m *Model) { m.log = l } }

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option { return func(m *Model) { m.keys = k } }

// NewModel creates a browser backed by store, starting on the
// discover tab with no category filter.
func NewModel(store database.Store, opts ...Option) Model {
	m := Model{
		store:          store,
		log:            zap.NewNop(),
		keys:           DefaultKeyMap,
		icons:          GlyphIcons{},
		images:         ShadedImages{},
		insets:         FixedInsets{},
		statusBar:      WindowTitle("Trailhead"),
		activeCategory: trail.All,
		activeTab:      TabDiscover,
		search:         newSearchInput(),
		list:           viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current selection state.
func (m Model) State() State {
	return State{ActiveCategory: m.activeCategory, ActiveTab: m.activeTab}
}

// Screen returns the screen the active tab dispatches to.
func (m Model) Screen() Screen {
	return screenFor(m.activeTab)
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type trailsLoadedMsg []trail.Trail
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.statusBar.Style(), m.loadTrails())
}

func (m Model) loadTrails() tea.Cmd {
	return func() tea.Msg {
		trails, err := m.store.ListTrails()
		if err != nil {
			return errMsg{err}
		}
		return trailsLoadedMsg(trails)
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case trailsLoadedMsg:
		m.trails = []trail.Trail(msg)
		m.loaded = true
		m.refreshList()
		m.log.Info("catalog loaded", zap.Int("trails", len(m.trails)))
		return m, nil

	case errMsg:
		// The list stays empty; there is no user-facing error surface.
		m.loaded = true
		m.refreshList()
		m.log.Error("loading catalog", zap.Error(msg.err))
		return m, nil
	}

	// Cursor blink and similar widget ticks.
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ── Search field has focus ──

	if m.search.Focused() {
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, m.keys.SearchBlur):
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	// ── Global ──

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.TabDiscover):
		m.selectTab(TabDiscover)
		return m, nil
	case key.Matches(msg, m.keys.TabMap):
		m.selectTab(TabMap)
		return m, nil
	case key.Matches(msg, m.keys.TabSaved):
		m.selectTab(TabBookmark)
		return m, nil
	case key.Matches(msg, m.keys.TabProfile):
		m.selectTab(TabUser)
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(tabOrder[(tabIndex(m.activeTab)+1)%len(tabOrder)])
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab(tabOrder[(tabIndex(m.activeTab)+len(tabOrder)-1)%len(tabOrder)])
		return m, nil
	}

	// ── Discover screen ──

	if screenFor(m.activeTab) != ScreenDiscover {
		return m, nil
	}

	categories := trail.Categories()
	current := maxInt(m.activeCategory.Index(), 0)

	switch {
	case key.Matches(msg, m.keys.SearchFocus):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.PrevCategory):
		m.selectCategory(categories[clamp(current-1, 0, len(categories)-1)])
	case key.Matches(msg, m.keys.NextCategory):
		m.selectCategory(categories[clamp(current+1, 0, len(categories)-1)])
	case key.Matches(msg, m.keys.AllCategory):
		m.selectCategory(trail.All)
	case key.Matches(msg, m.keys.Up):
		m.scrollList(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollList(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollList(-m.list.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollList(m.list.Height)
	case key.Matches(msg, m.keys.Home):
		m.list.GotoTop()
	case key.Matches(msg, m.keys.End):
		m.list.GotoBottom()
	}

	return m, nil
}

// handleMouse maps clicks to the same setters as the keyboard. Left
// press on a nav item selects its tab; on a pill, its category; on
// the search box, focuses it. The wheel scrolls the trail list.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	discover := screenFor(m.activeTab) == ScreenDiscover

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if discover {
			m.scrollList(-3)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if discover {
			m.scrollList(3)
		}
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	top := m.insets.Insets().Top
	navTop := top + m.contentHeight()

	if msg.Y >= navTop && msg.Y < navTop+navBarRows {
		if tab, ok := navTabAt(msg.X, m.width); ok {
			m.selectTab(tab)
		}
		return m, nil
	}

	// Only the visible content area is clickable above the bar.
	if !discover || msg.Y < top || msg.Y >= navTop {
		return m, nil
	}

	searchTop := top + headerTopRows
	if msg.Y >= searchTop && msg.Y < searchTop+searchRows {
		cmd := m.search.Focus()
		return m, cmd
	}
	m.search.Blur()

	pillsTop := searchTop + searchRows + pillsTopRows
	if msg.Y >= pillsTop && msg.Y < pillsTop+pillRows {
		_, hits := renderCategoryPills(m.activeCategory, maxInt(m.width-2*gutter, 1), gutter)
		for _, hit := range hits {
			if hit.contains(msg.X) {
				m.selectCategory(hit.category)
				break
			}
		}
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// State transitions
// ────────────────────────────────────────────────────────────

// selectTab makes tab active. Re-selecting the active tab is a no-op.
func (m *Model) selectTab(tab Tab) {
	if tab == m.activeTab {
		return
	}
	m.log.Debug("tab selected",
		zap.String("from", string(m.activeTab)), zap.String("to", string(tab)))
	m.activeTab = tab
	m.search.Blur()
}

// selectCategory makes category active and rebuilds the list from the
// top. Re-selecting the active category is a no-op.
func (m *Model) selectCategory(category trail.Category) {
	if category == m.activeCategory {
		return
	}
	m.log.Debug("category selected",
		zap.String("from", string(m.activeCategory)), zap.String("to", string(category)))
	m.activeCategory = category
	m.refreshList()
	m.list.GotoTop()
}

func (m *Model) scrollList(delta int) {
	m.list.SetYOffset(m.list.YOffset + delta)
}

// ────────────────────────────────────────────────────────────
// Layout
// ────────────────────────────────────────────────────────────

// contentHeight is the room between the top inset and the nav bar.
func (m *Model) contentHeight() int {
	insets := m.insets.Insets()
	return maxInt(m.height-insets.Top-insets.Bottom-navBarRows, 0)
}

func (m *Model) resize() {
	m.list.Width = m.width
	m.list.Height = maxInt(m.contentHeight()-discoverChromeRows, 1)
	m.search.Width = searchInputWidth(maxInt(m.width-2*gutter, 1))
	m.refreshList()
}

func (m *Model) refreshList() {
	m.list.SetContent(renderTrailList(m, m.width))
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.height <= 0 {
		return ""
	}

	parts := make([]string, 0, 3)
	if top := m.insets.Insets().Top; top > 0 {
		parts = append(parts, lipgloss.NewStyle().Height(top).Render(""))
	}
	if screen := renderScreen(&m, m.width, m.contentHeight()); screen != "" {
		parts = append(parts, screen)
	}
	parts = append(parts, renderBottomNav(&m, m.width))

	return rootStyle(m.width, m.height).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

package tui

import (
	"testing"

	"devfort/nav"
	"devfort/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() nav.Config {
	return nav.Config{
		Brand: "DevFort",
		CTA:   nav.Link{Label: "Contact", Path: "/contact"},
		Entries: []nav.Entry{
			{Label: "Home", Path: "/"},
			{
				Label: "Skills",
				Path:  "/skills",
				Children: []nav.ChildEntry{
					{Label: "All Skills", Path: "/skills"},
					{Label: "Quick Learner", Path: "/skills/quick-learner"},
				},
				Groups: []nav.Group{{Name: "Backend", Links: []nav.Link{{Label: "Go", Path: "/skills/go"}}}},
			},
			{Label: "Blog", Path: "/blog"},
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewModelMountsShell(t *testing.T) {
	m := NewModel(testConfig(), theme.DefaultCatalog, nil)

	st := m.State()
	assert.True(t, st.Mounted)
	assert.Equal(t, "/", st.Path)
	assert.Equal(t, "Home", st.Active)
	assert.Equal(t, "dark", st.Theme)
}

func TestEnterOnPlainEntryNavigates(t *testing.T) {
	m := NewModel(testConfig(), theme.DefaultCatalog, nil)

	m = press(t, m, runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "/blog", m.State().Path)
	assert.Equal(t, "Blog", m.State().Active)
	assert.Equal(t, []string{"/blog"}, m.Visited())
}

func TestDropdownOpenSelectAndClose(t *testing.T) {
	m := NewModel(testConfig(), theme.DefaultCatalog, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Skills", m.State().Dropdown)
	assert.Contains(t, m.View(), "Quick Learner")

	// Escape closes without navigating
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.State().Dropdown)
	assert.Empty(t, m.Visited())

	// Down past the children reaches the group links
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "/skills/go", m.State().Path)
	assert.Empty(t, m.State().Dropdown)
	assert.Equal(t, "Skills", m.State().Active)
}

func TestDrawerFocusTrapAndNavigate(t *testing.T) {
	m := NewModel(testConfig(), theme.DefaultCatalog, nil)
	m = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	require.Equal(t, nav.LayoutMobile, m.State().Layout)

	m = press(t, m, runes("m"))
	st := m.State()
	require.Equal(t, nav.DrawerOpen, st.Drawer)
	assert.True(t, st.ScrollLocked)
	assert.Equal(t, nav.DrawerCloseID, st.Focused)

	// Shift+Tab from the close button wraps to the last link
	links := nav.DrawerLinks(testConfig())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, nav.DrawerItemID(len(links)-1), m.State().Focused)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, nav.DrawerCloseID, m.State().Focused)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	st = m.State()
	assert.Equal(t, nav.DrawerClosed, st.Drawer)
	assert.False(t, st.ScrollLocked)
	assert.Equal(t, links[1].Path, st.Path)
}

func TestResizeToDesktopClosesDrawer(t *testing.T) {
	m := NewModel(testConfig(), theme.DefaultCatalog, nil)
	m = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 30}, runes("m"))
	require.Equal(t, nav.DrawerOpen, m.State().Drawer)

	m = press(t, m, tea.WindowSizeMsg{Width: 160, Height: 30})
	assert.Equal(t, nav.LayoutDesktop, m.State().Layout)
	assert.Equal(t, nav.DrawerClosed, m.State().Drawer)
	assert.False(t, m.State().ScrollLocked)
}

func TestThemeMenuSelectsAndPersists(t *testing.T) {
	store := theme.NewMemoryStore("")
	m := NewModel(testConfig(), theme.DefaultCatalog, store)

	m = press(t, m, runes("t"))
	require.True(t, m.State().ThemeMenuOpen)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.State().ThemeMenuOpen)
	assert.Equal(t, theme.DefaultCatalog[2].Value, m.State().Theme)

	v, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultCatalog[2].Value, v)
}

func TestScrollCondensesBar(t *testing.T) {
	m := NewModel(testConfig(), theme.DefaultCatalog, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.True(t, m.State().Condensed)
	assert.Contains(t, m.View(), "condensed")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.False(t, m.State().Condensed)
}

func TestQuitUnmounts(t *testing.T) {
	m := NewModel(testConfig(), theme.DefaultCatalog, nil)
	m = press(t, m, runes("m"))

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	m = next.(Model)

	assert.False(t, m.State().Mounted)
	assert.False(t, m.State().ScrollLocked)
	assert.Empty(t, m.View())
}

// Package tui previews the navigation shell in a terminal. Key presses become the
// same events the browser script forwards, so the preview drives the real state machine.
package tui

import (
	"devfort/nav"
	"devfort/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

const (
	// cellWidth approximates the pixel width of one terminal column, so a
	// 128-column terminal counts as a 1024px desktop viewport.
	cellWidth  = 8
	scrollStep = 64
)

// Model is the preview's bubbletea model
type Model struct {
	shell *nav.Shell
	doc   *nav.Document
	cfg   nav.Config
	route *route

	cursor     int // top-level entry under the keyboard cursor
	menuCursor int // item in the open dropdown or theme menu
	scrollY    int
	width      int
	height     int

	keys     keyMap
	help     help.Model
	quitting bool
}

// route records where the shell navigated
type route struct {
	visited []string
}

// NewModel mounts a fresh shell for cfg. store may be nil for an in-memory theme.
func NewModel(cfg nav.Config, themes theme.Catalog, store theme.Store) Model {
	if store == nil {
		store = theme.NewMemoryStore("")
	}

	doc := nav.NewDocument()
	ctrl := theme.NewController(themes, store, doc)
	if err := ctrl.Init(); err != nil {
		logger.LogErr(err, "preview theme could not be persisted")
	}

	r := &route{}
	shell := nav.NewShell(cfg, doc, nav.NavigatorFunc(func(p string) {
		r.visited = append(r.visited, p)
	}), ctrl)
	shell.Mount("/")

	return Model{
		shell:  shell,
		doc:    doc,
		cfg:    shell.Config(),
		route:  r,
		width:  80,
		height: 24,
		keys:   defaultKeys(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.doc.Dispatch(nav.Event{Type: nav.EventResize, Width: msg.Width * cellWidth})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shell.Unmount()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Drawer):
		m.click(nav.DrawerTriggerID)

	case key.Matches(msg, m.keys.Theme):
		m.click(nav.ThemeTriggerID)
		m.menuCursor = m.themeIndex()

	case key.Matches(msg, m.keys.Escape):
		m.doc.Dispatch(nav.Event{Type: nav.EventKeyDown, Key: nav.KeyEscape})

	case key.Matches(msg, m.keys.ShiftTab):
		m.doc.Dispatch(nav.Event{Type: nav.EventKeyDown, Key: nav.KeyTab, Shift: true})

	case key.Matches(msg, m.keys.Tab):
		m.doc.Dispatch(nav.Event{Type: nav.EventKeyDown, Key: nav.KeyTab})

	case key.Matches(msg, m.keys.ScrollDn):
		m.scroll(scrollStep)

	case key.Matches(msg, m.keys.ScrollUp):
		m.scroll(-scrollStep)

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Up):
		m.moveMenuCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveMenuCursor(1)

	case key.Matches(msg, m.keys.Select):
		m.selectCurrent()
	}
	return m, nil
}

func (m *Model) click(target string) {
	m.doc.Dispatch(nav.Event{Type: nav.EventClick, Target: target})
}

func (m *Model) scroll(delta int) {
	m.scrollY += delta
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	m.doc.Dispatch(nav.Event{Type: nav.EventScroll, ScrollY: m.scrollY})
}

// moveCursor walks the top-level entries while no overlay is open
func (m *Model) moveCursor(delta int) {
	if m.overlayOpen() || len(m.cfg.Entries) == 0 {
		return
	}
	n := len(m.cfg.Entries)
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) moveMenuCursor(delta int) {
	n := 0
	switch {
	case m.themeMenuOpen():
		n = len(m.shell.Themes().Catalog())
	case m.shell.ActiveDropdown() != "":
		n = len(m.menuItems())
	}
	if n == 0 {
		return
	}
	m.menuCursor = (m.menuCursor + delta + n) % n
}

// selectCurrent activates whatever has the keyboard: the focused drawer item,
// the highlighted theme or dropdown item, or the entry under the cursor.
func (m *Model) selectCurrent() {
	switch {
	case m.shell.Drawer().IsOpen():
		focused := m.doc.Focused()
		if focused == nav.DrawerCloseID {
			m.shell.CloseDrawer()
			return
		}
		for i, l := range m.shell.Drawer().Links() {
			if nav.DrawerItemID(i) == focused {
				m.navigate(l.Path)
				return
			}
		}

	case m.themeMenuOpen():
		opts := m.shell.Themes().Catalog()
		if m.menuCursor < len(opts) {
			if err := m.shell.Themes().Select(opts[m.menuCursor].Value); err != nil {
				logger.LogErr(err, "preview theme could not be persisted")
			}
		}

	case m.shell.ActiveDropdown() != "":
		items := m.menuItems()
		if m.menuCursor < len(items) {
			m.navigate(items[m.menuCursor].Path)
		}

	default:
		if m.cursor >= len(m.cfg.Entries) {
			return
		}
		e := m.cfg.Entries[m.cursor]
		if e.HasMenu() {
			m.click(nav.MenuTriggerID(e.Label))
			m.menuCursor = 0
			return
		}
		m.navigate(e.Path)
	}
}

func (m *Model) navigate(path string) {
	if err := m.shell.Navigate(path); err != nil {
		logger.LogErr(err, "preview navigation failed", "path", path)
		return
	}
	if i := nav.ActiveEntry(m.shell.Path(), m.cfg.Entries); i >= 0 {
		m.cursor = i
	}
	m.menuCursor = 0
}

// menuItems lists the open dropdown's children followed by its group links
func (m *Model) menuItems() []nav.Link {
	d, err := m.shell.Dropdown(m.shell.ActiveDropdown())
	if err != nil {
		return nil
	}
	var items []nav.Link
	for _, c := range d.Children() {
		items = append(items, nav.Link{Label: c.Label, Path: c.Path})
	}
	for _, g := range d.Groups() {
		items = append(items, g.Links...)
	}
	return items
}

func (m *Model) themeMenuOpen() bool {
	return m.shell.Themes() != nil && m.shell.Themes().MenuOpen()
}

func (m *Model) themeIndex() int {
	current := m.shell.Themes().Current().Value
	for i, o := range m.shell.Themes().Catalog() {
		if o.Value == current {
			return i
		}
	}
	return 0
}

func (m *Model) overlayOpen() bool {
	return m.shell.Drawer().IsOpen() || m.shell.ActiveDropdown() != "" || m.themeMenuOpen()
}

// State returns the shell's current state
func (m Model) State() nav.State {
	return m.shell.Snapshot()
}

// Visited lists the routes navigated to, oldest first
func (m Model) Visited() []string {
	return append([]string(nil), m.route.visited...)
}

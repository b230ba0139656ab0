// Package nav is the headless navigation system: route matching, dropdown
// mega-menus, the mobile drawer, scroll condensation and the shell composing them.
// A Shell and its Document are driven from a single goroutine at a time.
package nav

import (
	"errors"
	"strconv"

	"devfort/theme"

	"github.com/rohanthewiz/logger"
)

var (
	ErrNotDropdown  = errors.New("entry has no dropdown menu")
	ErrUnknownEntry = errors.New("unknown navigation entry")
	ErrUnmounted    = errors.New("navigation shell is not mounted")
)

// Navigator performs a route change requested by the navigation
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a func to Navigator
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Config parameterises one navigation bar
type Config struct {
	Brand             string  `yaml:"brand" validate:"required"`
	Tagline           string  `yaml:"tagline"`
	CTA               Link    `yaml:"cta" validate:"required"`
	DrawerCTA         string  `yaml:"drawer_cta"`
	Entries           []Entry `yaml:"entries" validate:"required,min=1,dive"`
	CondenseThreshold int     `yaml:"condense_threshold" validate:"gte=0"`
	DesktopMinWidth   int     `yaml:"desktop_min_width" validate:"gte=0"`
}

// State is a snapshot of everything the renderer needs
type State struct {
	Path          string      `json:"path" msgpack:"path"`
	Active        string      `json:"active" msgpack:"active"`
	Condensed     bool        `json:"condensed" msgpack:"condensed"`
	Layout        Layout      `json:"layout" msgpack:"layout"`
	Drawer        DrawerState `json:"drawer" msgpack:"drawer"`
	Dropdown      string      `json:"dropdown" msgpack:"dropdown"`
	ThemeMenuOpen bool        `json:"theme_menu_open" msgpack:"theme_menu_open"`
	Theme         string      `json:"theme" msgpack:"theme"`
	Focused       string      `json:"focused" msgpack:"focused"`
	ScrollLocked  bool        `json:"scroll_locked" msgpack:"scroll_locked"`
	Mounted       bool        `json:"mounted" msgpack:"mounted"`
}

// Shell composes the bar: brand, desktop links with dropdowns, theme control,
// call-to-action and the mobile drawer. It owns all navigation state.
type Shell struct {
	cfg       Config
	doc       *Document
	navigator Navigator
	themes    *theme.Controller

	dropdowns      map[string]*Dropdown
	activeDropdown string
	drawer         *Drawer
	scroll         *ScrollObserver
	layout         Layout
	path           string

	mounted bool
	detach  []func()
}

// NewShell builds an unmounted shell. themes may be nil when the bar has no theme control.
func NewShell(cfg Config, doc *Document, navigator Navigator, themes *theme.Controller) *Shell {
	if cfg.CondenseThreshold <= 0 {
		cfg.CondenseThreshold = DefaultCondenseThreshold
	}
	if cfg.DesktopMinWidth <= 0 {
		cfg.DesktopMinWidth = DefaultDesktopMinWidth
	}
	if navigator == nil {
		navigator = NavigatorFunc(func(string) {})
	}

	s := &Shell{
		cfg:       cfg,
		doc:       doc,
		navigator: navigator,
		themes:    themes,
		dropdowns: make(map[string]*Dropdown),
		layout:    LayoutDesktop,
		path:      "/",
	}
	for _, e := range cfg.Entries {
		if e.HasMenu() {
			s.dropdowns[e.Label] = &Dropdown{entry: e, shell: s}
		}
	}
	s.drawer = NewDrawer(doc, DrawerLinks(cfg), func(from, to DrawerState) {
		logger.Debug("Drawer transition", "from", string(from), "to", string(to))
	})
	return s
}

// Mount attaches the shell's listeners to its document. Mounting twice is a no-op.
func (s *Shell) Mount(path string) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.path = normalizePath(path)

	s.scroll = NewScrollObserver(s.doc, s.cfg.CondenseThreshold, func(c bool) {
		logger.Debug("Navigation bar condensed state changed", "condensed", strconv.FormatBool(c))
	})
	s.detach = append(s.detach,
		s.scroll.Detach,
		s.doc.AddListener(EventResize, s.guard(s.handleResize)),
		s.doc.AddListener(EventClick, s.guard(s.handleClick)),
		s.doc.AddListener(EventKeyDown, s.guard(s.handleKey)),
		s.doc.AddListener(EventMouseLeave, s.guard(s.handleMouseLeave)),
	)
}

// Unmount detaches every listener and gives back the scroll lock even if the
// drawer was never closed. Handlers that fire afterwards do nothing.
func (s *Shell) Unmount() {
	if !s.mounted {
		return
	}
	s.drawer.Close()
	s.activeDropdown = ""
	if s.themes != nil {
		s.themes.CloseMenu()
	}

	for _, fn := range s.detach {
		fn()
	}
	s.detach = nil
	s.mounted = false
}

// Mounted reports whether listeners are attached
func (s *Shell) Mounted() bool {
	return s.mounted
}

// guard wraps a listener so it is inert once the shell is unmounted
func (s *Shell) guard(l Listener) Listener {
	return func(e Event) {
		if !s.mounted {
			return
		}
		l(e)
	}
}

func (s *Shell) handleResize(e Event) {
	s.layout = Detect(e.Width, s.cfg.DesktopMinWidth)
	if s.layout == LayoutDesktop && s.drawer.IsOpen() {
		s.drawer.Close()
	}
}

func (s *Shell) handleClick(e Event) {
	switch {
	case e.Target == DrawerTriggerID:
		s.activeDropdown = ""
		s.drawer.Toggle(DrawerTriggerID)
		return
	case s.themes != nil && e.Target == ThemeTriggerID:
		s.activeDropdown = ""
		s.themes.ToggleMenu()
		return
	}

	for label, d := range s.dropdowns {
		if e.Target == MenuTriggerID(label) {
			d.Toggle()
			if s.themes != nil {
				s.themes.CloseMenu()
			}
			return
		}
	}

	if d := s.openDropdown(); d != nil {
		d.handleClick(e)
	}
	if s.themes != nil && s.themes.MenuOpen() && !within(e.Target, ThemeMenuID) {
		s.themes.CloseMenu()
	}
}

func (s *Shell) handleKey(e Event) {
	if e.Key != KeyEscape {
		return
	}
	s.activeDropdown = ""
	if s.themes != nil {
		s.themes.CloseMenu()
	}
}

func (s *Shell) handleMouseLeave(e Event) {
	if d := s.openDropdown(); d != nil {
		d.handleMouseLeave(e)
	}
}

func (s *Shell) openDropdown() *Dropdown {
	if s.activeDropdown == "" {
		return nil
	}
	return s.dropdowns[s.activeDropdown]
}

// Dropdown returns the controller for a top-level entry
func (s *Shell) Dropdown(label string) (*Dropdown, error) {
	if d, ok := s.dropdowns[label]; ok {
		return d, nil
	}
	if _, ok := findEntry(s.cfg.Entries, label); ok {
		return nil, ErrNotDropdown
	}
	return nil, ErrUnknownEntry
}

// OpenDropdown opens the named dropdown and closes any other
func (s *Shell) OpenDropdown(label string) error {
	if !s.mounted {
		return ErrUnmounted
	}
	d, err := s.Dropdown(label)
	if err != nil {
		return err
	}
	d.Open()
	return nil
}

// CloseDropdowns closes whichever dropdown is open
func (s *Shell) CloseDropdowns() {
	s.activeDropdown = ""
}

// ActiveDropdown returns the label of the open dropdown, "" when none is open
func (s *Shell) ActiveDropdown() string {
	return s.activeDropdown
}

// OpenDrawer opens the mobile drawer
func (s *Shell) OpenDrawer() error {
	if !s.mounted {
		return ErrUnmounted
	}
	s.activeDropdown = ""
	s.drawer.Open(DrawerTriggerID)
	return nil
}

// CloseDrawer closes the mobile drawer
func (s *Shell) CloseDrawer() {
	s.drawer.Close()
}

// Drawer returns the drawer controller
func (s *Shell) Drawer() *Drawer {
	return s.drawer
}

// Navigate is a route change: every overlay closes first, then the navigator
// is asked to move to path.
func (s *Shell) Navigate(path string) error {
	if !s.mounted {
		return ErrUnmounted
	}
	s.drawer.Close()
	s.activeDropdown = ""
	if s.themes != nil {
		s.themes.CloseMenu()
	}

	s.path = normalizePath(path)
	s.navigator.Navigate(s.path)
	return nil
}

// Path returns the current route
func (s *Shell) Path() string {
	return s.path
}

// Config returns the shell's configuration
func (s *Shell) Config() Config {
	return s.cfg
}

// Themes returns the theme controller, nil when the bar has none
func (s *Shell) Themes() *theme.Controller {
	return s.themes
}

// Condensed reports whether the bar is in its condensed mode
func (s *Shell) Condensed() bool {
	return s.scroll != nil && s.scroll.Condensed()
}

// Snapshot captures the current state for rendering or the wire
func (s *Shell) Snapshot() State {
	st := State{
		Path:         s.path,
		Condensed:    s.Condensed(),
		Layout:       s.layout,
		Drawer:       s.drawer.State(),
		Dropdown:     s.activeDropdown,
		Focused:      s.doc.Focused(),
		ScrollLocked: s.doc.ScrollLock().Locked(),
		Mounted:      s.mounted,
	}
	if i := ActiveEntry(s.path, s.cfg.Entries); i >= 0 {
		st.Active = s.cfg.Entries[i].Label
	}
	if s.themes != nil {
		st.Theme = s.themes.Current().Value
		st.ThemeMenuOpen = s.themes.MenuOpen()
	}
	return st
}

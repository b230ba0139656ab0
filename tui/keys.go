package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Drawer   key.Binding
	Theme    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Escape   key.Binding
	ScrollDn key.Binding
	ScrollUp key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev entry")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next entry")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev item")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next item")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/go")),
		Drawer:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "drawer")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "themes")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus next")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus prev")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ScrollDn: key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn/J", "scroll down")),
		ScrollUp: key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup/K", "scroll up")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Drawer, k.Theme, k.Escape, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Select},
		{k.Drawer, k.Tab, k.ShiftTab, k.Escape},
		{k.Theme, k.ScrollDn, k.ScrollUp, k.Help, k.Quit},
	}
}

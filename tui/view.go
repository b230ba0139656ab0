package tui

import (
	"fmt"
	"strings"

	"devfort/nav"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.shell.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderBar(st))

	switch {
	case st.Drawer == nav.DrawerOpen:
		b.WriteString("\n" + m.renderDrawer(st))
	case st.Dropdown != "":
		b.WriteString("\n" + m.renderDropdown(st))
	case st.ThemeMenuOpen:
		b.WriteString("\n" + m.renderThemes(st))
	}

	b.WriteString("\n" + statusStyle.Render(statusLine(st)))
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) renderBar(st nav.State) string {
	parts := []string{brandStyle.Render(m.cfg.Brand) + "  "}

	if st.Layout == nav.LayoutMobile {
		parts = append(parts, mutedStyle.Render("☰ menu (m)"))
	} else {
		for i, e := range m.cfg.Entries {
			label := e.Label
			if e.HasMenu() {
				label += " ▾"
			}
			style := entryStyle
			if e.Label == st.Active {
				style = activeEntryStyle
			}
			if i == m.cursor {
				label = cursorEntryStyle.Render("› " + label)
			}
			parts = append(parts, style.Render(label))
		}
		parts = append(parts, selectedStyle.Render("["+m.cfg.CTA.Label+"]"))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if st.Condensed {
		return condensedBarStyle.Render(bar)
	}
	return barStyle.Render(bar)
}

func (m Model) renderDropdown(st nav.State) string {
	d, err := m.shell.Dropdown(st.Dropdown)
	if err != nil {
		return ""
	}

	lines := []string{brandStyle.Render(st.Dropdown)}
	i := 0
	for _, c := range d.Children() {
		line := c.Label
		if c.Featured {
			line += " ★"
		}
		if c.Description != "" {
			line += "  " + mutedStyle.Render(c.Description)
		}
		lines = append(lines, m.menuLine(i, line))
		i++
	}
	for _, g := range d.Groups() {
		lines = append(lines, mutedStyle.Render(strings.ToUpper(g.Name)))
		for _, l := range g.Links {
			lines = append(lines, m.menuLine(i, "  "+l.Label))
			i++
		}
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) menuLine(i int, text string) string {
	if i == m.menuCursor {
		return selectedStyle.Render("▸ " + text)
	}
	return "  " + text
}

func (m Model) renderDrawer(st nav.State) string {
	closeLine := "  [×] close"
	if st.Focused == nav.DrawerCloseID {
		closeLine = selectedStyle.Render("▸ [×] close")
	}

	lines := []string{brandStyle.Render(m.cfg.Brand), closeLine}
	for i, l := range m.shell.Drawer().Links() {
		text := l.Label
		if nav.IsActive(st.Path, l.Path) {
			text += " •"
		}
		if nav.DrawerItemID(i) == st.Focused {
			lines = append(lines, selectedStyle.Render("▸ "+text))
			continue
		}
		lines = append(lines, "  "+text)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderThemes(st nav.State) string {
	lines := []string{brandStyle.Render("Theme")}
	for i, o := range m.shell.Themes().Catalog() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(o.Swatch)).Render("●")
		mark := " "
		if o.Value == st.Theme {
			mark = "✓"
		}
		lines = append(lines, m.menuLine(i, fmt.Sprintf("%s %s %s", mark, swatch, o.Name)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func statusLine(st nav.State) string {
	parts := []string{"path " + st.Path, "layout " + string(st.Layout), "theme " + st.Theme}
	if st.Condensed {
		parts = append(parts, "condensed")
	}
	if st.ScrollLocked {
		parts = append(parts, "scroll locked")
	}
	return strings.Join(parts, " · ")
}

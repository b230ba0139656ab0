package components

import (
	"strconv"

	"devfort/nav"

	"github.com/rohanthewiz/element"
)

// Navbar is the fixed top bar: brand, desktop links and dropdowns, theme control,
// call-to-action and the drawer trigger.
type Navbar struct {
	NavProps
}

func (n Navbar) Render(b *element.Builder) (x any) {
	cls := "nav-bar"
	if n.State.Condensed {
		cls += " condensed"
	}
	active := n.activeIndex()

	b.Header("id", nav.BarID,
		"class", cls,
		"data-condense-threshold", strconv.Itoa(n.Config.CondenseThreshold),
		"data-desktop-min", strconv.Itoa(n.Config.DesktopMinWidth)).R(
		b.DivClass("nav-inner").R(
			// Brand
			b.A("href", "/", "class", "brand").R(
				b.SpanClass("brand-mark").T("DF"),
				b.SpanClass("brand-text").R(
					b.SpanClass("brand-name").T(n.Config.Brand),
					b.Wrap(func() {
						if n.Config.Tagline != "" {
							b.SpanClass("brand-tagline").T(n.Config.Tagline)
						}
					}),
				),
			),

			// Desktop links
			b.Nav("class", "nav-links", "aria-label", "Main").R(
				b.UlClass("nav-list").R(
					b.Wrap(func() {
						for i, e := range n.Config.Entries {
							n.renderEntry(b, e, i == active)
						}
					}),
				),
			),

			b.DivClass("nav-actions").R(
				element.RenderComponents(b, ThemeSwitcher{NavProps: n.NavProps}),
				b.A("href", n.Config.CTA.Path, "class", "btn btn-primary nav-cta").T(n.Config.CTA.Label),
				b.Button("type", "button",
					"id", nav.DrawerTriggerID,
					"class", "nav-burger",
					"aria-label", "Open menu",
					"aria-controls", nav.DrawerID,
					"aria-expanded", boolAttr(n.State.Drawer == nav.DrawerOpen),
					"data-nav-click", "").T("☰"),
			),
		),
	)
	return
}

func (n Navbar) renderEntry(b *element.Builder, e nav.Entry, active bool) {
	if !e.HasMenu() {
		b.Li("class", "nav-item").R(
			b.A(linkAttrs(e.Path, "nav-link", active)...).R(
				b.SpanClass("nav-icon").T(Icon(e.Icon)),
				b.SpanClass("nav-label").T(e.Label),
			),
		)
		return
	}

	open := n.State.Dropdown == e.Label
	triggerCls := "nav-link menu-trigger"
	if active {
		triggerCls += " active"
	}

	b.Li("class", "nav-item has-menu", "data-region", nav.MenuID(e.Label), "data-label", e.Label).R(
		b.Button("type", "button",
			"id", nav.MenuTriggerID(e.Label),
			"class", triggerCls,
			"aria-haspopup", "true",
			"aria-expanded", boolAttr(open),
			"aria-controls", nav.MenuID(e.Label),
			"data-nav-click", "").R(
			b.SpanClass("nav-icon").T(Icon(e.Icon)),
			b.SpanClass("nav-label").T(e.Label),
			b.SpanClass("chevron").T("▾"),
		),
		element.RenderComponents(b, DropdownMenu{Entry: e, Open: open, CurrentPath: n.State.Path}),
	)
}

// linkAttrs marks the active link for both styling and assistive technology
func linkAttrs(path, cls string, active bool) []string {
	if active {
		return []string{"href", path, "class", cls + " active", "aria-current", "page"}
	}
	return []string{"href", path, "class", cls}
}

package components

import (
	"devfort/nav"

	"github.com/rohanthewiz/element"
)

// Drawer is the mobile slide-in panel. It is a modal dialog over a backdrop
// listing every navigation link, the call-to-action last.
type Drawer struct {
	NavProps
}

func (d Drawer) Render(b *element.Builder) (x any) {
	state := d.State.Drawer
	if state == "" {
		state = nav.DrawerClosed
	}
	open := state == nav.DrawerOpen
	links := nav.DrawerLinks(d.Config)
	ctaIndex := -1
	if d.Config.CTA.Path != "" {
		ctaIndex = len(links) - 1
	}

	backdrop := []string{"id", nav.DrawerBackdropID, "class", "drawer-backdrop", "data-nav-click", ""}
	panel := []string{"id", nav.DrawerID,
		"class", "drawer drawer-" + string(state),
		"role", "dialog",
		"aria-modal", "true",
		"aria-label", "Site navigation",
		"aria-hidden", boolAttr(!open)}
	if !open {
		backdrop = append(backdrop, "hidden", "hidden")
		panel = append(panel, "hidden", "hidden")
	}

	b.Div(backdrop...).R()
	b.Aside(panel...).R(
		b.DivClass("drawer-header").R(
			b.SpanClass("brand-name").T(d.Config.Brand),
			b.Button("type", "button",
				"id", nav.DrawerCloseID,
				"class", "drawer-close",
				"aria-label", "Close menu",
				"data-nav-click", "").T("×"),
		),
		b.Nav("class", "drawer-nav", "aria-label", "Mobile").R(
			b.UlClass("drawer-list").R(
				b.Wrap(func() {
					for i, l := range links {
						cls := "drawer-link"
						if i == ctaIndex {
							cls = "btn btn-primary drawer-cta"
						}
						attrs := append([]string{"id", nav.DrawerItemID(i), "data-nav-navigate", l.Path},
							linkAttrs(l.Path, cls, i != ctaIndex && nav.IsActive(d.State.Path, l.Path))...)
						b.Li().R(
							b.A(attrs...).T(l.Label),
						)
					}
				}),
			),
		),
	)
	return
}

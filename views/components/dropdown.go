package components

import (
	"strconv"

	"devfort/nav"

	"github.com/rohanthewiz/element"
)

// DropdownMenu is the mega-menu panel of one top-level entry
type DropdownMenu struct {
	Entry       nav.Entry
	Open        bool
	CurrentPath string
}

func (d DropdownMenu) Render(b *element.Builder) (x any) {
	id := nav.MenuID(d.Entry.Label)
	attrs := []string{"id", id, "class", "mega-menu", "role", "menu", "aria-label", d.Entry.Label}
	if d.Open {
		attrs[3] = "mega-menu open"
	} else {
		attrs = append(attrs, "hidden", "hidden")
	}

	b.Div(attrs...).R(
		b.DivClass("mega-menu-items").R(
			b.Wrap(func() {
				for i, c := range d.Entry.Children {
					d.renderChild(b, nav.PartID(id, "item-"+strconv.Itoa(i)), c)
				}
			}),
		),

		b.Wrap(func() {
			if len(d.Entry.Groups) == 0 {
				return
			}
			b.DivClass("mega-menu-groups").R(
				b.Wrap(func() {
					for i, g := range d.Entry.Groups {
						b.Div("class", "menu-group", "id", nav.PartID(id, "group-"+strconv.Itoa(i))).R(
							b.H3Class("menu-group-title").T(g.Name),
							b.UlClass("menu-group-links").R(
								element.ForEach(g.Links, func(l nav.Link) {
									b.Li().R(
										b.A(linkAttrs(l.Path, "menu-group-link", nav.IsActive(d.CurrentPath, l.Path))...).T(l.Label),
									)
								}),
							),
						)
					}
				}),
			)
		}),

		b.DivClass("mega-menu-footer").R(
			b.A("href", d.Entry.Path, "class", "menu-view-all").T("View all "+d.Entry.Label+" →"),
		),
	)
	return
}

func (d DropdownMenu) renderChild(b *element.Builder, id string, c nav.ChildEntry) {
	cls := "menu-item"
	if c.Featured {
		cls += " featured"
	}
	attrs := append([]string{"id", id, "role", "menuitem", "data-nav-navigate", c.Path}, linkAttrs(c.Path, cls, c.Path == d.CurrentPath)...)

	b.A(attrs...).R(
		b.SpanClass("menu-item-icon").T(Icon(c.Icon)),
		b.SpanClass("menu-item-text").R(
			b.SpanClass("menu-item-label").T(c.Label),
			b.Wrap(func() {
				if c.Description != "" {
					b.SpanClass("menu-item-desc").T(c.Description)
				}
			}),
		),
		b.Wrap(func() {
			if c.Featured {
				b.SpanClass("badge").T("Featured")
			}
		}),
	)
}

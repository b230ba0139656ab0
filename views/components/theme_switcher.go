package components

import (
	"devfort/nav"
	"devfort/theme"

	"github.com/rohanthewiz/element"
)

// ThemeSwitcher is the palette button and its menu of theme options.
// Each option posts to /theme so the control also works without the script.
type ThemeSwitcher struct {
	NavProps
}

func (t ThemeSwitcher) Render(b *element.Builder) (x any) {
	current := t.currentTheme()
	open := t.State.ThemeMenuOpen

	menu := []string{"id", nav.ThemeMenuID, "class", "theme-menu", "role", "menu", "aria-label", "Theme"}
	if open {
		menu[3] = "theme-menu open"
	} else {
		menu = append(menu, "hidden", "hidden")
	}

	b.DivClass("theme-switcher").R(
		b.Button("type", "button",
			"id", nav.ThemeTriggerID,
			"class", "theme-trigger",
			"title", "Change theme",
			"aria-haspopup", "menu",
			"aria-expanded", boolAttr(open),
			"aria-controls", nav.ThemeMenuID,
			"data-nav-click", "").R(
			b.SpanClass("theme-icon").T("🎨"),
			b.SpanClass("theme-name").T(current.Name),
		),
		b.Div(menu...).R(
			b.Form("method", "post", "action", "/theme", "class", "theme-form").R(
				element.ForEach(t.Themes, func(o theme.Option) {
					b.Button("type", "submit",
						"name", "theme",
						"value", o.Value,
						"id", nav.PartID(nav.ThemeMenuID, "option-"+o.Value),
						"class", "theme-option",
						"role", "menuitemradio",
						"aria-checked", boolAttr(o.Value == current.Value)).R(
						b.Span("class", "swatch", "style", "background:"+o.Swatch).R(),
						b.Span().T(o.Name),
					)
				}),
			),
		),
	)
	return
}

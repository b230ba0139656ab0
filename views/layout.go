package views

import (
	"devfort/views/components"
	"devfort/web/static"

	"github.com/rohanthewiz/element"
)

// BaseLayout creates the HTML document shared by all pages.
// themeValue goes on the root element as data-theme so the stylesheet applies
// the visitor's theme on first paint.
func BaseLayout(title, themeValue string, bodyComponent element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "en", "data-theme", themeValue).R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			b.Link("rel", "icon", "href", "/favicon.ico"),
			b.Link("rel", "stylesheet", "href", static.URL("css/site.css")),
		),
		b.Body().R(
			element.RenderComponents(b, bodyComponent),

			// Forwards browser events to /nav/events and applies the returned state
			b.Script("src", static.URL("js/nav.js"), "defer", "defer").R(),
		),
	)

	return b.String()
}

// SimpleLayout is a minimal document without navigation, for error pages
func SimpleLayout(title string, content element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			b.Link("rel", "stylesheet", "href", static.URL("css/site.css")),
		),
		b.Body().R(
			element.RenderComponents(b, content),
		),
	)

	return b.String()
}

// PageWithNav wraps page content with the navigation bar, the drawer and a footer
type PageWithNav struct {
	Nav     components.NavProps
	Content element.Component
	Footer  element.Component
}

func (p PageWithNav) Render(b *element.Builder) (x any) {
	b.A("href", "#main-content", "class", "skip-link").T("Skip to content")

	element.RenderComponents(b,
		components.Navbar{NavProps: p.Nav},
		components.Drawer{NavProps: p.Nav},
	)

	b.Main("id", "main-content", "class", "page").R(
		element.RenderComponents(b, p.Content),
	)

	if p.Footer != nil {
		element.RenderComponents(b, p.Footer)
	}
	return
}

package pages

import (
	"devfort/views"
	"devfort/views/components"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// View is a page the layout can render
type View interface {
	element.Component
	PageTitle() string
	Footer() shared.Footer
}

// Render places the page inside the navigation layout for the visitor's state
func Render(v View, props components.NavProps) string {
	return views.BaseLayout(v.PageTitle(), props.Themes.Resolve(props.State.Theme).Value, views.PageWithNav{
		Nav:     props,
		Content: v,
		Footer:  v.Footer(),
	})
}

package pages

import (
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// NotFound is rendered for unknown routes
type NotFound struct {
	shared.Page
}

var NotFoundPage = NotFound{Page: shared.Page{Title: "Page not found", Subtitle: "The page you are looking for does not exist."}}

func (n NotFound) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, n.Banner())
	b.A("href", "/", "class", "btn btn-primary").T("Back to home")
	return
}

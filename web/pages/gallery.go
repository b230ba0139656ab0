package pages

import (
	"devfort/catalog"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Gallery is a grid of photos
type Gallery struct {
	shared.Page
}

var GalleryPage = Gallery{Page: shared.Page{Title: "Gallery", Subtitle: "A look inside our favourite homes"}}

func (g Gallery) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, g.Banner())

	b.DivClass("gallery-grid").R(
		element.ForEach(catalog.Gallery, func(p catalog.Photo) {
			b.DivClass("gallery-item").R(
				b.Img("src", p.Image, "alt", p.Title, "loading", "lazy"),
				b.SpanClass("gallery-caption").T(p.Title),
			)
		}),
	)
	return
}

package comps

import (
	"strconv"

	"devfort/catalog"

	"github.com/rohanthewiz/element"
)

// PropertyCard renders one listing
type PropertyCard struct {
	Property catalog.Property
}

func (p PropertyCard) Render(b *element.Builder) (x any) {
	prop := p.Property
	b.Article("class", "property-card", "id", "property-"+strconv.Itoa(prop.ID)).R(
		b.DivClass("property-media").R(
			b.Img("src", prop.Image, "alt", prop.Title, "loading", "lazy"),
			b.Wrap(func() {
				if prop.Featured {
					b.SpanClass("badge badge-featured").T("Featured")
				}
			}),
			b.SpanClass("property-price").T(prop.Price),
		),
		b.DivClass("property-body").R(
			b.H3Class("property-title").T(prop.Title),
			b.PClass("property-location").T("📍 "+prop.Location),
			b.DivClass("property-facts").R(
				b.Span().T(strconv.Itoa(prop.Beds)+" beds"),
				b.Span().T(strconv.Itoa(prop.Baths)+" baths"),
				b.Span().T(prop.SqFt+" sqft"),
				b.SpanClass("badge badge-outline").T(prop.Type),
			),
		),
	)
	return
}

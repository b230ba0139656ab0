// Package pages contains the content of every page of the site.
// Each page embeds shared.Page and renders into the navigation layout.
package pages

import (
	"devfort/catalog"
	"devfort/media"
	"devfort/nav"
	"devfort/views/components"
	"devfort/web/pages/comps"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Home is the landing page: hero over the background media, headline stats
// and the featured listings.
type Home struct {
	shared.Page
	Background media.Choice
}

// NewHome builds the landing page over the resolved background
func NewHome(bg media.Choice) Home {
	return Home{
		Page:       shared.Page{Title: "Home"},
		Background: bg,
	}
}

func (h Home) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, components.Hero{
		Background: h.Background,
		Title:      "Find the home that fits your life",
		Subtitle:   "Hand-picked properties and the engineering behind them.",
		CTA:        "Browse properties",
		CTAPath:    "/properties",
	})

	b.Section("class", "stats").R(
		b.DivClass("stats-grid").R(
			element.ForEach(catalog.Stats, func(s catalog.Stat) {
				b.DivClass("stat-card").R(
					b.SpanClass("stat-icon").T(components.Icon(nav.IconRef(s.Icon))),
					b.SpanClass("stat-value").T(s.Value),
					b.SpanClass("stat-label").T(s.Label),
					b.PClass("stat-desc").T(s.Description),
				)
			}),
		),
	)

	b.Section("class", "featured", "id", "featured").R(
		element.RenderComponents(b, comps.Heading{
			Title: "Featured Properties",
			Lead:  "Handpicked exclusive properties from our premium collection",
		}),
		b.DivClass("property-grid").R(
			element.ForEach(catalog.Featured(catalog.Properties), func(p catalog.Property) {
				element.RenderComponents(b, comps.PropertyCard{Property: p})
			}),
		),
	)
	return
}

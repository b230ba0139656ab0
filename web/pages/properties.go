package pages

import (
	"html"
	"strconv"

	"devfort/catalog"
	"devfort/web/pages/comps"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Properties lists the listings, optionally narrowed by type and a search term
type Properties struct {
	shared.Page
	Type     string
	Query    string
	Listings []catalog.Property
}

// NewProperties filters the catalog by type ("" for all) and search term
func NewProperties(typ, query string) Properties {
	listings := catalog.Search(catalog.FilterByType(catalog.Properties, typ), query)
	title := "Properties"
	if typ != "" {
		title = "Properties: " + html.EscapeString(typ)
	}
	return Properties{
		Page:     shared.Page{Title: title, Subtitle: strconv.Itoa(len(listings)) + " listings"},
		Type:     typ,
		Query:    query,
		Listings: listings,
	}
}

func (p Properties) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, p.Banner())

	b.Form("method", "get", "action", "/properties", "class", "property-search", "role", "search").R(
		b.Input("type", "hidden", "name", "type", "value", html.EscapeString(p.Type)),
		b.Input("type", "search",
			"name", "q",
			"value", html.EscapeString(p.Query),
			"placeholder", "Search by location, type, or name...",
			"class", "search-input"),
		b.Button("type", "submit", "class", "btn btn-primary").T("Search"),
	)

	b.Wrap(func() {
		if len(p.Listings) == 0 {
			b.PClass("empty-state").T("No properties match your search.")
			return
		}
		b.DivClass("property-grid").R(
			element.ForEach(p.Listings, func(prop catalog.Property) {
				element.RenderComponents(b, comps.PropertyCard{Property: prop})
			}),
		)
	})
	return
}

package pages

import (
	"devfort/catalog"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Pricing shows the plans
type Pricing struct {
	shared.Page
}

var PricingPage = Pricing{Page: shared.Page{Title: "Pricing", Subtitle: "Choose the plan that fits"}}

func (p Pricing) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, p.Banner())

	b.DivClass("plan-grid").R(
		element.ForEach(catalog.Plans, func(plan catalog.Plan) {
			cls := "plan-card"
			if plan.Popular {
				cls += " popular"
			}
			b.DivClass(cls).R(
				b.Wrap(func() {
					if plan.Popular {
						b.SpanClass("badge").T("Most popular")
					}
				}),
				b.H2Class("plan-name").T(plan.Name),
				b.PClass("plan-price").R(
					b.SpanClass("amount").T(plan.Price),
					b.SpanClass("period").T("/"+plan.Period),
				),
				b.UlClass("plan-features").R(
					element.ForEach(plan.Features, func(f string) {
						b.Li().T("✓ " + f)
					}),
				),
				b.A("href", "/contact", "class", "btn btn-primary").T("Get started"),
			)
		}),
	)
	return
}

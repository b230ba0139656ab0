package comps

import "github.com/rohanthewiz/element"

// Heading is a section title with an optional lead paragraph
type Heading struct {
	Title string
	Lead  string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.DivClass("section-heading").R(
		b.H2Class("section-title").T(h.Title),
		b.Wrap(func() {
			if h.Lead != "" {
				b.PClass("section-lead").T(h.Lead)
			}
		}),
	)
	return
}

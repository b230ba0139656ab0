package shared

import "github.com/rohanthewiz/element"

// Banner is the heading band at the top of an inner page
type Banner struct {
	Title    string
	Subtitle string
}

func (b Banner) Render(builder *element.Builder) any {
	builder.DivClass("page-banner").R(
		builder.H1Class("page-title").T(b.Title),
		builder.Wrap(func() {
			if b.Subtitle != "" {
				builder.PClass("page-subtitle").T(b.Subtitle)
			}
		}),
	)
	return nil
}

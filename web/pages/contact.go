package pages

import (
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Contact lists the ways to get in touch
type Contact struct {
	shared.Page
	Email string
	Phone string
}

var ContactPage = Contact{
	Page:  shared.Page{Title: "Contact", Subtitle: "We usually answer within a day"},
	Email: "hello@devfort.dev",
	Phone: "+1 (555) 010-2040",
}

func (c Contact) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, c.Banner())

	b.DivClass("contact-grid").R(
		b.DivClass("contact-card").R(
			b.H3().T("✉ Email"),
			b.A("href", "mailto:"+c.Email).T(c.Email),
		),
		b.DivClass("contact-card").R(
			b.H3().T("📞 Phone"),
			b.A("href", "tel:"+c.Phone).T(c.Phone),
		),
		b.DivClass("contact-card").R(
			b.H3().T("📍 Office"),
			b.P().T("Beverly Hills, CA"),
		),
	)
	return
}

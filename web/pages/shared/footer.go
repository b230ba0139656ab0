package shared

import (
	"strconv"
	"time"

	"github.com/rohanthewiz/element"
)

// Footer is the site footer with social links
type Footer struct{}

var socialLinks = []struct{ Label, URL string }{
	{"GitHub", "https://github.com"},
	{"Twitter", "https://twitter.com"},
	{"LinkedIn", "https://linkedin.com"},
	{"Instagram", "https://instagram.com"},
}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "site-footer").R(
		b.DivClass("footer-inner").R(
			b.UlClass("footer-social").R(
				b.Wrap(func() {
					for _, s := range socialLinks {
						b.Li().R(
							b.A("href", s.URL, "rel", "noopener", "target", "_blank").T(s.Label),
						)
					}
				}),
			),
			b.P("class", "footer-copy").T("Copyright &copy; "+strconv.Itoa(time.Now().Year())+" DevFort"),
		),
	)
	return nil
}

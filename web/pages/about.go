package pages

import (
	"devfort/web/pages/comps"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// About introduces the studio
type About struct {
	shared.Page
}

var AboutPage = About{Page: shared.Page{Title: "About", Subtitle: "Engineering and real estate under one roof"}}

func (a About) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, a.Banner())

	b.Section("class", "prose").R(
		b.P().T("DevFort pairs a full-stack engineer with a curated property showcase. "+
			"Every listing on this site is served by the same stack described on the skills page."),
		b.P().T("We care about fast pages, accessible navigation and honest listings."),
	)

	b.Section("class", "values").R(
		element.RenderComponents(b, comps.Heading{Title: "What we value"}),
		b.UlClass("value-list").R(
			b.Li().T("🎯 Focus on what visitors need"),
			b.Li().T("🛡 Security by default"),
			b.Li().T("⚡ Speed on every device"),
			b.Li().T("❤ Care for the details"),
		),
	)
	return
}

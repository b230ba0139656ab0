package pages

import (
	"devfort/catalog"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Timeline renders a list of milestones; it backs both Experience and Education
type Timeline struct {
	shared.Page
	Milestones []catalog.Milestone
}

var ExperiencePage = Timeline{
	Page:       shared.Page{Title: "Experience", Subtitle: "5+ years of building for the web"},
	Milestones: catalog.Experience,
}

var EducationPage = Timeline{
	Page:       shared.Page{Title: "Education", Subtitle: "Degrees and certifications"},
	Milestones: catalog.Education,
}

func (t Timeline) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, t.Banner())

	b.UlClass("timeline").R(
		element.ForEach(t.Milestones, func(m catalog.Milestone) {
			b.Li("class", "timeline-item").R(
				b.SpanClass("timeline-period").T(m.Period),
				b.H3Class("timeline-title").T(m.Title),
				b.SpanClass("timeline-place").T(m.Place),
				b.PClass("timeline-detail").T(m.Detail),
			)
		}),
	)
	return
}

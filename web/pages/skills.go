package pages

import (
	"devfort/catalog"
	"devfort/nav"
	"devfort/views/components"
	"devfort/web/pages/comps"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Skills shows the skill categories and, on topic pages, the focused topic
type Skills struct {
	shared.Page
	Topic  nav.Link
	Groups []nav.Group
}

// NewSkills builds the skills page. topic is the zero Link on the overview.
func NewSkills(topic nav.Link, groups []nav.Group) Skills {
	p := Skills{Page: shared.Page{Title: "Skills & Expertise"}, Topic: topic, Groups: groups}
	if topic.Label != "" {
		p.Subtitle = topic.Label
	}
	return p
}

func (s Skills) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, s.Banner())

	b.DivClass("skill-grid").R(
		element.ForEach(catalog.Skills, func(c catalog.SkillCategory) {
			b.DivClass("skill-card").R(
				b.SpanClass("skill-icon").T(components.Icon(nav.IconRef(c.Icon))),
				b.H3Class("skill-title").T(c.Title),
				b.UlClass("skill-list").R(
					element.ForEach(c.Skills, func(skill string) {
						b.Li("class", "skill-chip").T(skill)
					}),
				),
			)
		}),
	)

	b.Wrap(func() {
		if len(s.Groups) == 0 {
			return
		}
		b.Section("class", "technologies").R(
			element.RenderComponents(b, comps.Heading{Title: "Technologies"}),
			b.DivClass("tech-groups").R(
				element.ForEach(s.Groups, func(g nav.Group) {
					b.DivClass("tech-group").R(
						b.H3().T(g.Name),
						b.UlClass("tech-list").R(
							element.ForEach(g.Links, func(l nav.Link) {
								cls := "tech-link"
								if l.Path == s.Topic.Path {
									cls += " active"
								}
								b.Li().R(b.A("href", l.Path, "class", cls).T(l.Label))
							}),
						),
					)
				}),
			),
		)
	})
	return
}

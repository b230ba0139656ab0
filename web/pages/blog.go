package pages

import (
	"devfort/catalog"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Blog lists the articles
type Blog struct {
	shared.Page
}

var BlogPage = Blog{Page: shared.Page{Title: "Blog", Subtitle: "Notes on building for the web"}}

func (bl Blog) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, bl.Banner())

	b.DivClass("post-grid").R(
		element.ForEach(catalog.Posts, func(p catalog.Post) {
			b.Article("class", "post-card").R(
				b.SpanClass("badge badge-"+p.Category).T(p.Category),
				b.H2Class("post-title").R(
					b.A("href", "/blog/"+p.Slug).T(p.Title),
				),
				b.PClass("post-excerpt").T(p.Excerpt),
				postMeta(b, p),
			)
		}),
	)
	return
}

// Article is a single post
type Article struct {
	shared.Page
	Post catalog.Post
}

// NewArticle builds the page for one post
func NewArticle(p catalog.Post) Article {
	return Article{Page: shared.Page{Title: p.Title, Subtitle: p.Category}, Post: p}
}

func (a Article) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, a.Banner())

	b.Article("class", "post prose").R(
		postMeta(b, a.Post),
		b.PClass("post-lead").T(a.Post.Excerpt),
		b.A("href", "/blog", "class", "back-link").T("← All articles"),
	)
	return
}

func postMeta(b *element.Builder, p catalog.Post) any {
	return b.DivClass("post-meta").R(
		b.Span().T(p.Author),
		b.Span().T(p.Date),
		b.Span().T(p.ReadTime),
	)
}

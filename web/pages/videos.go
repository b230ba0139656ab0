package pages

import (
	"html"
	"net/url"
	"strconv"

	"devfort/catalog"
	"devfort/web/pages/comps"
	"devfort/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// VideosPath is where the video gallery lives
const VideosPath = "/gallery/videos"

// VideoGallery lists the tutorial steps for one category and, when a step was
// picked, shows its player over the list.
type VideoGallery struct {
	shared.Page
	Category string
	Videos   []catalog.VideoStep
	Playing  *catalog.VideoStep
}

// NewVideoGallery filters the steps by category. playing may be nil.
func NewVideoGallery(category string, playing *catalog.VideoStep) VideoGallery {
	category = catalog.VideoCategory(category)
	return VideoGallery{
		Page:     shared.Page{Title: "Video Gallery", Subtitle: "Follow our step-by-step video tutorials to master every aspect"},
		Category: category,
		Videos:   catalog.FilterVideos(catalog.VideoSteps, category),
		Playing:  playing,
	}
}

// VideoListURL links the gallery filtered by category
func VideoListURL(category string) string {
	if category == "" || category == catalog.AllVideos {
		return VideosPath
	}
	return VideosPath + "?" + url.Values{"category": {category}}.Encode()
}

func (g VideoGallery) playURL(v catalog.VideoStep) string {
	q := url.Values{"play": {strconv.Itoa(v.ID)}}
	if g.Category != catalog.AllVideos {
		q.Set("category", g.Category)
	}
	return VideosPath + "?" + q.Encode()
}

func (g VideoGallery) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, g.Banner())

	categories := append([]string{catalog.AllVideos}, catalog.VideoCategories...)
	b.Nav("class", "video-filter", "aria-label", "Video categories").R(
		element.ForEach(categories, func(c string) {
			if c == g.Category {
				b.A("href", html.EscapeString(VideoListURL(c)), "class", "filter-chip active", "aria-current", "true").T(c)
				return
			}
			b.A("href", html.EscapeString(VideoListURL(c)), "class", "filter-chip").T(c)
		}),
	)

	b.Wrap(func() {
		if len(g.Videos) == 0 {
			b.PClass("empty-state").T("No videos in this category yet.")
			return
		}
		b.DivClass("video-grid").R(
			element.ForEach(g.Videos, func(v catalog.VideoStep) {
				b.A("href", html.EscapeString(g.playURL(v)), "class", "video-card").R(
					b.DivClass("video-thumb").R(
						b.Img("src", v.Thumbnail, "alt", v.Title, "loading", "lazy").R(),
						b.SpanClass("video-play").T("▶"),
						b.SpanClass("video-duration").T(v.Duration),
					),
					b.DivClass("video-info").R(
						b.DivClass("video-meta").R(
							b.SpanClass("badge badge-"+html.EscapeString(v.Category)).T(v.Category),
							b.SpanClass("video-number").T("Video "+strconv.Itoa(v.ID)),
						),
						b.H3().T(v.Title),
						b.P().T(v.Description),
					),
				)
			}),
		)
	})

	b.Section("class", "learning-path").R(
		element.RenderComponents(b, comps.Heading{Title: "Your Learning Path"}),
		b.DivClass("learning-steps").R(
			element.ForEach(catalog.VideoCategories, func(c string) {
				b.SpanClass("badge badge-"+c).T(c)
			}),
		),
	)

	b.Wrap(func() {
		if g.Playing != nil {
			g.renderPlayer(b, *g.Playing)
		}
	})
	return
}

// renderPlayer is the modal player. Closing is a plain link back to the list.
func (g VideoGallery) renderPlayer(b *element.Builder, v catalog.VideoStep) {
	src := html.EscapeString(v.URL)
	b.Div("class", "video-modal", "role", "dialog", "aria-modal", "true", "aria-label", html.EscapeString(v.Title)).R(
		b.A("href", html.EscapeString(VideoListURL(g.Category)), "class", "video-modal-backdrop", "aria-hidden", "true").R(),
		b.DivClass("video-modal-body").R(
			b.A("href", html.EscapeString(VideoListURL(g.Category)), "class", "video-modal-close", "aria-label", "Close video").T("×"),
			b.Wrap(func() {
				if v.Embedded() {
					b.IFrame("src", src, "title", html.EscapeString(v.Title),
						"allow", "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share",
						"referrerpolicy", "strict-origin-when-cross-origin", "allowfullscreen", "allowfullscreen").R()
					return
				}
				b.Video("controls", "controls", "autoplay", "autoplay", "playsinline", "playsinline").R(
					b.Source("src", src, "type", "video/mp4").R(),
				)
			}),
			b.H3().T(v.Title),
		),
	)
}

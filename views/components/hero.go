package components

import (
	"html"

	"devfort/media"

	"github.com/rohanthewiz/element"
)

// Hero is the full-bleed landing section over the resolved background
type Hero struct {
	Background media.Choice
	Title      string
	Subtitle   string
	CTA        string
	CTAPath    string
}

func (h Hero) fallback() string {
	switch {
	case h.Background.Fallback != "":
		return h.Background.Fallback
	case !h.Background.Video && h.Background.URL != "":
		return h.Background.URL
	}
	return media.DefaultFallback
}

func (h Hero) Render(b *element.Builder) (x any) {
	b.Section("class", "hero").R(
		b.DivClass("hero-media").R(
			b.Wrap(func() {
				fallback := html.EscapeString(h.fallback())
				if !h.Background.Video {
					b.Img("class", "hero-image", "src", fallback, "alt", "").R()
					return
				}
				// The player walks the sources in order; nav.js swaps in the image when the last one fails
				b.Video("class", "hero-video", "autoplay", "autoplay", "muted", "muted", "loop", "loop",
					"playsinline", "playsinline", "preload", "auto", "poster", fallback, "data-fallback", fallback).R(
					element.ForEach(h.Background.Sources(), func(src string) {
						b.Source("src", html.EscapeString(src), "type", "video/mp4").R()
					}),
					b.Img("class", "hero-image", "src", fallback, "alt", "").R(),
				)
			}),
			b.DivClass("hero-overlay").R(),
		),
		b.DivClass("hero-content").R(
			b.H1Class("hero-title").T(h.Title),
			b.PClass("hero-subtitle").T(h.Subtitle),
			b.Wrap(func() {
				if h.CTA != "" {
					b.A("href", h.CTAPath, "class", "btn btn-primary btn-lg").T(h.CTA)
				}
			}),
		),
	)
	return
}

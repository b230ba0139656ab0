package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"devfort/catalog"
	"devfort/config"
	"devfort/media"
	"devfort/nav"
	"devfort/views/components"
	"devfort/web/pages"
	"devfort/web/session"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Pages renders the site's HTML routes with the visitor's navigation state
type Pages struct {
	Site       *config.Site
	Background media.Choice
}

// render closes any open overlay for the new route, then lays out v around the visitor's nav
func (p *Pages) render(c rweb.Context, status int, v pages.View) error {
	props := components.NavProps{Config: p.Site.Config, Themes: p.Site.Themes}

	if sess, ok := session.FromContext(c); ok {
		_ = sess.Do(c, func(s *session.Session) error {
			if err := s.Shell.Navigate(c.Request().Path()); err != nil {
				logger.LogErr(err, "failed to sync navigation with request", "path", c.Request().Path())
			}
			props.State = s.Shell.Snapshot()
			return nil
		})
	} else {
		props.State = nav.State{
			Path:   c.Request().Path(),
			Theme:  p.Site.Themes.Default().Value,
			Drawer: nav.DrawerClosed,
		}
	}

	c.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		c.SetStatus(status)
	}
	return c.WriteHTML(pages.Render(v, props))
}

// Home handles GET /
func (p *Pages) Home(c rweb.Context) error {
	return p.render(c, http.StatusOK, pages.NewHome(p.Background))
}

func (p *Pages) About(c rweb.Context) error {
	return p.render(c, http.StatusOK, pages.AboutPage)
}

// Skills handles GET /skills and GET /skills/:topic.
// A topic must be one of the links under the Skills entry.
func (p *Pages) Skills(c rweb.Context) error {
	entry, _ := p.entryFor("/skills")

	topic := c.Request().Param("topic")
	if topic == "" {
		return p.render(c, http.StatusOK, pages.NewSkills(nav.Link{}, entry.Groups))
	}

	link, ok := findLink(nav.Flatten([]nav.Entry{entry}), "/skills/"+topic)
	if !ok {
		return p.NotFound(c)
	}
	return p.render(c, http.StatusOK, pages.NewSkills(link, entry.Groups))
}

// Properties handles GET /properties and GET /properties/:kind.
// ?type= narrows like :kind does; ?q= searches title, location and type.
func (p *Pages) Properties(c rweb.Context) error {
	kind := c.Request().Param("kind")
	if kind == "" {
		kind = strings.TrimSpace(c.Request().QueryParam("type"))
	}
	query := strings.TrimSpace(c.Request().QueryParam("q"))
	return p.render(c, http.StatusOK, pages.NewProperties(kind, query))
}

func (p *Pages) Experience(c rweb.Context) error {
	return p.render(c, http.StatusOK, pages.ExperiencePage)
}

func (p *Pages) Education(c rweb.Context) error {
	return p.render(c, http.StatusOK, pages.EducationPage)
}

func (p *Pages) Gallery(c rweb.Context) error {
	return p.render(c, http.StatusOK, pages.GalleryPage)
}

// Videos handles GET /gallery/videos.
// ?category= narrows the steps; ?play= opens the player for one step.
func (p *Pages) Videos(c rweb.Context) error {
	category := c.Request().QueryParam("category")

	var playing *catalog.VideoStep
	if raw := strings.TrimSpace(c.Request().QueryParam("play")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return p.NotFound(c)
		}
		v, ok := catalog.VideoByID(id)
		if !ok {
			return p.NotFound(c)
		}
		playing = &v
	}
	return p.render(c, http.StatusOK, pages.NewVideoGallery(category, playing))
}

// Blog handles GET /blog and GET /blog/:slug
func (p *Pages) Blog(c rweb.Context) error {
	slug := c.Request().Param("slug")
	if slug == "" {
		return p.render(c, http.StatusOK, pages.BlogPage)
	}

	post, ok := catalog.PostBySlug(slug)
	if !ok {
		return p.NotFound(c)
	}
	return p.render(c, http.StatusOK, pages.NewArticle(post))
}

func (p *Pages) Pricing(c rweb.Context) error {
	return p.render(c, http.StatusOK, pages.PricingPage)
}

func (p *Pages) Contact(c rweb.Context) error {
	return p.render(c, http.StatusOK, pages.ContactPage)
}

// NotFound renders the 404 page, or a JSON error for API clients
func (p *Pages) NotFound(c rweb.Context) error {
	if c.Request().Header("Accept") == "application/json" {
		return NotFound(c)
	}
	return p.render(c, http.StatusNotFound, pages.NotFoundPage)
}

// entryFor returns the top-level entry routed at path
func (p *Pages) entryFor(path string) (nav.Entry, bool) {
	for _, e := range p.Site.Entries {
		if e.Path == path {
			return e, true
		}
	}
	return nav.Entry{}, false
}

func findLink(links []nav.Link, path string) (nav.Link, bool) {
	for _, l := range links {
		if l.Path == path {
			return l, true
		}
	}
	return nav.Link{}, false
}

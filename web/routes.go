package web

import (
	"devfort/handlers"
	"devfort/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, p *handlers.Pages) {
	// Page routes - HTML responses
	s.Get("/", p.Home)
	s.Get("/about", p.About)
	s.Get("/skills", p.Skills)
	s.Get("/skills/:topic", p.Skills)
	s.Get("/properties", p.Properties)
	s.Get("/properties/:kind", p.Properties)
	s.Get("/experience", p.Experience)
	s.Get("/education", p.Education)
	s.Get("/gallery", p.Gallery)
	s.Get("/gallery/videos", p.Videos)
	s.Get("/blog", p.Blog)
	s.Get("/blog/:slug", p.Blog)
	s.Get("/pricing", p.Pricing)
	s.Get("/contact", p.Contact)

	s.Get("/health", handlers.HealthCheck)

	// Navigation state, driven by static/js/nav.js
	s.Post("/nav/events", api.NavEvents)     // Dispatch one browser event
	s.Get("/nav/state", api.NavState)        // Current state
	s.Post("/nav/navigate", api.NavNavigate) // Close overlays, then go to a route

	s.Post("/theme", api.SelectTheme)
}

package web

import (
	"devfort/config"
	"devfort/handlers"
	"devfort/media"
	"devfort/web/session"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Deps is what the server renders and mutates
type Deps struct {
	Site       *config.Site
	Sessions   *session.Registry
	Background media.Choice
	EventRate  int // per visitor per minute, DefaultEventRate when zero
}

// NewServer creates and configures the RWeb server
func NewServer(opts rweb.ServerOptions, deps Deps) *rweb.Server {
	s := rweb.NewServer(opts)

	// Apply middleware
	s.Use(rweb.RequestInfo)
	s.Use(CorsMiddleware)
	s.Use(VisitorMiddleware(deps.Sessions))
	s.Use(EventRateMiddleware(deps.EventRate))
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)

	setupRoutes(s, &handlers.Pages{Site: deps.Site, Background: deps.Background})

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, addr string) error {
	logger.Info("DevFort web server starting", "address", addr)
	return s.Run()
}

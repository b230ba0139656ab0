// Package session keeps one navigation shell per visitor. Requests of the same
// visitor are serialised on the session; sessions idle for too long are unmounted.
package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"devfort/nav"
	"devfort/theme"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// ContextKey is where the middleware stores the visitor's session on the request context
const ContextKey = "nav_session"

var errNoRequest = errors.New("no request bound to session")

// Session is one visitor's navigation state
type Session struct {
	ID     string
	Doc    *nav.Document
	Shell  *nav.Shell
	Themes *theme.Controller

	mu       sync.Mutex
	jar      jarRef
	lastSeen atomic.Int64 // unix nanos, written without mu
	target   string
}

// jarRef points the theme cookie store at whichever request currently holds the session
type jarRef struct {
	jar theme.CookieJar
}

func (r *jarRef) GetCookie(name string) (string, error) {
	if r.jar == nil {
		return "", errNoRequest
	}
	return r.jar.GetCookie(name)
}

func (r *jarRef) SetCookie(name, value string) error {
	if r.jar == nil {
		return nil
	}
	return r.jar.SetCookie(name, value)
}

// Do runs fn with exclusive access to the session. jar is the current request's
// cookies; it may be nil outside a request.
func (s *Session) Do(jar theme.CookieJar, fn func(s *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jar.jar = jar
	defer func() { s.jar.jar = nil }()

	return fn(s)
}

// Target is the path the most recent navigation asked for. Call inside Do.
func (s *Session) Target() string {
	return s.target
}

// FromContext returns the session the middleware attached to the request
func FromContext(c rweb.Context) (*Session, bool) {
	s, ok := c.Get(ContextKey).(*Session)
	return s, ok && s != nil
}

// Registry maps visitor ids to sessions
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	cfg    nav.Config
	themes theme.Catalog
	prefs  *theme.Preferences
	idle   time.Duration
	now    func() time.Time
}

// NewRegistry builds sessions from cfg. prefs may be nil when no preference
// database is configured; idle <= 0 disables eviction.
func NewRegistry(cfg nav.Config, themes theme.Catalog, prefs *theme.Preferences, idle time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		themes:   themes,
		prefs:    prefs,
		idle:     idle,
		now:      time.Now,
	}
}

// Get returns the visitor's session, creating and mounting it on first use.
// jar supplies the request cookies the theme is first read from. Get never waits
// on a session that is busy with another request.
func (r *Registry) Get(id string, jar theme.CookieJar) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictIdle(now)

	if s, ok := r.sessions[id]; ok {
		s.lastSeen.Store(now.UnixNano())
		return s
	}

	s := r.newSession(id, now)
	if err := s.Do(jar, func(s *Session) error { return s.Themes.Init() }); err != nil {
		logger.LogErr(err, "failed to initialise visitor theme", "visitor", id)
	}
	r.sessions[id] = s

	logger.Debug("Visitor session created", "visitor", id)
	return s
}

func (r *Registry) newSession(id string, now time.Time) *Session {
	s := &Session{ID: id, Doc: nav.NewDocument()}
	s.lastSeen.Store(now.UnixNano())

	store := theme.Store(theme.CookieStore{Jar: &s.jar})
	if r.prefs != nil {
		store = theme.Chain{store, r.prefs.ForVisitor(id)}
	}

	s.Themes = theme.NewController(r.themes, store, s.Doc)
	s.Shell = nav.NewShell(r.cfg, s.Doc, nav.NavigatorFunc(func(path string) {
		s.target = path
	}), s.Themes)
	s.Shell.Mount("/")
	return s
}

// evictIdle unmounts and drops sessions not seen within the idle window.
// Sessions busy with a request are skipped.
func (r *Registry) evictIdle(now time.Time) {
	if r.idle <= 0 {
		return
	}
	for id, s := range r.sessions {
		if !s.mu.TryLock() {
			continue
		}
		if now.Sub(time.Unix(0, s.lastSeen.Load())) > r.idle {
			s.Shell.Unmount()
			delete(r.sessions, id)
			logger.Debug("Visitor session evicted", "visitor", id)
		}
		s.mu.Unlock()
	}
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close unmounts every session
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.mu.Lock()
		s.Shell.Unmount()
		s.mu.Unlock()
		delete(r.sessions, id)
	}
}

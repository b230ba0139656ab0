package web

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"devfort/web/session"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// VisitorCookie names the cookie holding the anonymous visitor id
const VisitorCookie = "visitor_id"

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, Accept, X-Body-Encoding")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// VisitorMiddleware gives every page and nav request a visitor id and attaches
// that visitor's navigation session. Assets and the health check skip it.
func VisitorMiddleware(reg *session.Registry) rweb.Handler {
	return func(c rweb.Context) error {
		if skipSession(c.Request().Path()) {
			return c.Next()
		}

		id, err := c.GetCookie(VisitorCookie)
		if err != nil || !validVisitorID(id) {
			id = uuid.NewString()
			if err := c.SetCookie(VisitorCookie, id); err != nil {
				logger.LogErr(err, "failed to set visitor cookie")
			}
		}

		c.Set("visitor_id", id)
		c.Set(session.ContextKey, reg.Get(id, c))
		return c.Next()
	}
}

func validVisitorID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func skipSession(path string) bool {
	return strings.HasPrefix(path, "/static/") || path == "/favicon.ico" || path == "/health"
}

// DefaultEventRate caps nav and theme requests per visitor per minute
const DefaultEventRate = 600

// EventRateMiddleware limits how fast one visitor can drive the navigation
// endpoints. Pages and assets are not counted.
func EventRateMiddleware(requestsPerMinute int) rweb.Handler {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultEventRate
	}

	type visitor struct {
		windowStart time.Time
		count       int
	}

	var mu sync.Mutex
	visitors := make(map[string]*visitor)

	return func(c rweb.Context) error {
		path := c.Request().Path()
		if !strings.HasPrefix(path, "/nav/") && path != "/theme" {
			return c.Next()
		}

		id, _ := c.Get("visitor_id").(string)
		if id == "" {
			id = "anonymous"
		}

		now := time.Now()
		mu.Lock()
		// Drop windows that have run out
		for key, v := range visitors {
			if now.Sub(v.windowStart) > time.Minute {
				delete(visitors, key)
			}
		}

		v, exists := visitors[id]
		if !exists {
			v = &visitor{windowStart: now}
			visitors[id] = v
		}
		v.count++
		limited := v.count > requestsPerMinute
		mu.Unlock()

		if limited {
			logger.Info("Event rate exceeded", "visitor", id, "path", path)
			c.SetStatus(http.StatusTooManyRequests)
			return nil
		}
		return c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Hero videos come from the configured media hosts
	csp := []string{
		"default-src 'self'",
		"script-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"media-src 'self' https:",
		"frame-src https://www.youtube.com",
		"font-src 'self' data:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start).String(),
	)
	if err != nil {
		logger.LogErr(err, "request failed", "path", c.Request().Path())
	}

	return err
}

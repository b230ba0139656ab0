// Package handlers holds the HTML page handlers and the shared status endpoints.
package handlers

import (
	"net/http"

	"devfort/views"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rweb"
)

// Version is set at build time with -ldflags
var Version = "dev"

// HealthCheck returns the health status of the application
func HealthCheck(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "devfort-web",
		"version": Version,
	})
}

// NotFound handles 404 errors without navigation context
func NotFound(c rweb.Context) error {
	c.SetStatus(http.StatusNotFound)
	if c.Request().Header("Accept") == "application/json" {
		return c.WriteJSON(map[string]string{
			"error": "Resource not found",
		})
	}
	return c.WriteHTML(views.SimpleLayout("Not found", message{"404 - Page Not Found"}))
}

// ServerError handles 500 errors
func ServerError(c rweb.Context) error {
	c.SetStatus(http.StatusInternalServerError)
	if c.Request().Header("Accept") == "application/json" {
		return c.WriteJSON(map[string]string{
			"error": "Internal server error",
		})
	}
	return c.WriteHTML(views.SimpleLayout("Error", message{"500 - Internal Server Error"}))
}

type message struct {
	text string
}

func (m message) Render(b *element.Builder) (x any) {
	b.H1Class("status-message").T(m.text)
	return
}

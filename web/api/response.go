// Package api serves the JSON endpoints the navigation script talks to.
package api

import (
	"net/http"
	"net/url"
	"strings"

	"devfort/config"
	"devfort/web/session"

	"github.com/rohanthewiz/rweb"
)

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// visitorSession fetches the session the middleware attached, answering 500 when it is missing
func visitorSession(ctx rweb.Context) (*session.Session, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, writeError(ctx, http.StatusInternalServerError, "no visitor session")
	}
	return sess, nil
}

// wantsJSON is true for script requests; plain form posts get a redirect instead
func wantsJSON(ctx rweb.Context) bool {
	return strings.Contains(ctx.Request().Header("Accept"), "application/json")
}

// backPath turns a Referer into a same-site path, "/" when it is absent or foreign
func backPath(referer string) string {
	if referer == "" {
		return "/"
	}
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" {
		return "/"
	}
	p := u.RequestURI()
	if !config.IsRoutePath(p) {
		return "/"
	}
	return p
}

package api

import (
	"net/http"

	"devfort/web/session"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// SelectTheme handles POST /theme.
// Applies and persists the chosen theme; values outside the catalog select the default.
// A failed write is logged and the theme still applies for the session.
//
// Form field: theme
func SelectTheme(ctx rweb.Context) error {
	sess, err := visitorSession(ctx)
	if sess == nil {
		return err
	}

	value := ctx.Request().FormValue("theme")

	_ = sess.Do(ctx, func(s *session.Session) error {
		if err := s.Themes.Select(value); err != nil {
			logger.LogErr(err, "theme selection not persisted", "visitor", s.ID, "theme", value)
		}
		return nil
	})

	if wantsJSON(ctx) {
		return NavState(ctx)
	}
	return ctx.Redirect(http.StatusSeeOther, backPath(ctx.Request().Header("Referer")))
}

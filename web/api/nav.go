package api

import (
	"net/http"
	"strings"

	"devfort/config"
	"devfort/nav"
	"devfort/web/session"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// NavEvents handles POST /nav/events.
// Dispatches one forwarded browser event to the visitor's document and answers
// with the resulting state.
//
// Request body:
//
//	{ "type": "click", "target": "nav-drawer-trigger" }
//
// Errors:
//   - 400: unparsable body or unknown event type
func NavEvents(ctx rweb.Context) error {
	sess, err := visitorSession(ctx)
	if sess == nil {
		return err
	}

	ev, err := decodeEvent(ctx)
	if err != nil {
		logger.LogErr(err, "rejected navigation event", "visitor", sess.ID)
		return writeError(ctx, http.StatusBadRequest, "invalid event body")
	}
	if !ev.Type.Valid() {
		return writeError(ctx, http.StatusBadRequest, "unknown event type: "+string(ev.Type))
	}

	var st nav.State
	_ = sess.Do(ctx, func(s *session.Session) error {
		s.Doc.Dispatch(ev)
		st = s.Shell.Snapshot()
		return nil
	})
	return writeState(ctx, st)
}

// NavState handles GET /nav/state
func NavState(ctx rweb.Context) error {
	sess, err := visitorSession(ctx)
	if sess == nil {
		return err
	}

	var st nav.State
	_ = sess.Do(ctx, func(s *session.Session) error {
		st = s.Shell.Snapshot()
		return nil
	})
	return writeState(ctx, st)
}

// NavNavigate handles POST /nav/navigate.
// A link chosen inside the drawer or a dropdown closes every overlay before the
// route changes. Form posts are redirected (303) to the target; script requests
// asking for JSON get the new state.
//
// Form field: path (empty means "/")
func NavNavigate(ctx rweb.Context) error {
	sess, err := visitorSession(ctx)
	if sess == nil {
		return err
	}

	path := strings.TrimSpace(ctx.Request().FormValue("path"))
	if path == "" {
		path = "/"
	}
	if !config.IsRoutePath(path) {
		return writeError(ctx, http.StatusBadRequest, "invalid path")
	}

	var (
		target string
		st     nav.State
	)
	err = sess.Do(ctx, func(s *session.Session) error {
		if err := s.Shell.Navigate(path); err != nil {
			return err
		}
		target = s.Target()
		st = s.Shell.Snapshot()
		return nil
	})
	if err != nil {
		logger.LogErr(serr.Wrap(err, "navigation failed"), "visitor", sess.ID, "path", path)
		return writeError(ctx, http.StatusInternalServerError, "navigation failed")
	}

	if wantsJSON(ctx) {
		return writeState(ctx, st)
	}
	return ctx.Redirect(http.StatusSeeOther, target)
}

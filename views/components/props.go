package components

import (
	"strconv"

	"devfort/nav"
	"devfort/theme"
)

// NavProps is everything the navigation renders from: the site's bar config,
// the visitor's current state and the theme catalog.
type NavProps struct {
	Config nav.Config
	State  nav.State
	Themes theme.Catalog
}

func (p NavProps) activeIndex() int {
	return nav.ActiveEntry(p.State.Path, p.Config.Entries)
}

func (p NavProps) currentTheme() theme.Option {
	return p.Themes.Resolve(p.State.Theme)
}

var icons = map[nav.IconRef]string{
	"home":       "🏠",
	"user":       "👤",
	"users":      "👥",
	"code":       "💻",
	"globe":      "🌐",
	"git-branch": "🌿",
	"server":     "🖥",
	"building":   "🏢",
	"map":        "🗺",
	"star":       "⭐",
	"briefcase":  "💼",
	"book-open":  "📖",
	"image":      "🖼",
	"play":       "▶",
	"file-text":  "📝",
	"tag":        "🏷",
	"palette":    "🎨",
	"database":   "🗄",
	"rocket":     "🚀",
	"award":      "🏆",
	"mail":       "✉",
}

// Icon returns the glyph for ref, or "" for unknown refs
func Icon(ref nav.IconRef) string {
	return icons[ref]
}

func boolAttr(v bool) string {
	return strconv.FormatBool(v)
}

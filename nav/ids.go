package nav

import (
	"strconv"
	"strings"
)

// Element ids shared by the renderer, the browser script and the event handlers
const (
	BarID            = "nav-bar"
	DrawerID         = "nav-drawer"
	DrawerTriggerID  = "nav-drawer-trigger"
	DrawerBackdropID = "nav-drawer-backdrop"
	DrawerCloseID    = "nav-drawer-close"
	ThemeMenuID      = "theme-menu"
	ThemeTriggerID   = ThemeMenuID + partSep + "trigger"
)

// partSep joins a region id to the ids nested inside it. Slugs never contain it,
// so one region can not swallow another whose label merely extends its own.
const partSep = "--"

// PartID is the id of an element nested inside region
func PartID(region, part string) string {
	return region + partSep + part
}

// MenuID is the id of the dropdown region for a top-level entry
func MenuID(label string) string {
	return "dropdown-" + slug(label)
}

// MenuTriggerID is the id of the button that toggles a dropdown.
// It lies inside the dropdown region.
func MenuTriggerID(label string) string {
	return PartID(MenuID(label), "trigger")
}

// DrawerItemID is the id of the i-th link in the drawer
func DrawerItemID(i int) string {
	return DrawerID + "-item-" + strconv.Itoa(i)
}

// within reports whether target is region itself or an element nested under it
func within(target, region string) bool {
	return target == region || strings.HasPrefix(target, region+partSep)
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

package nav

// Layout is the responsive arrangement of the bar
type Layout string

const (
	LayoutMobile  Layout = "mobile"
	LayoutDesktop Layout = "desktop"
)

// DefaultDesktopMinWidth is the narrowest viewport (px) that gets the inline desktop bar
const DefaultDesktopMinWidth = 1024

// Detect returns the layout for a viewport width.
// A zero width means unknown and maps to desktop, which server renders first.
func Detect(width, desktopMin int) Layout {
	if desktopMin <= 0 {
		desktopMin = DefaultDesktopMinWidth
	}
	if width == 0 || width >= desktopMin {
		return LayoutDesktop
	}
	return LayoutMobile
}

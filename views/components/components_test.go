package components

import (
	"context"
	"strings"
	"testing"

	"devfort/media"
	"devfort/nav"
	"devfort/theme"

	"github.com/rohanthewiz/element"
)

func testProps() NavProps {
	return NavProps{
		Config: nav.Config{
			Brand:             "DevFort",
			Tagline:           "Portfolio & Showcase",
			CTA:               nav.Link{Label: "Contact", Path: "/contact"},
			DrawerCTA:         "Get in Touch",
			CondenseThreshold: 24,
			DesktopMinWidth:   1024,
			Entries: []nav.Entry{
				{Label: "Home", Path: "/", Icon: "home"},
				{
					Label: "Skills",
					Path:  "/skills",
					Icon:  "code",
					Children: []nav.ChildEntry{
						{Label: "All Skills", Path: "/skills", Description: "Overview"},
						{Label: "Full-Stack Expertise", Path: "/skills/full-stack-expertise", Featured: true},
					},
					Groups: []nav.Group{{Name: "Backend", Links: []nav.Link{{Label: "Go", Path: "/skills/go"}}}},
				},
				{Label: "Gallery", Path: "/gallery", Children: []nav.ChildEntry{}},
			},
		},
		State:  nav.State{Path: "/", Theme: "dark", Drawer: nav.DrawerClosed},
		Themes: theme.DefaultCatalog,
	}
}

func render(c element.Component) string {
	b := element.NewBuilder()
	c.Render(b)
	return b.String()
}

// TestNavbarStructure verifies the bar's ids and links
func TestNavbarStructure(t *testing.T) {
	html := render(Navbar{NavProps: testProps()})

	for _, want := range []string{
		`id="` + nav.BarID + `"`,
		`id="` + nav.DrawerTriggerID + `"`,
		`id="` + nav.MenuTriggerID("Skills") + `"`,
		`id="` + nav.ThemeTriggerID + `"`,
		`href="/contact"`,
		`href="/gallery"`,
		"Portfolio",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Navbar should contain %s", want)
		}
	}

	if strings.Contains(html, nav.MenuID("Gallery")) {
		t.Error("An entry with empty children should render as a plain link")
	}
	if strings.Contains(html, "condensed") {
		t.Error("Navbar should not be condensed at the top of the page")
	}
}

// TestNavbarSingleActiveIndicator verifies exactly one entry is marked current
func TestNavbarSingleActiveIndicator(t *testing.T) {
	testCases := []struct {
		path  string
		count int
	}{
		{"/", 1},
		{"/gallery/2024", 1},
		{"/pricing", 0},
	}

	for _, tc := range testCases {
		p := testProps()
		p.State.Path = tc.path
		html := render(Navbar{NavProps: p})

		if got := strings.Count(html, `aria-current="page"`); got != tc.count {
			t.Errorf("path %s: %d current links; want %d", tc.path, got, tc.count)
		}
	}
}

// TestNavbarCondensed verifies the condensed class follows the state
func TestNavbarCondensed(t *testing.T) {
	p := testProps()
	p.State.Condensed = true
	html := render(Navbar{NavProps: p})

	if !strings.Contains(html, "nav-bar condensed") {
		t.Error("Navbar should carry the condensed class")
	}
	if !strings.Contains(html, `data-condense-threshold="24"`) {
		t.Error("Navbar should expose the condense threshold to the script")
	}
}

// TestDropdownMenuOpenState verifies aria-expanded and hidden track the open dropdown
func TestDropdownMenuOpenState(t *testing.T) {
	p := testProps()
	closed := render(Navbar{NavProps: p})
	if !strings.Contains(closed, `aria-expanded="false"`) || strings.Contains(closed, "mega-menu open") {
		t.Error("Dropdown should render closed")
	}

	p.State.Dropdown = "Skills"
	open := render(Navbar{NavProps: p})
	if !strings.Contains(open, "mega-menu open") {
		t.Error("Dropdown should render open")
	}
}

// TestDropdownMenuContent verifies children, groups and the fallback link
func TestDropdownMenuContent(t *testing.T) {
	entry := testProps().Config.Entries[1]
	html := render(DropdownMenu{Entry: entry, Open: true, CurrentPath: "/skills/go"})

	for _, want := range []string{
		`id="dropdown-skills--item-0"`,
		`id="dropdown-skills--group-0"`,
		"Overview",
		"Featured",
		`href="/skills/go"`,
		"View all Skills",
		`role="menuitem"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("DropdownMenu should contain %s", want)
		}
	}
	if !strings.Contains(html, `aria-current="page"`) {
		t.Error("The group link for the current path should be marked")
	}
}

// TestDrawerDialog verifies the drawer is a modal dialog listing every link
func TestDrawerDialog(t *testing.T) {
	p := testProps()
	closed := render(Drawer{NavProps: p})

	if !strings.Contains(closed, `role="dialog"`) || !strings.Contains(closed, `aria-modal="true"`) {
		t.Error("Drawer should be a modal dialog")
	}
	if !strings.Contains(closed, `aria-hidden="true"`) {
		t.Error("Closed drawer should be hidden from assistive technology")
	}

	links := nav.DrawerLinks(p.Config)
	for i := range links {
		if !strings.Contains(closed, `id="`+nav.DrawerItemID(i)+`"`) {
			t.Errorf("Drawer should render item %d", i)
		}
	}
	if !strings.Contains(closed, "Get in Touch") {
		t.Error("Drawer should end with its call-to-action")
	}

	p.State.Drawer = nav.DrawerOpen
	open := render(Drawer{NavProps: p})
	if !strings.Contains(open, "drawer drawer-open") || !strings.Contains(open, `aria-hidden="false"`) {
		t.Error("Open drawer should be visible")
	}
	if !strings.Contains(open, `id="`+nav.DrawerCloseID+`"`) || !strings.Contains(open, `id="`+nav.DrawerBackdropID+`"`) {
		t.Error("Drawer should render its close button and backdrop")
	}
}

// TestThemeSwitcherOptions verifies every option posts to /theme and the current one is checked
func TestThemeSwitcherOptions(t *testing.T) {
	p := testProps()
	p.State.Theme = "red"
	html := render(ThemeSwitcher{NavProps: p})

	if !strings.Contains(html, `action="/theme"`) {
		t.Error("Theme options should post to /theme")
	}
	for _, o := range theme.DefaultCatalog {
		if !strings.Contains(html, `id="`+nav.PartID(nav.ThemeMenuID, "option-"+o.Value)+`"`) {
			t.Errorf("ThemeSwitcher should render option %s", o.Value)
		}
	}
	if strings.Count(html, `aria-checked="true"`) != 1 {
		t.Error("Exactly one theme should be checked")
	}
	if !strings.Contains(html, "Red") {
		t.Error("Trigger should name the current theme")
	}
}

// TestThemeSwitcherUnknownThemeShowsDefault verifies default-on-unknown in the view
func TestThemeSwitcherUnknownThemeShowsDefault(t *testing.T) {
	p := testProps()
	p.State.Theme = "neon"
	html := render(ThemeSwitcher{NavProps: p})

	idx := strings.Index(html, `id="theme-menu--option-dark"`)
	if idx < 0 {
		t.Fatal("default option missing")
	}
	option := html[idx:]
	option = option[:strings.Index(option, ">")]
	if !strings.Contains(option, `aria-checked="true"`) {
		t.Error("Unknown theme should render as the default")
	}
}

// TestHeroFallback verifies the image is used when no video was chosen
func TestHeroFallback(t *testing.T) {
	html := render(Hero{Title: "Find your home"})
	if strings.Contains(html, "<video") {
		t.Error("Hero without a video should not render a video element")
	}
	if !strings.Contains(html, "hero-image") {
		t.Error("Hero should render the fallback image")
	}
	if !strings.Contains(html, `src="`+media.DefaultFallback+`"`) {
		t.Error("Hero without a background should use the bundled image")
	}
}

// TestHeroRendersEverySource verifies the player gets every remaining source in order plus the image
func TestHeroRendersEverySource(t *testing.T) {
	bg := media.Background{
		Sources:  []string{"https://cdn.one/hero.mp4", "https://cdn.two/hero.mp4"},
		Fallback: "/static/img/hero-fallback.svg",
	}
	trust := media.CheckerFunc(func(context.Context, string) error { return nil })
	html := render(Hero{Background: media.Resolve(context.Background(), bg, trust)})

	if got := strings.Count(html, "<source"); got != 2 {
		t.Fatalf("expected 2 sources, got %d", got)
	}
	first := strings.Index(html, "https://cdn.one/hero.mp4")
	second := strings.Index(html, "https://cdn.two/hero.mp4")
	if first < 0 || second < first {
		t.Error("sources should render in preference order")
	}

	video := html[strings.Index(html, "<video"):strings.Index(html, "</video>")]
	if !strings.Contains(video, `class="hero-image"`) || !strings.Contains(video, `src="/static/img/hero-fallback.svg"`) {
		t.Error("the fallback image should sit inside the video")
	}
	if !strings.Contains(video, `poster="/static/img/hero-fallback.svg"`) {
		t.Error("the fallback should double as the poster")
	}
}

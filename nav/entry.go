package nav

// IconRef names a glyph in the icon catalog (e.g. "home", "code")
type IconRef string

// Entry is one item of the navigation tree.
// An entry with children renders as a dropdown trigger; Path stays a valid fallback link.
type Entry struct {
	Label    string       `yaml:"label" validate:"required"`
	Path     string       `yaml:"path" validate:"required,route_path"`
	Icon     IconRef      `yaml:"icon"`
	Children []ChildEntry `yaml:"children" validate:"dive"`
	Groups   []Group      `yaml:"groups" validate:"dive"`
}

// ChildEntry is a dropdown item with rich rendering data
type ChildEntry struct {
	Label       string  `yaml:"label" validate:"required"`
	Path        string  `yaml:"path" validate:"required,route_path"`
	Icon        IconRef `yaml:"icon"`
	Description string  `yaml:"description"`
	Featured    bool    `yaml:"featured"`
}

// Group is a titled block of plain links inside a mega-menu
type Group struct {
	Name  string `yaml:"name" validate:"required"`
	Links []Link `yaml:"links" validate:"dive"`
}

// Link is a bare label/path pair
type Link struct {
	Label string `yaml:"label" validate:"required"`
	Path  string `yaml:"path" validate:"required,route_path"`
}

// HasMenu reports whether the entry renders as a dropdown.
// An empty child list is treated as a plain link.
func (e Entry) HasMenu() bool {
	return len(e.Children) > 0
}

// Flatten lists every navigable link of the tree in drawer order:
// each top-level entry, then its children, then its group links.
func Flatten(entries []Entry) []Link {
	var out []Link
	for _, e := range entries {
		out = append(out, Link{Label: e.Label, Path: e.Path})
		for _, c := range e.Children {
			out = append(out, Link{Label: c.Label, Path: c.Path})
		}
		for _, g := range e.Groups {
			out = append(out, g.Links...)
		}
	}
	return out
}

// DrawerLinks is the drawer's item list: the flattened tree followed by the
// call-to-action, labelled with DrawerCTA when set.
func DrawerLinks(cfg Config) []Link {
	links := Flatten(cfg.Entries)
	if cfg.CTA.Path != "" {
		cta := cfg.CTA
		if cfg.DrawerCTA != "" {
			cta.Label = cfg.DrawerCTA
		}
		links = append(links, cta)
	}
	return links
}

// findEntry returns the top-level entry with the given label
func findEntry(entries []Entry, label string) (Entry, bool) {
	for _, e := range entries {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

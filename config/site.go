// Package config loads the site description (navigation, themes, hero media)
// from YAML and the process settings from the environment.
package config

import (
	_ "embed"
	"os"

	"devfort/media"
	"devfort/nav"
	"devfort/theme"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// Site is the whole site description
type Site struct {
	nav.Config `yaml:",inline"`

	Themes     theme.Catalog    `yaml:"themes" validate:"omitempty,dive"`
	Background media.Background `yaml:"background"`
}

// DefaultSite parses the embedded site description
func DefaultSite() (*Site, error) {
	return ParseSite(defaultSite)
}

// LoadSite reads and validates the site description at path.
// An empty path selects the embedded default.
func LoadSite(path string) (*Site, error) {
	if path == "" {
		return DefaultSite()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read site config", "path", path)
	}

	site, err := ParseSite(data)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	return site, nil
}

// ParseSite decodes and validates a site description
func ParseSite(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, serr.Wrap(err, "failed to parse site config")
	}

	if err := validatorInstance().Struct(&site); err != nil {
		return nil, convertValidationError(err)
	}

	if err := checkDuplicateLabels(site.Entries); err != nil {
		return nil, err
	}

	if len(site.Themes) == 0 {
		site.Themes = theme.DefaultCatalog
	}
	return &site, nil
}

// checkDuplicateLabels rejects entries that would share a dropdown id
func checkDuplicateLabels(entries []nav.Entry) error {
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		id := nav.MenuID(e.Label)
		if prev, ok := seen[id]; ok {
			return serr.New("navigation entries collide", "first", prev, "second", e.Label)
		}
		seen[id] = e.Label
	}
	return nil
}

package theme

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// AttributeSetter applies the theme to a document root
type AttributeSetter interface {
	SetAttribute(name, value string)
}

// Controller owns the active theme and the open state of the theme menu
type Controller struct {
	catalog  Catalog
	store    Store
	doc      AttributeSetter
	current  Option
	menuOpen bool
}

// NewController binds a catalog to a store and a document. Call Init before use.
func NewController(catalog Catalog, store Store, doc AttributeSetter) *Controller {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}
	return &Controller{
		catalog: catalog,
		store:   store,
		doc:     doc,
		current: catalog.Default(),
	}
}

// validLoader is a Store that can skip values the catalog rejects
type validLoader interface {
	LoadValid(accept func(string) bool) (value string, stale bool, err error)
}

// Init reads the stored value once and applies it. An absent, unknown or unreadable
// value falls back to the default, which is written back so later reads see a valid value.
// Chained stores yield their first valid value, and stores that disagree are rewritten.
func (c *Controller) Init() error {
	stored, stale, err := c.load()
	if err != nil {
		logger.LogErr(err, "failed to read stored theme, using default")
		stored = ""
	}

	opt, ok := c.catalog.Lookup(stored)
	if !ok {
		if stored != "" {
			logger.Debug("Ignoring unknown stored theme", "value", stored)
		}
		opt = c.catalog.Default()
	}
	c.apply(opt)

	switch {
	case !ok:
		if err := c.store.Save(opt.Value); err != nil {
			return serr.Wrap(err, "failed to persist default theme")
		}
	case stale:
		if err := c.store.Save(opt.Value); err != nil {
			return serr.Wrap(err, "failed to resync stored theme")
		}
	}
	return nil
}

func (c *Controller) load() (string, bool, error) {
	if vl, ok := c.store.(validLoader); ok {
		return vl.LoadValid(func(v string) bool {
			_, ok := c.catalog.Lookup(v)
			return ok
		})
	}
	v, err := c.store.Load()
	return v, false, err
}

// Select makes value the active theme, persists it and closes the menu.
// Values outside the catalog select the default theme.
func (c *Controller) Select(value string) error {
	opt, ok := c.catalog.Lookup(value)
	if !ok {
		logger.Debug("Unknown theme selected, using default", "value", value)
		opt = c.catalog.Default()
	}

	c.apply(opt)
	c.menuOpen = false

	if err := c.store.Save(opt.Value); err != nil {
		return serr.Wrap(err, "failed to persist theme")
	}
	return nil
}

func (c *Controller) apply(opt Option) {
	c.current = opt
	if c.doc != nil {
		c.doc.SetAttribute(Attribute, opt.Value)
	}
}

// Current returns the active option
func (c *Controller) Current() Option {
	return c.current
}

// Catalog returns the options in menu order
func (c *Controller) Catalog() Catalog {
	return c.catalog
}

// MenuOpen reports whether the theme menu is showing
func (c *Controller) MenuOpen() bool {
	return c.menuOpen
}

// ToggleMenu opens or closes the theme menu
func (c *Controller) ToggleMenu() {
	c.menuOpen = !c.menuOpen
}

// CloseMenu closes the theme menu
func (c *Controller) CloseMenu() {
	c.menuOpen = false
}

// Package theme holds the fixed theme catalog, the persisted selection and the
// controller that applies it to a document.
package theme

// StorageKey is the key (cookie name, preference name) the selection is persisted under
const StorageKey = "theme"

// Attribute is the document root attribute the stylesheet keys off
const Attribute = "data-theme"

// Option is one selectable theme
type Option struct {
	Name   string `yaml:"name" validate:"required"`
	Value  string `yaml:"value" validate:"required,alphanum"`
	Swatch string `yaml:"swatch" validate:"required,hexcolor"` // CSS color used for the menu swatch
}

// Catalog is an ordered list of options; the first entry is the default
type Catalog []Option

// DefaultCatalog is used when the site config names no themes
var DefaultCatalog = Catalog{
	{Name: "Dark", Value: "dark", Swatch: "#1e293b"},
	{Name: "Light", Value: "light", Swatch: "#f1f5f9"},
	{Name: "Blue", Value: "blue", Swatch: "#3b82f6"},
	{Name: "Red", Value: "red", Swatch: "#ef4444"},
	{Name: "Green", Value: "green", Swatch: "#10b981"},
	{Name: "Yellow", Value: "yellow", Swatch: "#facc15"},
}

// Default returns the first option
func (c Catalog) Default() Option {
	if len(c) == 0 {
		return DefaultCatalog[0]
	}
	return c[0]
}

// Lookup finds the option with the given value
func (c Catalog) Lookup(value string) (Option, bool) {
	for _, o := range c {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Resolve returns the matching option, or the default for unknown values
func (c Catalog) Resolve(value string) Option {
	if o, ok := c.Lookup(value); ok {
		return o
	}
	return c.Default()
}

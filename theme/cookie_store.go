package theme

import "github.com/rohanthewiz/serr"

// CookieJar is the slice of rweb.Context the cookie store needs
type CookieJar interface {
	GetCookie(name string) (string, error)
	SetCookie(name, value string) error
}

// CookieStore keeps the selection in the visitor's "theme" cookie,
// the server-side counterpart of a localStorage entry.
type CookieStore struct {
	Jar CookieJar
}

// Load returns the cookie value; a missing cookie reads as ""
func (c CookieStore) Load() (string, error) {
	v, err := c.Jar.GetCookie(StorageKey)
	if err != nil {
		return "", nil
	}
	return v, nil
}

func (c CookieStore) Save(value string) error {
	if err := c.Jar.SetCookie(StorageKey, value); err != nil {
		return serr.Wrap(err, "failed to set theme cookie")
	}
	return nil
}

// Package shared contains components reused across pages.
package shared

// Page is embedded by every page. It supplies the page banner and the footer.
type Page struct {
	Title    string
	Subtitle string
}

// PageTitle is the document title
func (p Page) PageTitle() string {
	if p.Title == "" {
		return "DevFort"
	}
	return p.Title + " | DevFort"
}

// Banner returns the heading band for the page
func (p Page) Banner() Banner {
	return Banner{Title: p.Title, Subtitle: p.Subtitle}
}

// Footer returns the site footer
func (p Page) Footer() Footer {
	return Footer{}
}

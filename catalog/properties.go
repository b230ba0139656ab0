// Package catalog holds the static content the pages render: listings, stats,
// skills, pricing plans and blog posts.
package catalog

import "strings"

// Property is one listing
type Property struct {
	ID       int
	Title    string
	Location string
	Price    string
	Beds     int
	Baths    int
	SqFt     string
	Image    string
	Type     string
	Featured bool
}

var Properties = []Property{
	{1, "Modern Downtown Loft", "New York, NY", "$850,000", 2, 2, "1,200", "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800", "Apartment", true},
	{2, "Luxury Beach House", "Miami, FL", "$2,500,000", 4, 3, "3,500", "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800", "House", true},
	{3, "Cozy Suburban Home", "Austin, TX", "$425,000", 3, 2, "2,100", "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800", "House", false},
	{4, "Penthouse Suite", "Los Angeles, CA", "$3,200,000", 3, 3, "2,800", "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800", "Penthouse", true},
	{5, "Mountain View Cabin", "Denver, CO", "$680,000", 3, 2, "1,800", "https://images.unsplash.com/photo-1449158743715-0a90ebb6d2d8?w=800", "Cabin", false},
	{6, "Urban Studio", "Seattle, WA", "$320,000", 1, 1, "650", "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800", "Studio", false},
	{7, "Historic Townhouse", "Boston, MA", "$1,150,000", 4, 3, "2,600", "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800", "Townhouse", false},
	{8, "Desert Villa", "Phoenix, AZ", "$925,000", 4, 3, "3,200", "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800", "Villa", true},
}

// FilterByType returns the listings of the given type, case-insensitively.
// A plural form ("villas") matches too. An empty type returns every listing.
func FilterByType(props []Property, typ string) []Property {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		return props
	}

	var out []Property
	for _, p := range props {
		t := strings.ToLower(p.Type)
		if t == typ || t+"s" == typ {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the term against title, location and type
func Search(props []Property, term string) []Property {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return props
	}

	var out []Property
	for _, p := range props {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Location), term) ||
			strings.Contains(strings.ToLower(p.Type), term) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the listings flagged for the home page
func Featured(props []Property) []Property {
	var out []Property
	for _, p := range props {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

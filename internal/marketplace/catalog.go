package marketplace

import "strings"

// Catalog is the working set of listings shown on the listings page.
type Catalog struct {
	listings []Listing
}

// NewCatalog returns a catalog over a private copy of listings.
func NewCatalog(listings []Listing) *Catalog {
	return &Catalog{listings: cloneListings(listings)}
}

// Listings returns a copy of every listing in fixture order.
func (c *Catalog) Listings() []Listing {
	if c == nil {
		return nil
	}
	return cloneListings(c.listings)
}

// Filter returns the listings whose title or description contains query,
// ignoring case, and whose category equals category. CategoryAll matches every
// listing and an empty query matches every title.
func (c *Catalog) Filter(query string, category Category) []Listing {
	if c == nil {
		return nil
	}
	needle := strings.ToLower(query)
	out := make([]Listing, 0, len(c.listings))
	for _, listing := range c.listings {
		if !matchesQuery(listing, needle) {
			continue
		}
		if category != CategoryAll && listing.Category != category {
			continue
		}
		out = append(out, listing.Clone())
	}
	return out
}

// ToggleFavorite flips the favorite flag of the listing with id. Unknown ids
// are ignored.
func (c *Catalog) ToggleFavorite(id int) {
	if c == nil {
		return
	}
	for i := range c.listings {
		if c.listings[i].ID == id {
			c.listings[i].Favorite = !c.listings[i].Favorite
			return
		}
	}
}

func matchesQuery(listing Listing, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(listing.Title), needle) ||
		strings.Contains(strings.ToLower(listing.Description), needle)
}

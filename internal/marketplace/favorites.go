package marketplace

// Favorites is the saved-listings set shown on the favorites page. It is seeded
// on its own and has no link to the catalog's favorite flags.
type Favorites struct {
	listings []Listing
}

// NewFavorites returns a favorites set over a private copy of listings.
func NewFavorites(listings []Listing) *Favorites {
	return &Favorites{listings: cloneListings(listings)}
}

// Listings returns a copy of the saved listings.
func (f *Favorites) Listings() []Listing {
	if f == nil {
		return nil
	}
	return cloneListings(f.listings)
}

// Len returns the number of saved listings.
func (f *Favorites) Len() int {
	if f == nil {
		return 0
	}
	return len(f.listings)
}

// Remove drops every listing with id. Removing an absent id is a no-op.
func (f *Favorites) Remove(id int) {
	if f == nil {
		return
	}
	kept := f.listings[:0]
	for _, listing := range f.listings {
		if listing.ID != id {
			kept = append(kept, listing)
		}
	}
	clear(f.listings[len(kept):])
	f.listings = kept
}

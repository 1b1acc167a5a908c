package marketplace

import (
	"strings"
	"unicode"
)

// Profile is the static user record shown on the profile page.
type Profile struct {
	DisplayName  string
	Email        string
	ListingCount int
	TotalViews   int
	Listings     []Listing
}

// Initials returns up to two upper-case initials derived from the display name.
// A single word contributes its first letter plus its next upper-case letter,
// so "GameMaster" yields "GM".
func (p Profile) Initials() string {
	words := strings.Fields(p.DisplayName)
	var out []rune
	switch len(words) {
	case 0:
		return ""
	case 1:
		for i, r := range []rune(words[0]) {
			if i == 0 || unicode.IsUpper(r) {
				out = append(out, unicode.ToUpper(r))
			}
			if len(out) == 2 {
				break
			}
		}
	default:
		for _, word := range words[:2] {
			r := []rune(word)[0]
			out = append(out, unicode.ToUpper(r))
		}
	}
	return string(out)
}

// Partition splits listings by status, preserving order. Listings with any
// other status are left out.
func Partition(listings []Listing) (active, closed []Listing) {
	for _, listing := range listings {
		switch listing.Status {
		case StatusActive:
			active = append(active, listing.Clone())
		case StatusClosed:
			closed = append(closed, listing.Clone())
		}
	}
	return active, closed
}

// Package marketplace holds the page-local state models of the item trading
// marketplace: listings, favorites, listing drafts, the registration form and
// the platform rules.
package marketplace

import "strings"

// Category classifies a listing.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryArtifact   Category = "artifact"
	CategoryConsumable Category = "consumable"
	CategoryOther      Category = "other"
)

// Categories returns the listing categories in display order.
func Categories() []Category {
	return []Category{CategoryWeapon, CategoryArmor, CategoryArtifact, CategoryConsumable, CategoryOther}
}

// Valid reports whether c is a listing category. CategoryAll is a filter value
// and not a listing category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWeapon, CategoryArmor, CategoryArtifact, CategoryConsumable, CategoryOther:
		return true
	default:
		return false
	}
}

// ParseCategory parses a listing category.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}

// ParseCategoryFilter parses a catalog filter value. Empty and "all" select
// every category.
func ParseCategoryFilter(raw string) (Category, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == string(CategoryAll) {
		return CategoryAll, true
	}
	return ParseCategory(value)
}

// Status is the lifecycle state of a listing owned by the profile user.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// MaxImages caps the number of image references a listing carries.
const MaxImages = 10

// Listing is a single item posting.
type Listing struct {
	ID          int
	Title       string
	Description string
	Category    Category
	Images      []string
	Owner       string
	Favorite    bool
	Status      Status
	Views       int
}

// Cover returns the first image reference, if any.
func (l Listing) Cover() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// Clone returns a copy that shares no slices with l.
func (l Listing) Clone() Listing {
	out := l
	if l.Images != nil {
		out.Images = append([]string(nil), l.Images...)
	}
	return out
}

func cloneListings(in []Listing) []Listing {
	if in == nil {
		return nil
	}
	out := make([]Listing, len(in))
	for i, listing := range in {
		out[i] = listing.Clone()
	}
	return out
}

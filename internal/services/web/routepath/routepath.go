// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root                     = "/"
	Health                   = "/up"
	StaticPrefix             = "/static/"
	ListingsPrefix           = "/listings/"
	ListingFavoritePattern   = ListingsPrefix + "{listingID}/favorite"
	Favorites                = "/favorites"
	FavoritesPrefix          = "/favorites/"
	FavoriteRemovePattern    = FavoritesPrefix + "{listingID}/remove"
	FavoritesRestPattern     = FavoritesPrefix + "{rest...}"
	Create                   = "/create"
	CreatePrefix             = "/create/"
	CreateImages             = "/create/images"
	CreateImagePattern       = CreateImages + "/{blobID}"
	CreateImageRemovePattern = CreateImages + "/{index}/remove"
	CreateRestPattern        = CreatePrefix + "{rest...}"
	Profile                  = "/profile"
	ProfilePrefix            = "/profile/"
	ProfileRestPattern       = ProfilePrefix + "{rest...}"
	Register                 = "/register"
	RegisterPrefix           = "/register/"
	RegisterRestPattern      = RegisterPrefix + "{rest...}"
	Rules                    = "/rules"
	RulesPrefix              = "/rules/"
	RulesRestPattern         = RulesPrefix + "{rest...}"

	PageParam     = "page"
	QueryParam    = "q"
	CategoryParam = "category"
	TabParam      = "tab"
	OpenParam     = "open"
)

// ListingFavorite returns the catalog favorite-toggle route.
func ListingFavorite(listingID int) string {
	return ListingsPrefix + strconv.Itoa(listingID) + "/favorite"
}

// FavoriteRemove returns the favorites removal route.
func FavoriteRemove(listingID int) string {
	return FavoritesPrefix + strconv.Itoa(listingID) + "/remove"
}

// CreateImage returns the preview route of an uploaded composer image.
func CreateImage(blobID string, pageID string) string {
	return WithQuery(CreateImages+"/"+escapeSegment(blobID), url.Values{PageParam: {pageID}})
}

// CreateImageRemove returns the composer image removal route.
func CreateImageRemove(index int) string {
	return CreateImages + "/" + strconv.Itoa(index) + "/remove"
}

// WithPage appends the page instance id to path.
func WithPage(path string, pageID string) string {
	return WithQuery(path, url.Values{PageParam: {pageID}})
}

// WithQuery appends non-empty query values to path in stable order. Values
// are kept as given, so a whitespace-only search survives the round trip.
func WithQuery(path string, values url.Values) string {
	clean := url.Values{}
	for key, list := range values {
		for _, value := range list {
			if value != "" {
				clean.Add(key, value)
			}
		}
	}
	if len(clean) == 0 {
		return path
	}
	return path + "?" + clean.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// FavoriteCardView is one saved listing.
type FavoriteCardView struct {
	ID          int
	Title       string
	Description string
	CategoryKey string
	Image       string
	Owner       string
	RemoveURL   string
}

// FavoritesPageView is the favorites page model.
type FavoritesPageView struct {
	PageID   string
	Listings []FavoriteCardView
}

// FavoritesFragment renders the favorites page body.
func FavoritesFragment(view FavoritesPageView, loc Localizer) templ.Component {
	return el("section", attrs{class("favorites"), at("id", "favorites")},
		el("header", attrs{class("page-header")},
			el("h1", nil, text(T(loc, "web.favorites.title"))),
			el("p", attrs{class("muted")}, text(T(loc, "web.favorites.count", len(view.Listings)))),
		),
		favoritesList(view, loc),
	)
}

func favoritesList(view FavoritesPageView, loc Localizer) templ.Component {
	if len(view.Listings) == 0 {
		browse := el("a", attrs{href(routepath.Root), class("button")}, text(T(loc, "web.favorites.browse")))
		return emptyState(T(loc, "web.favorites.empty"), T(loc, "web.favorites.empty_hint"), browse)
	}
	cards := make([]templ.Component, 0, len(view.Listings))
	for _, listing := range view.Listings {
		cards = append(cards, el("li", attrs{class("listing-card"), at("data-listing-id", itoa(listing.ID))},
			listingImage(listing.Image, listing.Title),
			el("div", attrs{class("listing-body")},
				el("span", attrs{class("badge")}, text(T(loc, listing.CategoryKey))),
				el("h2", nil, text(listing.Title)),
				el("p", nil, text(listing.Description)),
				el("p", attrs{class("muted")}, text(listing.Owner)),
			),
			el("form", attrs{at("method", "post"), action(listing.RemoveURL)},
				hidden(routepath.PageParam, view.PageID),
				el("button", attrs{at("type", "submit"), class("button danger")}, text(T(loc, "web.favorites.remove"))),
			),
		))
	}
	return el("ul", attrs{class("listing-grid")}, cards...)
}

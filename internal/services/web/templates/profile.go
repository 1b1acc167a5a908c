package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// Profile tabs.
const (
	ProfileTabActive = "active"
	ProfileTabClosed = "closed"
)

// ProfileListingView is one listing owned by the profile user.
type ProfileListingView struct {
	ID          int
	Title       string
	Description string
	CategoryKey string
	Image       string
	Views       int
}

// ProfilePageView is the profile page model.
type ProfilePageView struct {
	Initials     string
	DisplayName  string
	Email        string
	ListingCount int
	TotalViews   int
	Tab          string
	ActiveURL    string
	ClosedURL    string
	Active       []ProfileListingView
	Closed       []ProfileListingView
}

// ProfileFragment renders the profile page body.
func ProfileFragment(view ProfilePageView, loc Localizer) templ.Component {
	listings, emptyKey, statusKey := view.Active, "web.profile.empty_active", "web.profile.status_active"
	if view.Tab == ProfileTabClosed {
		listings, emptyKey, statusKey = view.Closed, "web.profile.empty_closed", "web.profile.status_closed"
	}
	return el("section", attrs{class("profile"), at("id", "profile")},
		el("header", attrs{class("profile-header")},
			el("div", attrs{class("avatar"), at("aria-hidden", "true")}, text(view.Initials)),
			el("div", nil,
				el("h1", nil, text(view.DisplayName)),
				el("p", attrs{class("muted")}, text(view.Email)),
				el("p", attrs{class("stats")},
					el("span", nil, el("strong", nil, text(itoa(view.ListingCount))), text(" "+T(loc, "web.profile.stat_listings"))),
					text(" "),
					el("span", nil, el("strong", nil, text(itoa(view.TotalViews))), text(" "+T(loc, "web.profile.stat_views"))),
				),
			),
			el("a", attrs{href(routepath.Root), class("button")}, text(T(loc, "web.profile.sign_out"))),
		),
		el("nav", attrs{class("tabs"), at("role", "tablist")},
			profileTab(view.ActiveURL, T(loc, "web.profile.tab_active"), len(view.Active), view.Tab != ProfileTabClosed),
			profileTab(view.ClosedURL, T(loc, "web.profile.tab_closed"), len(view.Closed), view.Tab == ProfileTabClosed),
		),
		profileListings(view.Tab, listings, T(loc, emptyKey), T(loc, statusKey), loc),
	)
}

func profileTab(url string, label string, count int, selected bool) templ.Component {
	cls, ariaSelected := "tab", "false"
	if selected {
		cls, ariaSelected = "tab is-active", "true"
	}
	return el("a", attrs{href(url), class(cls), at("role", "tab"), at("aria-selected", ariaSelected)},
		text(label+" ("+itoa(count)+")"),
	)
}

func profileListings(tab string, listings []ProfileListingView, empty string, status string, loc Localizer) templ.Component {
	if len(listings) == 0 {
		return el("p", attrs{class("empty-state muted")}, text(empty))
	}
	cls := "profile-listings"
	if tab == ProfileTabClosed {
		cls += " is-closed"
	}
	items := make([]templ.Component, 0, len(listings))
	for _, listing := range listings {
		items = append(items, el("li", attrs{class("profile-listing"), at("data-listing-id", itoa(listing.ID))},
			listingImage(listing.Image, listing.Title),
			el("div", attrs{class("listing-body")},
				el("h2", nil, text(listing.Title)),
				el("span", attrs{class("badge")}, text(T(loc, listing.CategoryKey))),
				el("span", attrs{class("badge status")}, text(status)),
				el("p", nil, text(listing.Description)),
				el("p", attrs{class("muted")}, text(T(loc, "web.profile.views", listing.Views))),
			),
			when(tab != ProfileTabClosed, el("div", attrs{class("listing-actions")},
				el("button", attrs{at("type", "button"), class("button")}, text(T(loc, "web.profile.edit"))),
				el("button", attrs{at("type", "button"), class("button")}, text(T(loc, "web.profile.delete"))),
			)),
		))
	}
	return el("ul", attrs{class(cls)}, items...)
}

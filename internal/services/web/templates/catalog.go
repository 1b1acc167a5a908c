package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// CategoryOption is one entry of a category select.
type CategoryOption struct {
	Value    string
	LabelKey string
	Selected bool
}

// ListingCardView is one catalog card.
type ListingCardView struct {
	ID          int
	Title       string
	Description string
	CategoryKey string
	Image       string
	Owner       string
	Favorite    bool
	ToggleURL   string
}

// CatalogPageView is the catalog page model.
type CatalogPageView struct {
	PageID     string
	Query      string
	Category   string
	Categories []CategoryOption
	Listings   []ListingCardView
}

// CategoryLabelKey returns the message key naming a category value.
func CategoryLabelKey(value string) string {
	return "web.category." + value
}

// CatalogFragment renders the catalog page body.
func CatalogFragment(view CatalogPageView, loc Localizer) templ.Component {
	return el("section", attrs{class("catalog"), at("id", "catalog")},
		el("header", attrs{class("page-header")},
			el("h1", nil, text(T(loc, "web.catalog.title"))),
			el("p", attrs{class("muted")}, text(T(loc, "web.catalog.subtitle"))),
		),
		catalogSearchForm(view, loc),
		el("p", attrs{class("result-count")}, text(T(loc, "web.catalog.result_count", len(view.Listings)))),
		catalogResults(view, loc),
	)
}

func catalogSearchForm(view CatalogPageView, loc Localizer) templ.Component {
	return el("form", attrs{class("search"), at("method", "get"), action(routepath.Root), at("role", "search")},
		hidden(routepath.PageParam, view.PageID),
		el("label", attrs{class("visually-hidden"), at("for", "catalog-q")}, text(T(loc, "web.catalog.search_label"))),
		el("input", attrs{
			at("id", "catalog-q"),
			at("type", "search"),
			at("name", routepath.QueryParam),
			at("value", view.Query),
			at("placeholder", T(loc, "web.catalog.search_placeholder")),
		}),
		categorySelect(routepath.CategoryParam, "catalog-category", view.Categories, loc),
		el("button", attrs{at("type", "submit"), class("button")}, text(T(loc, "web.catalog.search_submit"))),
	)
}

func categorySelect(name string, id string, options []CategoryOption, loc Localizer) templ.Component {
	items := make([]templ.Component, 0, len(options))
	for _, option := range options {
		items = append(items, el("option", attrs{at("value", option.Value), flagAttr("selected", option.Selected)}, text(T(loc, option.LabelKey))))
	}
	return el("select", attrs{at("id", id), at("name", name)}, items...)
}

func catalogResults(view CatalogPageView, loc Localizer) templ.Component {
	if len(view.Listings) == 0 {
		return emptyState(T(loc, "web.catalog.empty"), T(loc, "web.catalog.empty_hint"), nil)
	}
	cards := make([]templ.Component, 0, len(view.Listings))
	for _, listing := range view.Listings {
		cards = append(cards, catalogCard(view, listing, loc))
	}
	return el("ul", attrs{class("listing-grid")}, cards...)
}

func catalogCard(view CatalogPageView, listing ListingCardView, loc Localizer) templ.Component {
	label, pressed := T(loc, "web.catalog.favorite_add"), "false"
	if listing.Favorite {
		label, pressed = T(loc, "web.catalog.favorite_remove"), "true"
	}
	return el("li", attrs{class("listing-card"), at("data-listing-id", itoa(listing.ID))},
		listingImage(listing.Image, listing.Title),
		el("div", attrs{class("listing-body")},
			el("span", attrs{class("badge")}, text(T(loc, listing.CategoryKey))),
			el("h2", nil, text(listing.Title)),
			el("p", nil, text(listing.Description)),
			el("p", attrs{class("muted")}, text(listing.Owner)),
		),
		el("form", attrs{at("method", "post"), action(listing.ToggleURL), class("favorite-toggle")},
			hidden(routepath.PageParam, view.PageID),
			hidden(routepath.QueryParam, view.Query),
			hidden(routepath.CategoryParam, view.Category),
			el("button", attrs{at("type", "submit"), class("icon-button"), at("aria-pressed", pressed), at("title", label)}, text(label)),
		),
	)
}

func listingImage(image string, alt string) templ.Component {
	if image == "" {
		return el("div", attrs{class("listing-image is-empty")})
	}
	return el("img", attrs{class("listing-image"), src(image), at("alt", alt), at("loading", "lazy")})
}

func emptyState(title string, hint string, cta templ.Component) templ.Component {
	return el("div", attrs{class("empty-state")},
		el("h2", nil, text(title)),
		el("p", attrs{class("muted")}, text(hint)),
		cta,
	)
}

package catalog

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/gametrade/internal/marketplace"
	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get(routepath.QueryParam)
	category := parseCategory(query.Get(routepath.CategoryParam))
	page, err := h.service.loadPage(httpx.RequestContext(r), query.Get(routepath.PageParam), search, category)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.renderPage(w, r, page)
}

func (h handlers) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(strings.TrimSpace(r.PathValue("listingID")))
	if err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_listing_id", "listing id must be a number"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "web.error.invalid_form", "failed to parse favorite form", err))
		return
	}
	search := r.PostFormValue(routepath.QueryParam)
	category := parseCategory(r.PostFormValue(routepath.CategoryParam))
	page, err := h.service.toggleFavorite(httpx.RequestContext(r), r.PostFormValue(routepath.PageParam), listingID, search, category)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if httpx.IsHTMXRequest(r) {
		h.renderPage(w, r, page)
		return
	}
	httpx.WriteRedirect(w, r, pageURL(page))
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, page catalogPage) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, webtemplates.T(loc, "web.catalog.title"), http.StatusOK, webtemplates.CatalogFragment(catalogView(page), loc))
}

// parseCategory treats unknown categories as the unfiltered view.
func parseCategory(raw string) marketplace.Category {
	category, ok := marketplace.ParseCategoryFilter(raw)
	if !ok {
		return marketplace.CategoryAll
	}
	return category
}

func pageURL(page catalogPage) string {
	values := url.Values{
		routepath.PageParam:  {page.ID},
		routepath.QueryParam: {page.Query},
	}
	if page.Category != marketplace.CategoryAll {
		values.Set(routepath.CategoryParam, string(page.Category))
	}
	return routepath.WithQuery(routepath.Root, values)
}

func catalogView(page catalogPage) webtemplates.CatalogPageView {
	view := webtemplates.CatalogPageView{
		PageID:     page.ID,
		Query:      page.Query,
		Category:   string(page.Category),
		Categories: categoryOptions(page.Category),
		Listings:   make([]webtemplates.ListingCardView, 0, len(page.Listings)),
	}
	for _, listing := range page.Listings {
		view.Listings = append(view.Listings, webtemplates.ListingCardView{
			ID:          listing.ID,
			Title:       listing.Title,
			Description: listing.Description,
			CategoryKey: webtemplates.CategoryLabelKey(string(listing.Category)),
			Image:       listing.Cover(),
			Owner:       listing.Owner,
			Favorite:    listing.Favorite,
			ToggleURL:   routepath.ListingFavorite(listing.ID),
		})
	}
	return view
}

func categoryOptions(selected marketplace.Category) []webtemplates.CategoryOption {
	values := append([]marketplace.Category{marketplace.CategoryAll}, marketplace.Categories()...)
	options := make([]webtemplates.CategoryOption, 0, len(values))
	for _, value := range values {
		options = append(options, webtemplates.CategoryOption{
			Value:    string(value),
			LabelKey: webtemplates.CategoryLabelKey(string(value)),
			Selected: value == selected,
		})
	}
	return options
}

package favorites

import (
	"net/http"
	"strconv"
	"strings"

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
	page, err := h.service.loadPage(httpx.RequestContext(r), r.URL.Query().Get(routepath.PageParam))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.renderPage(w, r, page)
}

func (h handlers) handleRemove(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(strings.TrimSpace(r.PathValue("listingID")))
	if err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_listing_id", "listing id must be a number"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "web.error.invalid_form", "failed to parse favorites form", err))
		return
	}
	page, err := h.service.removeListing(httpx.RequestContext(r), r.PostFormValue(routepath.PageParam), listingID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if httpx.IsHTMXRequest(r) {
		h.renderPage(w, r, page)
		return
	}
	httpx.WriteRedirect(w, r, routepath.WithPage(routepath.Favorites, page.ID))
}

func (h handlers) renderPage(w http.ResponseWriter, r *http.Request, page favoritesPage) {
	loc, _ := h.PageLocalizer(w, r)
	view := webtemplates.FavoritesPageView{
		PageID:   page.ID,
		Listings: make([]webtemplates.FavoriteCardView, 0, len(page.Listings)),
	}
	for _, listing := range page.Listings {
		view.Listings = append(view.Listings, webtemplates.FavoriteCardView{
			ID:          listing.ID,
			Title:       listing.Title,
			Description: listing.Description,
			CategoryKey: webtemplates.CategoryLabelKey(string(listing.Category)),
			Image:       listing.Cover(),
			Owner:       listing.Owner,
			RemoveURL:   routepath.FavoriteRemove(listing.ID),
		})
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.favorites.title"), http.StatusOK, webtemplates.FavoritesFragment(view, loc))
}

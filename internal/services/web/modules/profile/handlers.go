package profile

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/gametrade/internal/marketplace"
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
	summary, err := h.service.loadProfile(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if strings.TrimSpace(summary.Profile.DisplayName) == "" {
		h.WriteNotFound(w, r)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := profileView(summary, selectedTab(r))
	h.WritePage(w, r, webtemplates.T(loc, "web.profile.title"), http.StatusOK, webtemplates.ProfileFragment(view, loc))
}

// selectedTab defaults to the active listings for any value but "closed".
func selectedTab(r *http.Request) string {
	if strings.EqualFold(strings.TrimSpace(r.URL.Query().Get(routepath.TabParam)), webtemplates.ProfileTabClosed) {
		return webtemplates.ProfileTabClosed
	}
	return webtemplates.ProfileTabActive
}

func profileView(summary profileSummary, tab string) webtemplates.ProfilePageView {
	return webtemplates.ProfilePageView{
		Initials:     summary.Profile.Initials(),
		DisplayName:  summary.Profile.DisplayName,
		Email:        summary.Profile.Email,
		ListingCount: summary.Profile.ListingCount,
		TotalViews:   summary.Profile.TotalViews,
		Tab:          tab,
		ActiveURL:    routepath.Profile,
		ClosedURL:    routepath.WithQuery(routepath.Profile, url.Values{routepath.TabParam: {webtemplates.ProfileTabClosed}}),
		Active:       listingViews(summary.Active),
		Closed:       listingViews(summary.Closed),
	}
}

func listingViews(listings []marketplace.Listing) []webtemplates.ProfileListingView {
	out := make([]webtemplates.ProfileListingView, 0, len(listings))
	for _, listing := range listings {
		out = append(out, webtemplates.ProfileListingView{
			ID:          listing.ID,
			Title:       listing.Title,
			Description: listing.Description,
			CategoryKey: webtemplates.CategoryLabelKey(string(listing.Category)),
			Image:       listing.Cover(),
			Views:       listing.Views,
		})
	}
	return out
}

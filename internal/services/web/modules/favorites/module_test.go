package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/gametrade/internal/marketplace"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

type fakeGateway struct {
	listings []marketplace.Listing
	err      error
}

func (f fakeGateway) FavoriteListings(context.Context) ([]marketplace.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]marketplace.Listing(nil), f.listings...), nil
}

func newFakeGateway() fakeGateway {
	return fakeGateway{listings: []marketplace.Listing{
		{ID: 2, Title: "Magic artifact", Description: "Increases mana by 50%", Category: marketplace.CategoryArtifact, Owner: "MagicUser"},
		{ID: 5, Title: "Healing potion", Description: "Restores health", Category: marketplace.CategoryConsumable, Owner: "Alchemist"},
	}}
}

func mountHandler(t *testing.T, gw FavoritesGateway) http.Handler {
	t.Helper()
	mount, err := New(WithGateway(gw), WithBase(modulehandler.NewTestBase())).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.FavoritesPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.FavoritesPrefix)
	}
	return mount.Handler
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func postRemove(listingID int, pageID string) *http.Request {
	form := url.Values{routepath.PageParam: {pageID}}
	req := httptest.NewRequest(http.MethodPost, routepath.FavoriteRemove(listingID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func pageIDFromRedirect(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	location, err := url.Parse(rr.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse Location: %v", err)
	}
	if location.Path != routepath.Favorites {
		t.Fatalf("Location path = %q, want %q", location.Path, routepath.Favorites)
	}
	return location.Query().Get(routepath.PageParam)
}

func TestModuleIdentityAndHealth(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "favorites" {
		t.Fatalf("ID() = %q, want favorites", got)
	}
	if New().Healthy() {
		t.Fatalf("Healthy() = true without gateway")
	}
	if !New(WithGateway(newFakeGateway())).Healthy() {
		t.Fatalf("Healthy() = false with gateway")
	}
}

func TestIndexRendersSavedListings(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, newFakeGateway())
	for _, path := range []string{routepath.Favorites, routepath.FavoritesPrefix} {
		rr := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
		body := rr.Body.String()
		for _, marker := range []string{`id="favorites"`, "Magic artifact", "Healing potion", "Saved listings: 2", `action="/favorites/2/remove"`} {
			if !strings.Contains(body, marker) {
				t.Fatalf("GET %s body missing %q", path, marker)
			}
		}
	}
}

func TestRemoveDropsListingFromInstance(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, newFakeGateway())
	pageID := pageIDFromRedirect(t, serve(h, postRemove(2, "")))
	if pageID == "" {
		t.Fatalf("redirect has no page id")
	}

	body := serve(h, httptest.NewRequest(http.MethodGet, routepath.WithPage(routepath.Favorites, pageID), nil)).Body.String()
	if strings.Contains(body, "Magic artifact") || !strings.Contains(body, "Saved listings: 1") {
		t.Fatalf("listing 2 still shown after removal: %q", body)
	}

	if got := pageIDFromRedirect(t, serve(h, postRemove(5, pageID))); got != pageID {
		t.Fatalf("page id = %q, want %q", got, pageID)
	}
	body = serve(h, httptest.NewRequest(http.MethodGet, routepath.WithPage(routepath.Favorites, pageID), nil)).Body.String()
	for _, marker := range []string{"No favorites yet", `href="/"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("empty favorites body missing %q", marker)
		}
	}

	fresh := serve(h, httptest.NewRequest(http.MethodGet, routepath.Favorites, nil)).Body.String()
	if !strings.Contains(fresh, "Saved listings: 2") {
		t.Fatalf("fresh navigation did not reseed favorites")
	}
}

func TestRemoveAbsentListingIsNoOp(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, newFakeGateway())
	pageID := pageIDFromRedirect(t, serve(h, postRemove(42, "")))
	body := serve(h, httptest.NewRequest(http.MethodGet, routepath.WithPage(routepath.Favorites, pageID), nil)).Body.String()
	if !strings.Contains(body, "Saved listings: 2") {
		t.Fatalf("removing an absent id changed the set")
	}
}

func TestRemoveHTMXRendersFragment(t *testing.T) {
	t.Parallel()

	req := postRemove(2, "")
	req.Header.Set("HX-Request", "true")
	rr := serve(mountHandler(t, newFakeGateway()), req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if strings.Contains(strings.ToLower(body), "<html") || strings.Contains(body, "Magic artifact") {
		t.Fatalf("unexpected htmx body: %q", body)
	}
}

func TestIndexWithoutGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := serve(mountHandler(t, nil), httptest.NewRequest(http.MethodGet, routepath.Favorites, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/gametrade/internal/marketplace"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
)

type fakeGateway struct {
	profile marketplace.Profile
	err     error
}

func (f fakeGateway) Profile(context.Context) (marketplace.Profile, error) {
	return f.profile, f.err
}

func sampleProfile() marketplace.Profile {
	return marketplace.Profile{
		DisplayName:  "GameMaster",
		Email:        "gamemaster@example.com",
		ListingCount: 12,
		TotalViews:   345,
		Listings: []marketplace.Listing{
			{ID: 1, Title: "Legendary sword", Category: marketplace.CategoryWeapon, Status: marketplace.StatusActive, Views: 45},
			{ID: 4, Title: "Old bow", Category: marketplace.CategoryWeapon, Status: marketplace.StatusClosed, Views: 120},
			{ID: 5, Title: "Iron helm", Category: marketplace.CategoryArmor, Status: marketplace.StatusActive, Views: 3},
		},
	}
}

func mountHandler(t *testing.T, gw ProfileGateway) http.Handler {
	t.Helper()
	mount, err := New(WithGateway(gw), WithBase(modulehandler.NewTestBase())).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.ProfilePrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.ProfilePrefix)
	}
	return mount.Handler
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestModuleIdentityAndHealth(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "profile" {
		t.Fatalf("ID() = %q, want profile", got)
	}
	if New().Healthy() {
		t.Fatalf("Healthy() = true without gateway")
	}
	if !New(WithGateway(fakeGateway{})).Healthy() {
		t.Fatalf("Healthy() = false with gateway")
	}
}

func TestIndexRendersActiveTab(t *testing.T) {
	t.Parallel()

	rr := serve(mountHandler(t, fakeGateway{profile: sampleProfile()}), routepath.Profile)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`id="profile"`,
		">GM</div>",
		"GameMaster",
		"gamemaster@example.com",
		"Active (2)",
		"Closed (1)",
		"Legendary sword",
		"Iron helm",
		"Edit",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
	if strings.Contains(body, "Old bow") {
		t.Fatalf("active tab rendered a closed listing")
	}
}

func TestIndexRendersClosedTab(t *testing.T) {
	t.Parallel()

	body := serve(mountHandler(t, fakeGateway{profile: sampleProfile()}), routepath.Profile+"?tab=closed").Body.String()
	if !strings.Contains(body, "Old bow") || strings.Contains(body, "Legendary sword") {
		t.Fatalf("closed tab rendered wrong listings: %q", body)
	}
	if strings.Contains(body, ">Edit<") {
		t.Fatalf("closed tab offers edit actions")
	}
}

func TestProfileViewPartitionsListings(t *testing.T) {
	t.Parallel()

	summary, err := newService(fakeGateway{profile: sampleProfile()}).loadProfile(context.Background())
	if err != nil {
		t.Fatalf("loadProfile() error = %v", err)
	}
	view := profileView(summary, webtemplates.ProfileTabActive)
	var active, closed []int
	for _, listing := range view.Active {
		active = append(active, listing.ID)
	}
	for _, listing := range view.Closed {
		closed = append(closed, listing.ID)
	}
	if diff := cmp.Diff([]int{1, 5}, active); diff != "" {
		t.Fatalf("active mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4}, closed); diff != "" {
		t.Fatalf("closed mismatch (-want +got):\n%s", diff)
	}
	if view.ClosedURL != "/profile?tab=closed" {
		t.Fatalf("ClosedURL = %q, want /profile?tab=closed", view.ClosedURL)
	}
}

func TestIndexStatusContracts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		gw         ProfileGateway
		path       string
		wantStatus int
	}{
		{name: "slash root", gw: fakeGateway{profile: sampleProfile()}, path: routepath.ProfilePrefix, wantStatus: http.StatusOK},
		{name: "unknown tab falls back", gw: fakeGateway{profile: sampleProfile()}, path: routepath.Profile + "?tab=archived", wantStatus: http.StatusOK},
		{name: "unknown subpath", gw: fakeGateway{profile: sampleProfile()}, path: "/profile/settings", wantStatus: http.StatusNotFound},
		{name: "missing display name", gw: fakeGateway{}, path: routepath.Profile, wantStatus: http.StatusNotFound},
		{name: "no gateway", gw: nil, path: routepath.Profile, wantStatus: http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if rr := serve(mountHandler(t, tc.gw), tc.path); rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}
